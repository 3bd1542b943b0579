package middleware

import (
	"context"
	"net/http"

	"github.com/electromart/electromart-backend/api/responses"
	"github.com/electromart/electromart-backend/pkg/enums"
	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/logger"
)

// RoleResolver reads the role assigned to a uid. The default implementation
// hits the users collection on every request, so a role change is visible on
// the very next call.
type RoleResolver interface {
	Resolve(ctx context.Context, uid string) (enums.Role, error)
}

// RequireRole authorizes requests whose resolved role equals the given role.
// Always mounted behind Auth.
func RequireRole(role enums.Role, resolver RoleResolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return RequireAnyRole([]enums.Role{role}, resolver, logg)
}

// RequireAnyRole authorizes requests whose resolved role is in the set.
func RequireAnyRole(roles []enums.Role, resolver RoleResolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := UIDFromContext(r.Context())
			if uid == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			resolved, err := resolver.Resolve(r.Context(), uid)
			if err != nil {
				if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "access denied"))
					return
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve role"))
				return
			}

			allowed := false
			for _, role := range roles {
				if resolved == role {
					allowed = true
					break
				}
			}
			if !allowed {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "access denied"))
				return
			}

			ctx := WithRole(r.Context(), resolved.String())
			if logg != nil {
				ctx = logg.WithActorRole(ctx, resolved.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
