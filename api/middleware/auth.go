package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/electromart/electromart-backend/api/responses"
	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/fireauth"
	"github.com/electromart/electromart-backend/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the
// authenticated identity. A missing credential is 401; a credential the
// verifier rejects is 403.
func Auth(verifier fireauth.TokenVerifier, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			identity, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeForbidden, err, "invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxUID, identity.UID)
			if identity.Claims != nil {
				ctx = context.WithValue(ctx, ctxClaims, identity.Claims)
			}

			if logg != nil {
				ctx = logg.WithUserID(ctx, identity.UID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
