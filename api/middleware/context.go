package middleware

import "context"

type contextKey string

const (
	ctxUID    contextKey = "uid"
	ctxClaims contextKey = "claims"
	ctxRole   contextKey = "actor_role"
)

func UIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUID).(string); ok {
		return v
	}
	return ""
}

func ClaimsFromContext(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxClaims).(map[string]any); ok {
		return v
	}
	return nil
}

func RoleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxRole).(string); ok {
		return v
	}
	return ""
}

// WithUID injects the authenticated uid into the context.
func WithUID(ctx context.Context, uid string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUID, uid)
}

// WithRole injects the resolved role into the context for downstream handlers.
func WithRole(ctx context.Context, role string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxRole, role)
}
