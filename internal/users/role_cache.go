package users

import (
	"context"
	"errors"
	"time"

	"github.com/electromart/electromart-backend/api/middleware"
	"github.com/electromart/electromart-backend/pkg/enums"
	"github.com/electromart/electromart-backend/pkg/logger"
	"github.com/electromart/electromart-backend/pkg/redis"
)

// RoleStore is the cache surface backing the resolver, satisfied by
// *redis.Client.
type RoleStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	RoleKey(uid string) string
}

// CachedRoleResolver wraps a resolver with a short-lived Redis cache. The
// staleness window equals the configured TTL; with the cache disabled (TTL 0)
// construction is skipped and callers use the inner resolver directly.
type CachedRoleResolver struct {
	inner middleware.RoleResolver
	store RoleStore
	ttl   time.Duration
	logg  *logger.Logger
}

// NewCachedRoleResolver builds the caching decorator.
func NewCachedRoleResolver(inner middleware.RoleResolver, store RoleStore, ttl time.Duration, logg *logger.Logger) *CachedRoleResolver {
	return &CachedRoleResolver{inner: inner, store: store, ttl: ttl, logg: logg}
}

// Resolve serves from cache when possible. Cache failures degrade to the
// store lookup rather than failing the request.
func (c *CachedRoleResolver) Resolve(ctx context.Context, uid string) (enums.Role, error) {
	key := c.store.RoleKey(uid)

	cached, err := c.store.Get(ctx, key)
	if err == nil {
		if role := enums.Role(cached); role.IsValid() {
			return role, nil
		}
	} else if !errors.Is(err, redis.Nil) && c.logg != nil {
		c.logg.Warn(c.logg.WithField(ctx, "uid", uid), "role_cache.read_failed")
	}

	role, err := c.inner.Resolve(ctx, uid)
	if err != nil {
		return "", err
	}

	if err := c.store.Set(ctx, key, role.String(), c.ttl); err != nil && c.logg != nil {
		c.logg.Warn(c.logg.WithField(ctx, "uid", uid), "role_cache.write_failed")
	}
	return role, nil
}

// Invalidate drops the cached role, used right after an admin role change.
func (c *CachedRoleResolver) Invalidate(ctx context.Context, uid string) {
	if err := c.store.Del(ctx, c.store.RoleKey(uid)); err != nil && c.logg != nil {
		c.logg.Warn(c.logg.WithField(ctx, "uid", uid), "role_cache.invalidate_failed")
	}
}
