package cache

import (
	"context"
	"time"
)

// Remember returns the cached value for key, or calls load and caches its
// result. A broken cache only costs a reload.
func Remember[T any](ctx context.Context, s Store, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if hit, err := s.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	_ = s.SetJSON(ctx, key, v, ttl)
	return v, nil
}
