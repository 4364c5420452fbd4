package container

import (
	"github.com/khushikhattar/ShortSecure/internal/ratelimit"
	"github.com/khushikhattar/ShortSecure/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
)

// RateLimitPackage provides the Redis-backed sliding window limiter.
func RateLimitPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (ratelimit.Store, error) {
		client := do.MustInvoke[*redis.Client](i)

		return store.NewRateLimitRedisStore(client), nil
	})

	do.Provide(injector, func(i *do.Injector) (ratelimit.Limiter, error) {
		limitStore := do.MustInvoke[ratelimit.Store](i)

		return ratelimit.NewSlidingWindowLimiter(limitStore), nil
	})
}
