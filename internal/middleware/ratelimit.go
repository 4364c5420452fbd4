package middleware

import (
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/khushikhattar/ShortSecure/internal/ratelimit"
	"go.uber.org/zap"
)

// RateLimiter returns a Huma middleware enforcing the per-endpoint limits
// declared in operation metadata, keyed by client source address. Limits
// marked AnonymousOnly are skipped for authenticated callers, so the
// middleware must run after the Authenticator.
func RateLimiter(api huma.API, limiter ratelimit.Limiter, logger *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		cfg := ratelimit.GetEndpointConfig(ctx)
		if cfg == nil {
			next(ctx)

			return
		}

		if cfg.AnonymousOnly {
			if _, authenticated := AccountIDFromContext(ctx.Context()); authenticated {
				next(ctx)

				return
			}
		}

		clientIP := ClientIPFromContext(ctx.Context())
		path := operationPath(ctx)

		for _, limit := range cfg.Limits {
			// Key combines client, route template, and window so each
			// limit tracks independently.
			key := fmt.Sprintf("%s:%s:%d", clientIP, path, limit.Window.Milliseconds())

			allowed, err := limiter.Allow(ctx.Context(), key, limit)
			if err != nil {
				logger.Error("rate limit check failed", zap.String("path", path), zap.Error(err))
				_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "internal server error", err)

				return
			}

			if !allowed {
				logger.Warn("rate limit exceeded",
					zap.String("path", path),
					zap.String("client_ip", clientIP),
					zap.Int64("max", limit.Max),
					zap.Duration("window", limit.Window),
				)
				_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests, "too many requests")

				return
			}
		}

		next(ctx)
	}
}

func operationPath(ctx huma.Context) string {
	if op := ctx.Operation(); op != nil {
		return op.Path
	}

	return ""
}
