package container

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khushikhattar/ShortSecure/internal/handlers"
	"github.com/khushikhattar/ShortSecure/internal/health"
	"github.com/khushikhattar/ShortSecure/internal/identity"
	"github.com/khushikhattar/ShortSecure/internal/middleware"
	"github.com/khushikhattar/ShortSecure/internal/ratelimit"
	"github.com/khushikhattar/ShortSecure/internal/shortener"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
)

// HTTPPackage provides the router and the Huma API with middleware and all
// routes registered. The authenticator runs before the rate limiter so
// anonymous-only limits see the resolved identity.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		router := do.MustInvoke[*chi.Mux](i)
		logger := do.MustInvoke[*zap.Logger](i)
		sessions := do.MustInvoke[*identity.SessionService](i)
		directory := do.MustInvoke[*identity.Directory](i)
		registry := do.MustInvoke[*shortener.Service](i)
		limiter := do.MustInvoke[ratelimit.Limiter](i)

		api := humachi.New(router, huma.DefaultConfig("ShortSecure", "1.0.0"))

		api.UseMiddleware(
			middleware.RequestMeta(api),
			middleware.Authenticator(api, sessions),
			middleware.RateLimiter(api, limiter, logger),
		)

		authHandler := handlers.NewAuthHandler(directory, sessions, logger)
		urlHandler := handlers.NewURLHandler(registry, logger)
		userHandler := handlers.NewUserHandler(directory, urlHandler, logger)

		handlers.RegisterRoutes(api, authHandler, urlHandler, userHandler)

		healthHandler := health.NewHandler(
			health.NewPostgresChecker(do.MustInvoke[*pgxpool.Pool](i)),
			health.NewRedisChecker(do.MustInvoke[*redis.Client](i)),
		)
		health.RegisterRoutes(api, healthHandler)

		return api, nil
	})
}
