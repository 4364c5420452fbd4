package container

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khushikhattar/ShortSecure/internal/migrate"
	"github.com/samber/do"
)

// PostgresPackage provides the connection pool, applying pending migrations
// first.
func PostgresPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*pgxpool.Pool, error) {
		options := do.MustInvoke[*Options](i)
		ctx := context.Background()

		if err := migrate.Up(ctx, options.DatabaseURL); err != nil {
			return nil, err
		}

		return pgxpool.New(ctx, options.DatabaseURL)
	})
}
