package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khushikhattar/ShortSecure/internal/identity"
	"github.com/khushikhattar/ShortSecure/internal/shortener"
	"github.com/khushikhattar/ShortSecure/internal/store"
	"github.com/samber/do"
)

// RepositoryPackage provides the Postgres-backed repositories.
func RepositoryPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (shortener.Repository, error) {
		pool := do.MustInvoke[*pgxpool.Pool](i)

		return store.NewPostgresAliasRepository(pool), nil
	})

	do.Provide(injector, func(i *do.Injector) (identity.AccountRepository, error) {
		pool := do.MustInvoke[*pgxpool.Pool](i)

		return store.NewPostgresAccountRepository(pool), nil
	})
}
