package container

import (
	"time"

	"github.com/khushikhattar/ShortSecure/internal/identity"
	"github.com/khushikhattar/ShortSecure/internal/shortener"
	"github.com/samber/do"
)

// ServicePackage provides the domain services: alias registry, account
// directory, and session lifecycle.
func ServicePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (shortener.CodeGenerator, error) {
		options := do.MustInvoke[*Options](i)

		return shortener.NewCodeGenerator(options.CodeLength)
	})

	do.Provide(injector, func(i *do.Injector) (*shortener.Service, error) {
		repo := do.MustInvoke[shortener.Repository](i)
		generator := do.MustInvoke[shortener.CodeGenerator](i)

		return shortener.NewService(repo, generator), nil
	})

	do.Provide(injector, func(i *do.Injector) (*identity.TokenManager, error) {
		options := do.MustInvoke[*Options](i)

		return identity.NewTokenManager(
			[]byte(options.AccessSecret),
			[]byte(options.RefreshSecret),
			time.Duration(options.AccessTTL)*time.Second,
			time.Duration(options.RefreshTTL)*time.Second,
		), nil
	})

	do.Provide(injector, func(i *do.Injector) (*identity.SessionService, error) {
		accounts := do.MustInvoke[identity.AccountRepository](i)
		tokens := do.MustInvoke[*identity.TokenManager](i)

		return identity.NewSessionService(accounts, tokens), nil
	})

	do.Provide(injector, func(i *do.Injector) (*identity.Directory, error) {
		accounts := do.MustInvoke[identity.AccountRepository](i)

		return identity.NewDirectory(accounts), nil
	})
}
