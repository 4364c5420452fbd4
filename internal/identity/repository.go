package identity

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository provides durable storage for accounts and their
// refresh-token sets.
//
// Token-set mutations are expressed as single atomic storage operations:
// RotateRefreshToken in particular must remove the old token and add the new
// one atomically, failing if the old token is not currently stored.
type AccountRepository interface {
	// Create inserts a new account. Returns ErrAlreadyExists if the
	// username or email is taken.
	Create(ctx context.Context, account *Account) error

	// GetByID loads an account by ID. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// GetByIdentifier loads an account whose username or email equals
	// identifier. Returns ErrNotFound if absent.
	GetByIdentifier(ctx context.Context, identifier string) (*Account, error)

	// UpdateProfile applies a partial update of display fields and returns
	// the updated account. Returns ErrAlreadyExists on a uniqueness
	// violation, ErrNotFound if the account is absent.
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*Account, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// AddRefreshToken appends token to the account's stored set.
	AddRefreshToken(ctx context.Context, id uuid.UUID, token string) error

	// RemoveRefreshToken removes token from whichever account holds it.
	// Removing an absent token is not an error.
	RemoveRefreshToken(ctx context.Context, token string) error

	// RotateRefreshToken atomically replaces oldToken with newToken for the
	// given account. Returns ErrInvalidToken if oldToken is not currently
	// stored for that account.
	RotateRefreshToken(ctx context.Context, id uuid.UUID, oldToken, newToken string) error

	// OwnerOfRefreshToken returns the account holding token. Returns
	// ErrNotFound if no account holds it.
	OwnerOfRefreshToken(ctx context.Context, token string) (uuid.UUID, error)

	// ClearRefreshTokens removes every stored token for the account,
	// invalidating all of its sessions at once.
	ClearRefreshTokens(ctx context.Context, id uuid.UUID) error
}
