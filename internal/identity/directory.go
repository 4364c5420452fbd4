package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/khushikhattar/ShortSecure/internal/crypto"
)

// RegisterParams describes a registration request. Validation of shapes
// (lengths, email format) happens at the transport layer; uniqueness is
// enforced by storage constraints.
type RegisterParams struct {
	Name     string
	Email    string
	Address  string
	Username string
	Password string
	Avatar   *string
}

// Directory owns account records: registration, profile updates, and
// password changes.
type Directory struct {
	accounts AccountRepository
}

// NewDirectory constructs a Directory.
func NewDirectory(accounts AccountRepository) *Directory {
	return &Directory{accounts: accounts}
}

// Register creates a new account, storing only the password's bcrypt hash.
// Returns ErrAlreadyExists if the username or email is taken.
func (d *Directory) Register(ctx context.Context, params RegisterParams) (*Account, error) {
	hash, err := crypto.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	account := &Account{
		ID:           uuid.New(),
		Name:         params.Name,
		Username:     params.Username,
		Email:        params.Email,
		Address:      params.Address,
		Avatar:       params.Avatar,
		PasswordHash: hash,
	}

	if err := d.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Get loads an account by ID.
func (d *Directory) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return d.accounts.GetByID(ctx, id)
}

// UpdateProfile applies a partial update of mutable display fields,
// re-validated for uniqueness by the storage constraints.
func (d *Directory) UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*Account, error) {
	return d.accounts.UpdateProfile(ctx, id, update)
}

// ChangePassword verifies oldPassword against the stored hash, then replaces
// it with a hash of newPassword and clears the account's refresh-token set,
// ending every existing session.
func (d *Directory) ChangePassword(ctx context.Context, id uuid.UUID, oldPassword, newPassword string) error {
	account, err := d.accounts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !crypto.VerifyPassword(account.PasswordHash, oldPassword) {
		return ErrInvalidCredentials
	}

	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := d.accounts.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}

	return d.accounts.ClearRefreshTokens(ctx, id)
}
