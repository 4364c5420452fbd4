package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/khushikhattar/ShortSecure/internal/identity"
)

// MemoryAccountRepository is an in-memory implementation of
// identity.AccountRepository.
type MemoryAccountRepository struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*identity.Account
	tokens   map[string]uuid.UUID // refresh token -> owning account
}

// NewMemoryAccountRepository creates an empty in-memory account repository.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		accounts: make(map[uuid.UUID]*identity.Account),
		tokens:   make(map[string]uuid.UUID),
	}
}

func (m *MemoryAccountRepository) Create(_ context.Context, account *identity.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.accounts {
		if existing.Username == account.Username || existing.Email == account.Email {
			return identity.ErrAlreadyExists
		}
	}

	stored := *account
	m.accounts[account.ID] = &stored

	return nil
}

func (m *MemoryAccountRepository) GetByID(_ context.Context, id uuid.UUID) (*identity.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[id]
	if !ok {
		return nil, identity.ErrNotFound
	}

	copied := *account

	return &copied, nil
}

func (m *MemoryAccountRepository) GetByIdentifier(_ context.Context, identifier string) (*identity.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, account := range m.accounts {
		if account.Username == identifier || account.Email == identifier {
			copied := *account

			return &copied, nil
		}
	}

	return nil, identity.ErrNotFound
}

func (m *MemoryAccountRepository) UpdateProfile(
	_ context.Context, id uuid.UUID, update identity.ProfileUpdate,
) (*identity.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[id]
	if !ok {
		return nil, identity.ErrNotFound
	}

	for otherID, other := range m.accounts {
		if otherID == id {
			continue
		}

		if update.Username != nil && other.Username == *update.Username {
			return nil, identity.ErrAlreadyExists
		}

		if update.Email != nil && other.Email == *update.Email {
			return nil, identity.ErrAlreadyExists
		}
	}

	if update.Name != nil {
		account.Name = *update.Name
	}

	if update.Username != nil {
		account.Username = *update.Username
	}

	if update.Email != nil {
		account.Email = *update.Email
	}

	if update.Avatar != nil {
		account.Avatar = update.Avatar
	}

	copied := *account

	return &copied, nil
}

func (m *MemoryAccountRepository) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[id]
	if !ok {
		return identity.ErrNotFound
	}

	account.PasswordHash = passwordHash

	return nil
}

func (m *MemoryAccountRepository) AddRefreshToken(_ context.Context, id uuid.UUID, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens[token] = id

	return nil
}

func (m *MemoryAccountRepository) RemoveRefreshToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tokens, token)

	return nil
}

func (m *MemoryAccountRepository) RotateRefreshToken(
	_ context.Context, id uuid.UUID, oldToken, newToken string,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	owner, ok := m.tokens[oldToken]
	if !ok || owner != id {
		return identity.ErrInvalidToken
	}

	delete(m.tokens, oldToken)
	m.tokens[newToken] = id

	return nil
}

func (m *MemoryAccountRepository) OwnerOfRefreshToken(_ context.Context, token string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	owner, ok := m.tokens[token]
	if !ok {
		return uuid.Nil, identity.ErrNotFound
	}

	return owner, nil
}

func (m *MemoryAccountRepository) ClearRefreshTokens(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for token, owner := range m.tokens {
		if owner == id {
			delete(m.tokens, token)
		}
	}

	return nil
}

// Compile-time check.
var _ identity.AccountRepository = (*MemoryAccountRepository)(nil)
