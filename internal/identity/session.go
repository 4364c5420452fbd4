package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/khushikhattar/ShortSecure/internal/crypto"
)

// dummyHash is a bcrypt hash of an unguessable value, compared against when
// the login identifier resolves to no account so that both failure paths
// perform one hash verification.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// SessionService owns the session lifecycle: issuing, verifying, rotating,
// and revoking credential pairs.
type SessionService struct {
	accounts AccountRepository
	tokens   *TokenManager
}

// NewSessionService constructs a SessionService.
func NewSessionService(accounts AccountRepository, tokens *TokenManager) *SessionService {
	return &SessionService{accounts: accounts, tokens: tokens}
}

// Login authenticates identifier (username or email) with password and, on
// success, mints a credential pair and appends the refresh token to the
// account's stored set. Unknown identifiers and wrong passwords return the
// same ErrInvalidCredentials.
func (s *SessionService) Login(ctx context.Context, identifier, password string) (CredentialPair, *Account, error) {
	account, err := s.accounts.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			crypto.VerifyPassword(dummyHash, password)

			return CredentialPair{}, nil, ErrInvalidCredentials
		}

		return CredentialPair{}, nil, err
	}

	if !crypto.VerifyPassword(account.PasswordHash, password) {
		return CredentialPair{}, nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.MintPair(account.ID)
	if err != nil {
		return CredentialPair{}, nil, err
	}

	if err := s.accounts.AddRefreshToken(ctx, account.ID, pair.RefreshToken); err != nil {
		return CredentialPair{}, nil, err
	}

	return pair, account, nil
}

// Refresh rotates a credential pair: the old refresh token must be
// structurally valid, unexpired, and present in its owner's stored set. The
// removal of the old token and insertion of the new one happen in one atomic
// storage operation, so a stolen refresh token replays at most once.
func (s *SessionService) Refresh(ctx context.Context, oldToken string) (CredentialPair, error) {
	accountID, err := s.tokens.VerifyRefresh(oldToken)
	if err != nil {
		return CredentialPair{}, ErrInvalidToken
	}

	pair, err := s.tokens.MintPair(accountID)
	if err != nil {
		return CredentialPair{}, err
	}

	err = s.accounts.RotateRefreshToken(ctx, accountID, oldToken, pair.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrNotFound) {
			return CredentialPair{}, ErrInvalidToken
		}

		return CredentialPair{}, err
	}

	return pair, nil
}

// Logout removes exactly the given refresh token from its owner's set.
// Removing an absent token is not an error.
func (s *SessionService) Logout(ctx context.Context, refreshToken string) error {
	return s.accounts.RemoveRefreshToken(ctx, refreshToken)
}

// LogoutAll clears the whole refresh-token set of the account holding
// refreshToken, invalidating every session at once. Returns ErrInvalidToken
// if the token is not currently stored.
func (s *SessionService) LogoutAll(ctx context.Context, refreshToken string) error {
	accountID, err := s.accounts.OwnerOfRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrInvalidToken
		}

		return err
	}

	return s.accounts.ClearRefreshTokens(ctx, accountID)
}

// Verify statelessly validates an access token and returns the account it
// identifies. The refresh-token set is not consulted.
func (s *SessionService) Verify(accessToken string) (uuid.UUID, error) {
	return s.tokens.VerifyAccess(accessToken)
}
