package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Default token lifetimes.
const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// TokenManager mints and verifies HS256 access and refresh tokens. Access
// tokens are self-verifying and never individually revocable; refresh tokens
// additionally require presence in the owner's stored set (checked by
// SessionService, not here).
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenManager constructs a TokenManager with distinct signing secrets
// for the two token kinds.
func NewTokenManager(accessSecret, refreshSecret []byte, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// MintPair issues a fresh access/refresh pair for accountID. Each token
// carries a unique JTI so two tokens minted in the same second still differ.
func (m *TokenManager) MintPair(accountID uuid.UUID) (CredentialPair, error) {
	access, err := m.mint(accountID, m.accessSecret, m.accessTTL)
	if err != nil {
		return CredentialPair{}, err
	}

	refresh, err := m.mint(accountID, m.refreshSecret, m.refreshTTL)
	if err != nil {
		return CredentialPair{}, err
	}

	return CredentialPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (m *TokenManager) mint(accountID uuid.UUID, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   accountID.String(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyAccess validates signature and expiry of an access token and returns
// the account it was issued to. No storage lookup is involved.
func (m *TokenManager) VerifyAccess(token string) (uuid.UUID, error) {
	return m.verify(token, m.accessSecret)
}

// VerifyRefresh validates signature and expiry of a refresh token and
// returns the account it was issued to. Presence in the stored token set is
// a separate check owned by SessionService.
func (m *TokenManager) VerifyRefresh(token string) (uuid.UUID, error) {
	return m.verify(token, m.refreshSecret)
}

func (m *TokenManager) verify(token string, secret []byte) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	accountID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return accountID, nil
}
