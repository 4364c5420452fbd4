package identity

import (
	"time"

	"github.com/google/uuid"
)

// Account is an identity record. PasswordHash is the only stored credential;
// plaintext passwords are never persisted or logged.
type Account struct {
	ID           uuid.UUID
	Name         string
	Username     string
	Email        string
	Address      string
	Avatar       *string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CredentialPair is an access/refresh token tuple bound to one account at
// issuance. The access token is short-lived and self-verifying; the refresh
// token is honored only while present in the account's stored token set.
type CredentialPair struct {
	AccessToken  string
	RefreshToken string
}

// ProfileUpdate carries a partial update of mutable display fields. Nil
// fields are left unchanged.
type ProfileUpdate struct {
	Name     *string
	Username *string
	Email    *string
	Avatar   *string
}

// Empty reports whether the update changes nothing.
func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.Username == nil && u.Email == nil && u.Avatar == nil
}
