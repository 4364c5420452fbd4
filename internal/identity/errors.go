package identity

import "errors"

var (
	// ErrNotFound indicates the requested account does not exist.
	ErrNotFound = errors.New("account not found")

	// ErrAlreadyExists indicates a username or email uniqueness violation.
	ErrAlreadyExists = errors.New("username or email already exists")

	// ErrInvalidCredentials indicates a failed login or password check.
	// Unknown identifiers and wrong passwords share this error so callers
	// cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken indicates a structurally invalid, expired, or revoked
	// token.
	ErrInvalidToken = errors.New("invalid or expired token")
)
