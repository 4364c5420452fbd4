package shortener

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the storage operations backing the alias registry.
//
// Uniqueness and click counting are the repository's responsibility: Insert
// must fail with ErrAliasTaken on a duplicate code via a storage-enforced
// constraint, and ResolveAndCount must perform the lookup and increment as a
// single atomic operation.
type Repository interface {
	// Insert persists a new mapping. Returns ErrAliasTaken if the code
	// already exists.
	Insert(ctx context.Context, shortURL *ShortURL) error

	// ResolveAndCount returns the destination for code and increments its
	// click counter by one in the same storage operation. Returns
	// ErrNotFound if the code is absent.
	ResolveAndCount(ctx context.Context, code Code) (string, error)

	// GetByCode returns the record for code without side effects.
	GetByCode(ctx context.Context, code Code) (*ShortURL, error)

	// ListByOwner returns all records owned by ownerID, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]ShortURL, error)
}
