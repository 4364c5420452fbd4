package shortener

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// maxGenerateAttempts bounds the regenerate-and-retry loop when a random
// code collides with an existing row.
const maxGenerateAttempts = 5

// CreateParams describes a shorten request.
type CreateParams struct {
	LongURL string
	OwnerID *uuid.UUID // nil for anonymous creations
	Slug    string     // empty to generate a random code
}

// Service implements the alias registry: allocation, resolution, and stats.
type Service struct {
	repo         Repository
	generateCode CodeGenerator
}

// NewService creates an alias registry backed by repo, generating random
// codes with generator.
func NewService(repo Repository, generator CodeGenerator) *Service {
	return &Service{
		repo:         repo,
		generateCode: generator,
	}
}

// Create allocates a new alias for params.LongURL.
//
// A caller-chosen slug is inserted exactly once: if the storage layer reports
// the code as taken the call fails with ErrAliasTaken, never renaming or
// overwriting. Without a slug, a random code is generated and insertion is
// retried on collision up to maxGenerateAttempts times before ErrExhausted.
// The storage unique constraint, not an application pre-check, decides
// collisions, so two concurrent creations of the same code cannot both
// succeed.
func (s *Service) Create(ctx context.Context, params CreateParams) (*ShortURL, error) {
	if !ValidLongURL(params.LongURL) {
		return nil, ErrInvalidURL
	}

	if params.Slug != "" {
		if !ValidSlug(params.Slug) {
			return nil, ErrInvalidSlug
		}

		return s.insert(ctx, Code(params.Slug), params)
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		shortURL, err := s.insert(ctx, Code(s.generateCode()), params)
		if errors.Is(err, ErrAliasTaken) {
			continue
		}

		return shortURL, err
	}

	return nil, ErrExhausted
}

func (s *Service) insert(ctx context.Context, code Code, params CreateParams) (*ShortURL, error) {
	shortURL := &ShortURL{
		Code:      code,
		LongURL:   params.LongURL,
		OwnerID:   params.OwnerID,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Insert(ctx, shortURL); err != nil {
		return nil, err
	}

	return shortURL, nil
}

// Resolve returns the destination for code and increments its click counter.
// The lookup and increment are a single storage operation, so concurrent
// resolutions never lose a click.
func (s *Service) Resolve(ctx context.Context, code Code) (string, error) {
	return s.repo.ResolveAndCount(ctx, code)
}

// Stats returns the record for code without touching the click counter.
func (s *Service) Stats(ctx context.Context, code Code) (*ShortURL, error) {
	return s.repo.GetByCode(ctx, code)
}

// ListOwnedBy returns all aliases owned by ownerID.
func (s *Service) ListOwnedBy(ctx context.Context, ownerID uuid.UUID) ([]ShortURL, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}
