package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/khushikhattar/ShortSecure/internal/shortener"
)

// MemoryAliasRepository is an in-memory implementation of
// shortener.Repository. A single mutex gives it the same atomicity the
// Postgres implementation gets from constraints and single-statement
// updates, so the registry's concurrency properties hold here too.
type MemoryAliasRepository struct {
	mu   sync.Mutex
	urls map[shortener.Code]*shortener.ShortURL
}

// NewMemoryAliasRepository creates an empty in-memory alias repository.
func NewMemoryAliasRepository() *MemoryAliasRepository {
	return &MemoryAliasRepository{
		urls: make(map[shortener.Code]*shortener.ShortURL),
	}
}

func (m *MemoryAliasRepository) Insert(_ context.Context, shortURL *shortener.ShortURL) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.urls[shortURL.Code]; exists {
		return shortener.ErrAliasTaken
	}

	stored := *shortURL
	m.urls[shortURL.Code] = &stored

	return nil
}

func (m *MemoryAliasRepository) ResolveAndCount(_ context.Context, code shortener.Code) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	url, ok := m.urls[code]
	if !ok {
		return "", shortener.ErrNotFound
	}

	url.Clicks++

	return url.LongURL, nil
}

func (m *MemoryAliasRepository) GetByCode(_ context.Context, code shortener.Code) (*shortener.ShortURL, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	url, ok := m.urls[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	copied := *url

	return &copied, nil
}

func (m *MemoryAliasRepository) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]shortener.ShortURL, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var urls []shortener.ShortURL

	for _, url := range m.urls {
		if url.OwnerID != nil && *url.OwnerID == ownerID {
			urls = append(urls, *url)
		}
	}

	sort.Slice(urls, func(i, j int) bool {
		return urls[i].CreatedAt.After(urls[j].CreatedAt)
	})

	return urls, nil
}

// Compile-time check.
var _ shortener.Repository = (*MemoryAliasRepository)(nil)
