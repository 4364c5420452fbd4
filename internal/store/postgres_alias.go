package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/khushikhattar/ShortSecure/internal/shortener"
)

// PostgresAliasRepository is the PostgreSQL implementation of
// shortener.Repository. Alias uniqueness is enforced by the short_urls
// primary key, and click counting uses a single increment-and-return
// statement.
type PostgresAliasRepository struct {
	pool PgxPool
}

// NewPostgresAliasRepository creates a PostgreSQL-backed alias repository.
func NewPostgresAliasRepository(pool PgxPool) *PostgresAliasRepository {
	return &PostgresAliasRepository{pool: pool}
}

func (r *PostgresAliasRepository) Insert(ctx context.Context, shortURL *shortener.ShortURL) error {
	const q = `
		INSERT INTO short_urls (code, long_url, account_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, q,
		string(shortURL.Code),
		shortURL.LongURL,
		shortURL.OwnerID,
		shortURL.CreatedAt,
	)
	if isUniqueViolation(err) {
		return shortener.ErrAliasTaken
	}

	return err
}

func (r *PostgresAliasRepository) ResolveAndCount(ctx context.Context, code shortener.Code) (string, error) {
	const q = `
		UPDATE short_urls
		SET clicks = clicks + 1
		WHERE code = $1
		RETURNING long_url
	`

	var longURL string

	err := r.pool.QueryRow(ctx, q, string(code)).Scan(&longURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", shortener.ErrNotFound
		}

		return "", err
	}

	return longURL, nil
}

func (r *PostgresAliasRepository) GetByCode(ctx context.Context, code shortener.Code) (*shortener.ShortURL, error) {
	const q = `
		SELECT code, long_url, clicks, account_id, created_at
		FROM short_urls
		WHERE code = $1
	`

	var url shortener.ShortURL

	err := r.pool.QueryRow(ctx, q, string(code)).Scan(
		&url.Code,
		&url.LongURL,
		&url.Clicks,
		&url.OwnerID,
		&url.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return &url, nil
}

func (r *PostgresAliasRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]shortener.ShortURL, error) {
	const q = `
		SELECT code, long_url, clicks, account_id, created_at
		FROM short_urls
		WHERE account_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []shortener.ShortURL

	for rows.Next() {
		var url shortener.ShortURL

		err := rows.Scan(&url.Code, &url.LongURL, &url.Clicks, &url.OwnerID, &url.CreatedAt)
		if err != nil {
			return nil, err
		}

		urls = append(urls, url)
	}

	return urls, rows.Err()
}

// Compile-time check.
var _ shortener.Repository = (*PostgresAliasRepository)(nil)
