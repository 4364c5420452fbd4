package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/khushikhattar/ShortSecure/internal/identity"
)

// PostgresAccountRepository is the PostgreSQL implementation of
// identity.AccountRepository. The refresh-token set lives in the
// refresh_tokens table; rotation is a single DELETE+INSERT CTE so the
// remove-old/add-new step cannot be split by a concurrent request.
type PostgresAccountRepository struct {
	pool PgxPool
}

// NewPostgresAccountRepository creates a PostgreSQL-backed account
// repository.
func NewPostgresAccountRepository(pool PgxPool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, account *identity.Account) error {
	const q = `
		INSERT INTO accounts (id, name, username, email, address, avatar, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, q,
		account.ID,
		account.Name,
		account.Username,
		account.Email,
		account.Address,
		account.Avatar,
		account.PasswordHash,
	)
	if isUniqueViolation(err) {
		return identity.ErrAlreadyExists
	}

	return err
}

const accountColumns = `id, name, username, email, address, avatar, password_hash, created_at, updated_at`

func (r *PostgresAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*identity.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	return r.scanAccount(r.pool.QueryRow(ctx, q, id))
}

func (r *PostgresAccountRepository) GetByIdentifier(ctx context.Context, identifier string) (*identity.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1 OR email = $1`

	return r.scanAccount(r.pool.QueryRow(ctx, q, identifier))
}

func (r *PostgresAccountRepository) scanAccount(row pgx.Row) (*identity.Account, error) {
	var account identity.Account

	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Username,
		&account.Email,
		&account.Address,
		&account.Avatar,
		&account.PasswordHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrNotFound
		}

		return nil, err
	}

	return &account, nil
}

func (r *PostgresAccountRepository) UpdateProfile(
	ctx context.Context, id uuid.UUID, update identity.ProfileUpdate,
) (*identity.Account, error) {
	const q = `
		UPDATE accounts
		SET name = COALESCE($2, name),
		    username = COALESCE($3, username),
		    email = COALESCE($4, email),
		    avatar = COALESCE($5, avatar),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + accountColumns

	row := r.pool.QueryRow(ctx, q, id, update.Name, update.Username, update.Email, update.Avatar)

	account, err := r.scanAccount(row)
	if isUniqueViolation(err) {
		return nil, identity.ErrAlreadyExists
	}

	return account, err
}

func (r *PostgresAccountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const q = `UPDATE accounts SET password_hash = $2, updated_at = now() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id, passwordHash)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return identity.ErrNotFound
	}

	return nil
}

func (r *PostgresAccountRepository) AddRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	const q = `INSERT INTO refresh_tokens (token, account_id) VALUES ($1, $2)`

	_, err := r.pool.Exec(ctx, q, token, id)

	return err
}

func (r *PostgresAccountRepository) RemoveRefreshToken(ctx context.Context, token string) error {
	const q = `DELETE FROM refresh_tokens WHERE token = $1`

	_, err := r.pool.Exec(ctx, q, token)

	return err
}

func (r *PostgresAccountRepository) RotateRefreshToken(
	ctx context.Context, id uuid.UUID, oldToken, newToken string,
) error {
	// One statement: the insert only happens if the delete matched, so a
	// rotated-away token cannot be rotated a second time.
	const q = `
		WITH removed AS (
			DELETE FROM refresh_tokens
			WHERE token = $1 AND account_id = $2
			RETURNING account_id
		)
		INSERT INTO refresh_tokens (token, account_id)
		SELECT $3, account_id FROM removed
	`

	tag, err := r.pool.Exec(ctx, q, oldToken, id, newToken)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return identity.ErrInvalidToken
	}

	return nil
}

func (r *PostgresAccountRepository) OwnerOfRefreshToken(ctx context.Context, token string) (uuid.UUID, error) {
	const q = `SELECT account_id FROM refresh_tokens WHERE token = $1`

	var id uuid.UUID

	err := r.pool.QueryRow(ctx, q, token).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, identity.ErrNotFound
		}

		return uuid.Nil, err
	}

	return id, nil
}

func (r *PostgresAccountRepository) ClearRefreshTokens(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM refresh_tokens WHERE account_id = $1`

	_, err := r.pool.Exec(ctx, q, id)

	return err
}

// Compile-time check.
var _ identity.AccountRepository = (*PostgresAccountRepository)(nil)
