package identity_test

import (
	"context"
	"testing"

	"github.com/khushikhattar/ShortSecure/internal/identity"
	"github.com/khushikhattar/ShortSecure/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectory() (*identity.Directory, *identity.SessionService) {
	repo := store.NewMemoryAccountRepository()

	return identity.NewDirectory(repo), identity.NewSessionService(repo, newTestTokenManager())
}

func TestDirectoryRegister(t *testing.T) {
	t.Run("stores a hash, never the password", func(t *testing.T) {
		dir, _ := newTestDirectory()

		account, err := dir.Register(context.Background(), identity.RegisterParams{
			Name:     "Test User",
			Email:    "test@example.com",
			Address:  "1 Example Way",
			Username: "tester1",
			Password: "s3cret-pass",
		})

		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-pass", account.PasswordHash)
		assert.NotEmpty(t, account.PasswordHash)
		assert.NotEqual(t, account.ID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		dir, _ := newTestDirectory()
		ctx := context.Background()

		_, err := dir.Register(ctx, identity.RegisterParams{
			Name: "A", Email: "a@example.com", Username: "tester1", Password: "pw123456",
		})
		require.NoError(t, err)

		_, err = dir.Register(ctx, identity.RegisterParams{
			Name: "B", Email: "b@example.com", Username: "tester1", Password: "pw123456",
		})
		assert.ErrorIs(t, err, identity.ErrAlreadyExists)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		dir, _ := newTestDirectory()
		ctx := context.Background()

		_, err := dir.Register(ctx, identity.RegisterParams{
			Name: "A", Email: "a@example.com", Username: "tester1", Password: "pw123456",
		})
		require.NoError(t, err)

		_, err = dir.Register(ctx, identity.RegisterParams{
			Name: "B", Email: "a@example.com", Username: "tester2", Password: "pw123456",
		})
		assert.ErrorIs(t, err, identity.ErrAlreadyExists)
	})
}

func TestDirectoryGet(t *testing.T) {
	dir, _ := newTestDirectory()
	ctx := context.Background()

	registered, err := dir.Register(ctx, identity.RegisterParams{
		Name: "A", Email: "a@example.com", Username: "tester1", Password: "pw123456",
	})
	require.NoError(t, err)

	account, err := dir.Get(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "tester1", account.Username)
}

func TestDirectoryUpdateProfile(t *testing.T) {
	t.Run("applies only the provided fields", func(t *testing.T) {
		dir, _ := newTestDirectory()
		ctx := context.Background()

		registered, err := dir.Register(ctx, identity.RegisterParams{
			Name: "Old Name", Email: "a@example.com", Username: "tester1", Password: "pw123456",
		})
		require.NoError(t, err)

		newName := "New Name"
		updated, err := dir.UpdateProfile(ctx, registered.ID, identity.ProfileUpdate{Name: &newName})
		require.NoError(t, err)

		assert.Equal(t, "New Name", updated.Name)
		assert.Equal(t, "tester1", updated.Username)
		assert.Equal(t, "a@example.com", updated.Email)
	})

	t.Run("rejects a username already in use", func(t *testing.T) {
		dir, _ := newTestDirectory()
		ctx := context.Background()

		_, err := dir.Register(ctx, identity.RegisterParams{
			Name: "A", Email: "a@example.com", Username: "tester1", Password: "pw123456",
		})
		require.NoError(t, err)

		second, err := dir.Register(ctx, identity.RegisterParams{
			Name: "B", Email: "b@example.com", Username: "tester2", Password: "pw123456",
		})
		require.NoError(t, err)

		taken := "tester1"
		_, err = dir.UpdateProfile(ctx, second.ID, identity.ProfileUpdate{Username: &taken})
		assert.ErrorIs(t, err, identity.ErrAlreadyExists)
	})
}

func TestDirectoryChangePassword(t *testing.T) {
	t.Run("replaces the hash and ends every session", func(t *testing.T) {
		dir, sessions := newTestDirectory()
		ctx := context.Background()

		registered, err := dir.Register(ctx, identity.RegisterParams{
			Name: "A", Email: "a@example.com", Username: "tester1", Password: "old-pass-1",
		})
		require.NoError(t, err)

		pair, _, err := sessions.Login(ctx, "tester1", "old-pass-1")
		require.NoError(t, err)

		require.NoError(t, dir.ChangePassword(ctx, registered.ID, "old-pass-1", "new-pass-1"))

		_, _, err = sessions.Login(ctx, "tester1", "old-pass-1")
		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)

		_, _, err = sessions.Login(ctx, "tester1", "new-pass-1")
		assert.NoError(t, err)

		_, err = sessions.Refresh(ctx, pair.RefreshToken)
		assert.ErrorIs(t, err, identity.ErrInvalidToken)
	})

	t.Run("rejects a wrong current password", func(t *testing.T) {
		dir, sessions := newTestDirectory()
		ctx := context.Background()

		registered, err := dir.Register(ctx, identity.RegisterParams{
			Name: "A", Email: "a@example.com", Username: "tester1", Password: "old-pass-1",
		})
		require.NoError(t, err)

		err = dir.ChangePassword(ctx, registered.ID, "wrong-pass", "new-pass-1")
		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)

		_, _, err = sessions.Login(ctx, "tester1", "old-pass-1")
		assert.NoError(t, err)
	})
}
