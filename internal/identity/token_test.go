package identity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/khushikhattar/ShortSecure/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager() *identity.TokenManager {
	return identity.NewTokenManager(
		[]byte("access-secret"),
		[]byte("refresh-secret"),
		identity.DefaultAccessTTL,
		identity.DefaultRefreshTTL,
	)
}

func TestTokenManager_MintAndVerify(t *testing.T) {
	tm := newTestTokenManager()
	accountID := uuid.New()

	pair, err := tm.MintPair(accountID)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	got, err := tm.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)

	got, err = tm.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestTokenManager_KindsAreNotInterchangeable(t *testing.T) {
	tm := newTestTokenManager()

	pair, err := tm.MintPair(uuid.New())
	require.NoError(t, err)

	_, err = tm.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)

	_, err = tm.VerifyRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestTokenManager_RejectsForeignSignature(t *testing.T) {
	tm := newTestTokenManager()
	other := identity.NewTokenManager(
		[]byte("other-access"),
		[]byte("other-refresh"),
		identity.DefaultAccessTTL,
		identity.DefaultRefreshTTL,
	)

	pair, err := other.MintPair(uuid.New())
	require.NoError(t, err)

	_, err = tm.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := identity.NewTokenManager(
		[]byte("access-secret"),
		[]byte("refresh-secret"),
		-time.Minute,
		-time.Minute,
	)

	pair, err := tm.MintPair(uuid.New())
	require.NoError(t, err)

	_, err = tm.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)

	_, err = tm.VerifyRefresh(pair.RefreshToken)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := newTestTokenManager()

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.VerifyAccess(token)
		assert.ErrorIs(t, err, identity.ErrInvalidToken)
	}
}

func TestTokenManager_UniqueTokensPerMint(t *testing.T) {
	tm := newTestTokenManager()
	accountID := uuid.New()

	first, err := tm.MintPair(accountID)
	require.NoError(t, err)

	second, err := tm.MintPair(accountID)
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.NotEqual(t, first.AccessToken, second.AccessToken)
}
