package auth_test

import (
	"testing"

	"github.com/adinugroho/laundryhub/internal/adapter/auth"
	"github.com/adinugroho/laundryhub/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasetoToken_RoundTrip(t *testing.T) {
	ts, err := auth.New()
	require.NoError(t, err)

	user := &domain.User{ID: 42, Login: "shop@laundry.id"}

	token, err := ts.CreateToken(user, "local")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := ts.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), payload.UserID)
	assert.Equal(t, "local", payload.Backend)
}

// Tokens carry the backend they were minted under; the middleware compares
// it against the running backend, so a token from the other store is
// rejected after a backend switch.
func TestPasetoToken_BackendIsBound(t *testing.T) {
	ts, err := auth.New()
	require.NoError(t, err)

	token, err := ts.CreateToken(&domain.User{ID: 1}, "postgres")
	require.NoError(t, err)

	payload, err := ts.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "postgres", payload.Backend)
}

func TestPasetoToken_GarbageRejected(t *testing.T) {
	ts, err := auth.New()
	require.NoError(t, err)

	for _, bad := range []string{"", "not-a-token", "v4.local.garbage"} {
		_, err := ts.VerifyToken(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, "token %q", bad)
	}
}

func TestPasetoToken_ForeignKeyRejected(t *testing.T) {
	issuer, err := auth.New()
	require.NoError(t, err)
	verifier, err := auth.New()
	require.NoError(t, err)

	token, err := issuer.CreateToken(&domain.User{ID: 1}, "local")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
