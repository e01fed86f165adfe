package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	userID := uuid.New()

	signed, claims, err := issuer.Issue(userID, "worker")
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	got, err := issuer.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, "worker", got.Role)
	assert.Equal(t, claims.ID, got.ID)
}

func TestIssuer_Rejects(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	signed, _, err := issuer.Issue(uuid.New(), "student")
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		_, err := NewIssuer("other", time.Hour).Parse(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		issuer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { issuer.now = time.Now }()

		_, err := issuer.Parse(signed)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
