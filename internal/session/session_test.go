package session_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionContext(t *testing.T) {
	_, err := session.Require(context.Background())
	assert.ErrorIs(t, err, entities.ErrUnauthenticated)

	want := entities.Session{UserID: uuid.New(), Role: entities.RoleWorker, TokenID: "t1"}
	ctx := session.WithSession(context.Background(), want)

	got, err := session.Require(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
