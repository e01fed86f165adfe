package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/service"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService() (*cache.LRUCache[*entities.Cart], cartAPI) {
	store := cache.NewLRUCache[*entities.Cart](16, time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return store, service.NewCartService(logger, store)
}

type cartAPI interface {
	Get(ctx context.Context) (service.CartSnapshot, error)
	AddItem(ctx context.Context, serviceType entities.ServiceType, item string) (service.CartSnapshot, error)
	RemoveItem(ctx context.Context, serviceType entities.ServiceType, item string) (service.CartSnapshot, error)
	Commit(ctx context.Context) (entities.CartLineItem, error)
	RemoveLine(ctx context.Context, lineID string) (service.CartSnapshot, error)
	Clear(ctx context.Context) error
	service.Carts
}

func TestCartService_Checkout(t *testing.T) {
	_, svc := newCartService()

	for _, item := range []string{"shirts", "shirts", "trousers"} {
		_, err := svc.AddItem(studentCtx, entities.ServiceWashing, item)
		require.NoError(t, err)
	}

	snap, err := svc.Get(studentCtx)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.SelectionTotal)
	assert.Equal(t, entities.ServiceWashing, snap.ActiveService)

	line, err := svc.Commit(studentCtx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"shirts": 2, "trousers": 1}, line.Counts)

	snap, err = svc.Get(studentCtx)
	require.NoError(t, err)
	assert.Zero(t, snap.SelectionTotal)
	assert.Equal(t, 3, snap.LineTotal)

	lines := svc.Lines(studentID)
	require.Len(t, lines, 1)
	assert.Equal(t, line.ID, lines[0].ID)

	svc.RemoveLines(studentID, []string{line.ID})
	assert.Empty(t, svc.Lines(studentID))
}

func TestCartService_RemoveLinesKeepsOthers(t *testing.T) {
	store, svc := newCartService()

	_, err := svc.AddItem(studentCtx, entities.ServiceWashing, "shirts")
	require.NoError(t, err)
	ordered, err := svc.Commit(studentCtx)
	require.NoError(t, err)
	_, err = svc.AddItem(studentCtx, entities.ServiceWashing, "jeans")
	require.NoError(t, err)
	kept, err := svc.Commit(studentCtx)
	require.NoError(t, err)
	_, err = svc.AddItem(studentCtx, entities.ServiceIronAndWashing, "kurtis")
	require.NoError(t, err)

	svc.RemoveLines(studentID, []string{ordered.ID})

	lines := svc.Lines(studentID)
	require.Len(t, lines, 1)
	assert.Equal(t, kept.ID, lines[0].ID)

	snap, err := svc.Get(studentCtx)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.SelectionTotal)

	svc.RemoveLines(studentID, []string{kept.ID})
	_, err = svc.RemoveItem(studentCtx, entities.ServiceIronAndWashing, "kurtis")
	require.NoError(t, err)
	svc.RemoveLines(studentID, nil)
	_, ok := store.Get(studentID.String())
	assert.False(t, ok, "an empty cart is dropped")

	svc.RemoveLines(workerID, []string{"missing"})
}

func TestCartService_Errors(t *testing.T) {
	_, svc := newCartService()

	_, err := svc.AddItem(studentCtx, "dry-clean", "shirts")
	assert.ErrorIs(t, err, entities.ErrUnknownItem)

	_, err = svc.AddItem(studentCtx, entities.ServiceWashing, "hats")
	assert.ErrorIs(t, err, entities.ErrUnknownItem)

	_, err = svc.Commit(studentCtx)
	assert.ErrorIs(t, err, entities.ErrEmptySelection)

	_, err = svc.RemoveLine(studentCtx, "missing")
	assert.ErrorIs(t, err, entities.ErrLineNotFound)

	_, err = svc.AddItem(workerCtx, entities.ServiceWashing, "shirts")
	assert.ErrorIs(t, err, entities.ErrForbidden)

	_, err = svc.Get(context.Background())
	assert.ErrorIs(t, err, entities.ErrUnauthenticated)
}

func TestCartService_RemoveItemAndLine(t *testing.T) {
	_, svc := newCartService()

	_, err := svc.RemoveItem(studentCtx, entities.ServiceWashing, "jeans")
	require.NoError(t, err)

	_, err = svc.AddItem(studentCtx, entities.ServiceIronAndWashing, "sarees")
	require.NoError(t, err)
	snap, err := svc.RemoveItem(studentCtx, entities.ServiceIronAndWashing, "sarees")
	require.NoError(t, err)
	assert.Zero(t, snap.SelectionTotal)

	_, err = svc.AddItem(studentCtx, entities.ServiceIronAndWashing, "sarees")
	require.NoError(t, err)
	first, err := svc.Commit(studentCtx)
	require.NoError(t, err)
	_, err = svc.AddItem(studentCtx, entities.ServiceWashing, "bedsheets")
	require.NoError(t, err)
	second, err := svc.Commit(studentCtx)
	require.NoError(t, err)

	snap, err = svc.RemoveLine(studentCtx, first.ID)
	require.NoError(t, err)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, second.ID, snap.Lines[0].ID)

	require.NoError(t, svc.Clear(studentCtx))
	assert.Empty(t, svc.Lines(studentID))
}
