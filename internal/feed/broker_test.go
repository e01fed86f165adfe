package feed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/feed"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBroker() *feed.Broker {
	return feed.NewBroker(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBroker_Predicate(t *testing.T) {
	b := newBroker()
	owner := uuid.New()

	var all, own []string
	b.Subscribe(nil, func(e entities.OrderEvent) { all = append(all, e.OrderID) })
	b.Subscribe(func(e entities.OrderEvent) bool { return e.OwnerID == owner },
		func(e entities.OrderEvent) { own = append(own, e.OrderID) })

	require.NoError(t, b.Publish(context.Background(), entities.OrderEvent{OrderID: "ORD-1", OwnerID: owner}))
	require.NoError(t, b.Publish(context.Background(), entities.OrderEvent{OrderID: "ORD-2", OwnerID: uuid.New()}))

	assert.Equal(t, []string{"ORD-1", "ORD-2"}, all)
	assert.Equal(t, []string{"ORD-1"}, own)
}

func TestBroker_Unsubscribe(t *testing.T) {
	b := newBroker()

	calls := 0
	unsubscribe := b.Subscribe(nil, func(entities.OrderEvent) { calls++ })
	assert.Equal(t, 1, b.Subscribers())

	unsubscribe()
	unsubscribe()
	assert.Zero(t, b.Subscribers())

	require.NoError(t, b.Publish(context.Background(), entities.OrderEvent{OrderID: "ORD-1"}))
	assert.Zero(t, calls)
}

func TestBroker_UnsubscribeFromCallback(t *testing.T) {
	b := newBroker()

	var unsubscribe feed.Unsubscribe
	calls := 0
	unsubscribe = b.Subscribe(nil, func(entities.OrderEvent) {
		calls++
		unsubscribe()
	})

	require.NoError(t, b.Publish(context.Background(), entities.OrderEvent{OrderID: "ORD-1"}))
	require.NoError(t, b.Publish(context.Background(), entities.OrderEvent{OrderID: "ORD-2"}))
	assert.Equal(t, 1, calls)
}

func TestMessageCodec(t *testing.T) {
	event := entities.OrderEvent{
		ID:         uuid.New(),
		Type:       entities.OrderUpdated,
		OrderID:    "ORD-1",
		OwnerID:    uuid.New(),
		Status:     entities.StatusWashingComplete,
		OccurredAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	data, err := feed.Encode(event)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"washing-complete"`)

	got, err := feed.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, event, got)
}

func TestDecode_Rejects(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{`},
		{name: "missing order", data: `{"id":"` + uuid.NewString() + `","type":"insert","owner_id":"` + uuid.NewString() + `","status":"pending","occurred_at":"2026-03-01T10:00:00Z"}`},
		{name: "unknown type", data: `{"id":"` + uuid.NewString() + `","type":"upsert","order_id":"ORD-1","owner_id":"` + uuid.NewString() + `","status":"pending","occurred_at":"2026-03-01T10:00:00Z"}`},
		{name: "unknown status", data: `{"id":"` + uuid.NewString() + `","type":"update","order_id":"ORD-1","owner_id":"` + uuid.NewString() + `","status":"lost","occurred_at":"2026-03-01T10:00:00Z"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := feed.Decode([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}
