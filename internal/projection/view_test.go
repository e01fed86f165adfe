package projection

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/feed"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	studentID = uuid.New()
	student   = entities.Session{UserID: studentID, Role: entities.RoleStudent, TokenID: "t-student"}
	worker    = entities.Session{UserID: uuid.New(), Role: entities.RoleWorker, TokenID: "t-worker"}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scriptedFetcher hands out queued responses in order and reports every fetch start.
type scriptedFetcher struct {
	responses chan []entities.Order
	started   chan struct{}
	calls     atomic.Int32
}

func newScriptedFetcher() *scriptedFetcher {
	return &scriptedFetcher{
		responses: make(chan []entities.Order, 16),
		started:   make(chan struct{}, 16),
	}
}

func (f *scriptedFetcher) fetch(ctx context.Context) ([]entities.Order, error) {
	f.calls.Add(1)
	f.started <- struct{}{}
	select {
	case orders := <-f.responses:
		return orders, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func order(id string, status entities.Status) entities.Order {
	return entities.Order{ID: id, OwnerID: studentID, Status: status, Pickup: entities.PickupLocation{Hostel: "GANGA", Floor: 6}}
}

func waitStarted(t *testing.T, f *scriptedFetcher) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(time.Second):
		t.Fatal("fetch did not start")
	}
}

func statusOf(v *View, id string) entities.Status {
	for _, o := range v.Orders(entities.StatusAll, "") {
		if o.ID == id {
			return o.Status
		}
	}
	return 0
}

func bootstrap(t *testing.T, sess entities.Session, initial []entities.Order) (*View, *scriptedFetcher, *feed.Broker) {
	t.Helper()
	broker := feed.NewBroker(discardLogger())
	f := newScriptedFetcher()
	f.responses <- initial

	v := NewView(discardLogger(), sess, f.fetch, broker)
	require.NoError(t, v.Bootstrap(context.Background()))
	waitStarted(t, f)
	t.Cleanup(v.Close)
	return v, f, broker
}

func TestView_InsertTriggersRefetch(t *testing.T) {
	v, f, broker := bootstrap(t, student, []entities.Order{order("ORD-1", entities.StatusPending)})
	assert.Len(t, v.Orders(entities.StatusAll, ""), 1)

	f.responses <- []entities.Order{order("ORD-2", entities.StatusPending), order("ORD-1", entities.StatusPending)}
	require.NoError(t, broker.Publish(context.Background(), entities.OrderEvent{
		Type: entities.OrderInserted, OrderID: "ORD-2", OwnerID: studentID, Status: entities.StatusPending,
	}))

	require.Eventually(t, func() bool {
		return len(v.Orders(entities.StatusAll, "")) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestView_IgnoresOtherStudentsEvents(t *testing.T) {
	v, f, broker := bootstrap(t, student, []entities.Order{order("ORD-1", entities.StatusPending)})

	require.NoError(t, broker.Publish(context.Background(), entities.OrderEvent{
		Type: entities.OrderUpdated, OrderID: "ORD-1", OwnerID: uuid.New(), Status: entities.StatusDelivered,
	}))

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), f.calls.Load())
	assert.Equal(t, entities.StatusPending, statusOf(v, "ORD-1"))
}

func TestView_UpdatePatchSurvivesStaleFetch(t *testing.T) {
	v, f, broker := bootstrap(t, worker, []entities.Order{order("ORD-1", entities.StatusPending)})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, v.Refresh(context.Background()))
	}()
	waitStarted(t, f)

	require.NoError(t, broker.Publish(context.Background(), entities.OrderEvent{
		Type: entities.OrderUpdated, OrderID: "ORD-1", OwnerID: studentID, Status: entities.StatusInProcess,
	}))
	assert.Equal(t, entities.StatusInProcess, statusOf(v, "ORD-1"), "notification patches immediately")

	// the fetch in flight read the row before the update landed
	f.responses <- []entities.Order{order("ORD-1", entities.StatusPending)}
	wg.Wait()
	assert.Equal(t, entities.StatusInProcess, statusOf(v, "ORD-1"))

	waitStarted(t, f)
	f.responses <- []entities.Order{order("ORD-1", entities.StatusInProcess)}

	require.Eventually(t, func() bool {
		v.mu.Lock()
		defer v.mu.Unlock()
		return len(v.patches) == 0 && v.applied >= v.wanted
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, entities.StatusInProcess, statusOf(v, "ORD-1"))
}

func TestView_RedeliveredUpdateDoesNotMoveBackwards(t *testing.T) {
	v, f, broker := bootstrap(t, worker, []entities.Order{order("ORD-1", entities.StatusDelivered)})
	<-v.Changes()

	require.NoError(t, broker.Publish(context.Background(), entities.OrderEvent{
		Type: entities.OrderUpdated, OrderID: "ORD-1", OwnerID: studentID, Status: entities.StatusPickedUp,
	}))

	assert.Equal(t, entities.StatusDelivered, statusOf(v, "ORD-1"))
	select {
	case <-v.Changes():
		t.Fatal("stale update must not signal a change")
	default:
	}
	v.mu.Lock()
	assert.Empty(t, v.patches)
	v.mu.Unlock()

	waitStarted(t, f)
	f.responses <- []entities.Order{order("ORD-1", entities.StatusDelivered)}
	require.Eventually(t, func() bool {
		v.mu.Lock()
		defer v.mu.Unlock()
		return v.applied >= v.wanted
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, entities.StatusDelivered, statusOf(v, "ORD-1"))
}

func TestView_ConcurrentRefreshesShareOneFetch(t *testing.T) {
	v, f, _ := bootstrap(t, worker, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, v.Refresh(context.Background()))
	}()
	waitStarted(t, f)

	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, v.Refresh(context.Background()))
		}()
	}
	time.Sleep(50 * time.Millisecond)

	f.responses <- []entities.Order{order("ORD-1", entities.StatusPending)}
	wg.Wait()

	assert.Equal(t, int32(2), f.calls.Load())
	assert.Len(t, v.Orders(entities.StatusAll, ""), 1)
}

func TestView_OptimisticThenAuthoritative(t *testing.T) {
	v, f, _ := bootstrap(t, worker, []entities.Order{order("ORD-1", entities.StatusPending)})

	v.ApplyOptimistic("ORD-1", entities.StatusPickedUp)
	assert.Equal(t, entities.StatusPickedUp, statusOf(v, "ORD-1"))

	f.responses <- []entities.Order{order("ORD-1", entities.StatusInProcess)}
	require.NoError(t, v.Refresh(context.Background()))
	assert.Equal(t, entities.StatusInProcess, statusOf(v, "ORD-1"))
}

func TestView_CloseDropsLateResponse(t *testing.T) {
	v, f, broker := bootstrap(t, worker, []entities.Order{order("ORD-1", entities.StatusPending)})

	done := make(chan error, 1)
	go func() { done <- v.Refresh(context.Background()) }()
	waitStarted(t, f)

	v.Close()
	f.responses <- []entities.Order{}
	<-done

	assert.Len(t, v.Orders(entities.StatusAll, ""), 1)
	assert.Zero(t, broker.Subscribers())

	_, open := <-v.Changes()
	for open {
		_, open = <-v.Changes()
	}
	assert.ErrorIs(t, v.Bootstrap(context.Background()), ErrClosed)
}

func TestView_Filters(t *testing.T) {
	v, _, _ := bootstrap(t, worker, []entities.Order{
		order("ORD-1", entities.StatusPending),
		order("ORD-2", entities.StatusDelivered),
		{ID: "ORD-3", Status: entities.StatusPending, Pickup: entities.PickupLocation{Hostel: "VEDAVATI", Floor: 12}},
	})

	assert.Len(t, v.Orders("pending", ""), 2)
	assert.Len(t, v.Orders("pending", "vedavati"), 1)
	assert.Len(t, v.Orders(entities.StatusAll, "ord-"), 3)
}
