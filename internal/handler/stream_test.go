package handler_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/feed"
	"github.com/SergeyBogomolovv/campus-laundry/internal/handler"
	mocks "github.com/SergeyBogomolovv/campus-laundry/internal/handler/mocks"
	"github.com/SergeyBogomolovv/campus-laundry/internal/projection"
	"github.com/SergeyBogomolovv/campus-laundry/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingRegistry struct {
	mu       sync.Mutex
	views    []*projection.View
	released int
}

func (r *recordingRegistry) Register(_ string, v *projection.View) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, v)
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.released++
	}
}

func (r *recordingRegistry) last() *projection.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.views[len(r.views)-1]
}

type sseEvent struct {
	name string
	data string
}

func readEvent(t *testing.T, rd *bufio.Reader) sseEvent {
	t.Helper()
	var e sseEvent
	for {
		line, err := rd.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			return e
		case strings.HasPrefix(line, "event: "):
			e.name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			e.data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func newStreamServer(t *testing.T) (*httptest.Server, *mocks.MockOrderService, *feed.Broker, *recordingRegistry) {
	svc := mocks.NewMockOrderService(t)
	broker := feed.NewBroker(discardLogger())
	registry := &recordingRegistry{}
	h := handler.NewStreamHandler(discardLogger(), svc, broker, registry, time.Minute, authenticate())

	r := chi.NewRouter()
	h.Init(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, svc, broker, registry
}

func openStream(t *testing.T, ctx context.Context, url string) *bufio.Reader {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+studentToken)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))
	return bufio.NewReader(res.Body)
}

func TestStreamHandler_PushesUpdates(t *testing.T) {
	srv, svc, broker, registry := newStreamServer(t)

	var calls atomic.Int32
	svc.EXPECT().
		ListOrders(mock.Anything, service.ListFilter{Status: entities.StatusAll}).
		RunAndReturn(func(context.Context, service.ListFilter) ([]entities.Order, error) {
			if calls.Add(1) == 1 {
				return []entities.Order{sampleOrder(entities.StatusPending)}, nil
			}
			return []entities.Order{sampleOrder(entities.StatusPickedUp)}, nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rd := openStream(t, ctx, srv.URL+"/orders/stream")

	first := readEvent(t, rd)
	assert.Equal(t, "orders", first.name)
	assert.Contains(t, first.data, `"status":"pending"`)

	require.NoError(t, broker.Publish(ctx, entities.OrderEvent{
		Type:    entities.OrderUpdated,
		OrderID: sampleOrder(0).ID,
		OwnerID: studentSession.UserID,
		Status:  entities.StatusPickedUp,
	}))

	for {
		next := readEvent(t, rd)
		require.Equal(t, "orders", next.name)
		if strings.Contains(next.data, `"status":"picked-up"`) {
			break
		}
	}

	registry.last().Close()
	for {
		e := readEvent(t, rd)
		if e.name == "closed" {
			break
		}
		assert.Equal(t, "orders", e.name)
	}

	assert.Eventually(t, func() bool {
		registry.mu.Lock()
		defer registry.mu.Unlock()
		return registry.released == 1
	}, time.Second, 10*time.Millisecond)
}

func TestStreamHandler_FiltersSnapshot(t *testing.T) {
	srv, svc, _, _ := newStreamServer(t)
	svc.EXPECT().
		ListOrders(mock.Anything, mock.Anything).
		Return([]entities.Order{sampleOrder(entities.StatusPending)}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rd := openStream(t, ctx, srv.URL+"/orders/stream?status=delivered")

	first := readEvent(t, rd)
	assert.Equal(t, "orders", first.name)
	assert.Equal(t, "[]", first.data)
}

func TestStreamHandler_Rejects(t *testing.T) {
	srv, _, _, _ := newStreamServer(t)

	res, err := http.Get(srv.URL + "/orders/stream")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/orders/stream?status=lost", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
