package projection

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
)

type SessionSource interface {
	OnSessionChange(fn func(entities.SessionEvent)) (unsubscribe func())
}

// Hub tracks live views by token id and closes them when their session signs out.
type Hub struct {
	logger *slog.Logger
	source SessionSource

	once        sync.Once
	unsubscribe func()

	mu    sync.Mutex
	views map[string]map[*View]struct{}
}

func NewHub(logger *slog.Logger, source SessionSource) *Hub {
	return &Hub{
		logger: logger.With(slog.String("service", "hub")),
		source: source,
		views:  make(map[string]map[*View]struct{}),
	}
}

// Register tracks v under the session's token. The returned func forgets it.
func (h *Hub) Register(tokenID string, v *View) (release func()) {
	h.subscribe()

	h.mu.Lock()
	set, ok := h.views[tokenID]
	if !ok {
		set = make(map[*View]struct{})
		h.views[tokenID] = set
	}
	set[v] = struct{}{}
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if set, ok := h.views[tokenID]; ok {
			delete(set, v)
			if len(set) == 0 {
				delete(h.views, tokenID)
			}
		}
	}
}

// Start keeps the hub subscribed until ctx is done and then closes every view.
func (h *Hub) Start(ctx context.Context) error {
	h.subscribe()
	<-ctx.Done()

	if h.unsubscribe != nil {
		h.unsubscribe()
	}

	h.mu.Lock()
	views := h.views
	h.views = make(map[string]map[*View]struct{})
	h.mu.Unlock()

	for _, set := range views {
		for v := range set {
			v.Close()
		}
	}
	return nil
}

// Len reports the number of live views.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for _, set := range h.views {
		n += len(set)
	}
	return n
}

func (h *Hub) subscribe() {
	h.once.Do(func() {
		h.unsubscribe = h.source.OnSessionChange(h.handle)
	})
}

func (h *Hub) handle(e entities.SessionEvent) {
	if e.Type != entities.SessionSignedOut {
		return
	}

	h.mu.Lock()
	set := h.views[e.Session.TokenID]
	delete(h.views, e.Session.TokenID)
	h.mu.Unlock()

	for v := range set {
		v.Close()
	}
	if len(set) > 0 {
		h.logger.Info("closed views of signed out session",
			slog.String("user_id", e.Session.UserID.String()),
			slog.Int("views", len(set)),
		)
	}
}

// ApplyOptimistic patches every live view of the session after a mutation it made itself.
func (h *Hub) ApplyOptimistic(tokenID, orderID string, status entities.Status) {
	h.mu.Lock()
	views := slices.Collect(maps.Keys(h.views[tokenID]))
	h.mu.Unlock()

	for _, v := range views {
		v.ApplyOptimistic(orderID, status)
	}
}
