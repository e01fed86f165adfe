package projection

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/feed"

	"golang.org/x/sync/singleflight"
)

var ErrClosed = errors.New("view closed")

// Fetcher loads the authoritative order list for the view's session.
type Fetcher func(ctx context.Context) ([]entities.Order, error)

type Subscriber interface {
	Subscribe(predicate func(entities.OrderEvent) bool, callback func(entities.OrderEvent)) feed.Unsubscribe
}

type patch struct {
	status entities.Status
	// generation of the newest fetch started before the patch arrived
	gen uint64
}

// View is a live, session-scoped copy of the order list. It reconciles local
// optimistic patches with change notifications and authoritative refetches.
type View struct {
	logger  *slog.Logger
	session entities.Session
	fetch   Fetcher
	sub     Subscriber
	group   singleflight.Group

	mu          sync.Mutex
	orders      []entities.Order
	patches     map[string]patch
	started     uint64
	applied     uint64
	wanted      uint64
	closed      bool
	unsubscribe feed.Unsubscribe
	cancel      context.CancelFunc

	trigger chan struct{}
	changes chan struct{}
}

func NewView(logger *slog.Logger, sess entities.Session, fetch Fetcher, sub Subscriber) *View {
	return &View{
		logger:  logger.With(slog.String("service", "projection"), slog.String("user_id", sess.UserID.String())),
		session: sess,
		fetch:   fetch,
		sub:     sub,
		patches: make(map[string]patch),
		trigger: make(chan struct{}, 1),
		changes: make(chan struct{}, 1),
	}
}

// Bootstrap subscribes to change notifications and then loads the list once, so no
// change between the two can be missed. Background refetches run until ctx is done
// or the view is closed.
func (v *View) Bootstrap(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.unsubscribe = v.sub.Subscribe(v.visible, v.notify)
	v.mu.Unlock()

	go v.refetchLoop(ctx)

	return v.Refresh(ctx)
}

// Refresh fetches the list now. Concurrent calls share one fetch.
func (v *View) Refresh(ctx context.Context) error {
	_, err, _ := v.group.Do("orders", func() (any, error) {
		gen, ok := v.beginFetch()
		if !ok {
			return nil, ErrClosed
		}
		orders, err := v.fetch(ctx)
		if err != nil {
			return nil, err
		}
		v.apply(gen, orders)
		return nil, nil
	})
	return err
}

// Orders returns a copy of the current list narrowed by the filters.
func (v *View) Orders(filter entities.StatusFilter, query string) []entities.Order {
	v.mu.Lock()
	out := make([]entities.Order, 0, len(v.orders))
	for _, o := range v.orders {
		out = append(out, o.Clone())
	}
	v.mu.Unlock()

	return entities.FilterOrders(out, filter, query)
}

// ApplyOptimistic patches the local status right after a successful mutation. The
// next authoritative fetch or notification wins over it.
func (v *View) ApplyOptimistic(orderID string, status entities.Status) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	if v.setStatus(orderID, status) {
		v.changed()
	}
}

// Changes is signalled after every visible change and closed with the view.
func (v *View) Changes() <-chan struct{} {
	return v.changes
}

// Close unsubscribes and drops any fetch still in flight.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true
	if v.unsubscribe != nil {
		v.unsubscribe()
	}
	if v.cancel != nil {
		v.cancel()
	}
	close(v.changes)
}

func (v *View) visible(e entities.OrderEvent) bool {
	return v.session.Role == entities.RoleWorker || e.OwnerID == v.session.UserID
}

func (v *View) notify(e entities.OrderEvent) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	if e.Type == entities.OrderUpdated && e.Status.IsValid() && !v.behind(e.OrderID, e.Status) {
		v.patches[e.OrderID] = patch{status: e.Status, gen: v.started}
		if v.setStatus(e.OrderID, e.Status) {
			v.changed()
		}
	}
	v.wanted = v.started + 1
	v.mu.Unlock()

	select {
	case v.trigger <- struct{}{}:
	default:
	}
}

func (v *View) refetchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-v.trigger:
		}

		for v.stale() {
			if err := v.Refresh(ctx); err != nil {
				if !errors.Is(err, ErrClosed) && ctx.Err() == nil {
					v.logger.Warn("failed to refetch orders", slog.Any("error", err))
				}
				break
			}
		}
	}
}

func (v *View) stale() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.closed && v.applied < v.wanted
}

func (v *View) beginFetch() (uint64, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return 0, false
	}
	v.started++
	return v.started, true
}

// apply installs a fetch result unless a newer one already landed. Notifications
// that arrived after the fetch started are replayed on top of it.
func (v *View) apply(gen uint64, orders []entities.Order) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || gen <= v.applied {
		return
	}
	v.applied = gen
	v.orders = orders

	for id, p := range v.patches {
		if gen > p.gen {
			delete(v.patches, id)
			continue
		}
		if !v.behind(id, p.status) {
			v.setStatus(id, p.status)
		}
	}
	v.changed()
}

// behind reports whether status is not past the local one. Statuses only move
// forward, so such an update is a redelivery.
func (v *View) behind(orderID string, status entities.Status) bool {
	for _, o := range v.orders {
		if o.ID == orderID {
			return status.Rank() <= o.Status.Rank()
		}
	}
	return false
}

func (v *View) setStatus(orderID string, status entities.Status) bool {
	for i := range v.orders {
		if v.orders[i].ID == orderID {
			if v.orders[i].Status == status {
				return false
			}
			v.orders[i].Status = status
			return true
		}
	}
	return false
}

// changed must be called with mu held.
func (v *View) changed() {
	select {
	case v.changes <- struct{}{}:
	default:
	}
}
