package feed

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
)

// Unsubscribe stops a subscription. Calling it more than once is harmless.
type Unsubscribe func()

type subscription struct {
	predicate func(entities.OrderEvent) bool
	callback  func(entities.OrderEvent)
}

// Broker fans order events out to in-process subscribers.
type Broker struct {
	logger *slog.Logger

	mu   sync.RWMutex
	next int
	subs map[int]subscription
}

func NewBroker(logger *slog.Logger) *Broker {
	return &Broker{
		logger: logger.With(slog.String("service", "broker")),
		subs:   make(map[int]subscription),
	}
}

// Subscribe registers callback for events matching predicate; a nil predicate
// matches everything. Callbacks run on the publisher's goroutine and must not block.
func (b *Broker) Subscribe(predicate func(entities.OrderEvent) bool, callback func(entities.OrderEvent)) Unsubscribe {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = subscription{predicate: predicate, callback: callback}
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

func (b *Broker) Publish(ctx context.Context, event entities.OrderEvent) error {
	b.mu.RLock()
	matched := make([]func(entities.OrderEvent), 0, len(b.subs))
	for _, s := range b.subs {
		if s.predicate == nil || s.predicate(event) {
			matched = append(matched, s.callback)
		}
	}
	b.mu.RUnlock()

	for _, cb := range matched {
		cb(event)
	}

	b.logger.DebugContext(ctx, "order event dispatched",
		slog.String("order_id", event.OrderID),
		slog.String("type", string(event.Type)),
		slog.Int("subscribers", len(matched)),
	)
	return nil
}

// Subscribers reports the number of live subscriptions.
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
