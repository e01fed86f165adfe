package entities

import (
	"time"

	"github.com/google/uuid"
)

type OrderEventType string

const (
	OrderInserted OrderEventType = "insert"
	OrderUpdated  OrderEventType = "update"
	OrderDeleted  OrderEventType = "delete"
)

func (t OrderEventType) IsValid() bool {
	return t == OrderInserted || t == OrderUpdated || t == OrderDeleted
}

// OrderEvent is a change-feed notification. Receivers treat it as a hint to patch or
// refetch, not as the full order.
type OrderEvent struct {
	ID         uuid.UUID
	Type       OrderEventType
	OrderID    string
	OwnerID    uuid.UUID
	Status     Status
	OccurredAt time.Time
}

func NewOrderEvent(t OrderEventType, o Order, now time.Time) OrderEvent {
	return OrderEvent{
		ID:         uuid.New(),
		Type:       t,
		OrderID:    o.ID,
		OwnerID:    o.OwnerID,
		Status:     o.Status,
		OccurredAt: now,
	}
}
