package entities

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/google/uuid"
)

type LineItem struct {
	ServiceType ServiceType
	Counts      map[string]int
}

func (l LineItem) TotalCount() int {
	total := 0
	for _, n := range l.Counts {
		total += n
	}
	return total
}

// Owner carries the student-facing fields shown to workers.
type Owner struct {
	FullName  string
	RegNumber string
}

type Order struct {
	ID        string
	OwnerID   uuid.UUID
	LineItems []LineItem
	Pickup    PickupLocation
	SlotLabel string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// Owner is only populated for worker listings.
	Owner *Owner
}

// NewOrderID builds a human readable order identifier.
func NewOrderID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

// NewOrder assembles a pending order from committed cart lines.
func NewOrder(id string, ownerID uuid.UUID, lines []CartLineItem, pickup PickupLocation, slotLabel string, now time.Time) (Order, error) {
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}
	if err := pickup.Validate(); err != nil {
		return Order{}, err
	}
	if strings.TrimSpace(slotLabel) == "" {
		return Order{}, fmt.Errorf("%w: empty slot", ErrInvalidOrder)
	}

	items := make([]LineItem, 0, len(lines))
	for _, l := range lines {
		counts := make(map[string]int, len(l.Counts))
		for item, n := range l.Counts {
			if n < 0 {
				return Order{}, fmt.Errorf("%w: negative count for %s", ErrInvalidOrder, item)
			}
			if n > 0 {
				counts[item] = n
			}
		}
		items = append(items, LineItem{ServiceType: l.ServiceType, Counts: counts})
	}

	order := Order{
		ID:        id,
		OwnerID:   ownerID,
		LineItems: items,
		Pickup:    pickup,
		SlotLabel: slotLabel,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if order.TotalItems() == 0 {
		return Order{}, ErrEmptyCart
	}
	return order, nil
}

func (o Order) TotalItems() int {
	total := 0
	for _, l := range o.LineItems {
		total += l.TotalCount()
	}
	return total
}

// ApplyTransition moves the order forward and stamps UpdatedAt. Same-state, backward
// and post-delivery transitions are rejected and leave the order untouched.
func (o *Order) ApplyTransition(target Status, now time.Time) error {
	switch {
	case !target.IsValid():
		return fmt.Errorf("%w: %w", ErrInvalidTransition, ErrInvalidStatus)
	case o.Status.IsTerminal():
		return fmt.Errorf("%w: order %s is already delivered", ErrInvalidTransition, o.ID)
	case target == o.Status:
		return fmt.Errorf("%w: order %s is already %s", ErrInvalidTransition, o.ID, target)
	case !CanTransition(o.Status, target):
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, target)
	}
	o.Status = target
	o.UpdatedAt = now
	return nil
}

// Clone returns a deep copy safe to hand to another goroutine.
func (o Order) Clone() Order {
	lines := make([]LineItem, 0, len(o.LineItems))
	for _, l := range o.LineItems {
		lines = append(lines, LineItem{ServiceType: l.ServiceType, Counts: maps.Clone(l.Counts)})
	}
	o.LineItems = lines
	if o.Owner != nil {
		owner := *o.Owner
		o.Owner = &owner
	}
	return o
}
