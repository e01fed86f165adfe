package entities

import (
	"maps"
	"slices"

	"github.com/google/uuid"
)

// CartLineItem is a committed, immutable service selection waiting for checkout.
type CartLineItem struct {
	ID          string
	ServiceType ServiceType
	Counts      map[string]int
}

func (l CartLineItem) TotalCount() int {
	total := 0
	for _, n := range l.Counts {
		total += n
	}
	return total
}

// Cart accumulates item selections for one service type at a time and keeps the
// committed line items until checkout. It is not safe for concurrent use.
type Cart struct {
	active ServiceType
	counts map[string]int
	lines  []CartLineItem

	newID func() string
}

func NewCart() *Cart {
	return &Cart{
		counts: make(map[string]int),
		newID:  uuid.NewString,
	}
}

// ActiveService is the service type of the working selection, empty before the first AddItem.
func (c *Cart) ActiveService() ServiceType {
	return c.active
}

// Selection returns a copy of the working counts, zero entries omitted.
func (c *Cart) Selection() map[string]int {
	out := make(map[string]int, len(c.counts))
	for item, n := range c.counts {
		if n > 0 {
			out[item] = n
		}
	}
	return out
}

// AddItem increments the item count. Switching to another service type drops the
// previous working selection.
func (c *Cart) AddItem(serviceType ServiceType, item string) {
	if c.active != serviceType {
		c.active = serviceType
		clear(c.counts)
	}
	c.counts[item]++
}

// RemoveItem decrements the item count. It is a no-op at zero or for a service type
// that is not being selected.
func (c *Cart) RemoveItem(serviceType ServiceType, item string) {
	if c.active != serviceType {
		return
	}
	if c.counts[item] > 0 {
		c.counts[item]--
	}
}

func (c *Cart) TotalCount() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Commit snapshots the working selection into a new line item and resets the counts.
func (c *Cart) Commit() (CartLineItem, error) {
	if c.TotalCount() == 0 {
		return CartLineItem{}, ErrEmptySelection
	}

	line := CartLineItem{
		ID:          c.newID(),
		ServiceType: c.active,
		Counts:      c.Selection(),
	}
	c.lines = append(c.lines, line)
	clear(c.counts)
	return cloneLine(line), nil
}

// Lines returns the committed line items in commit order.
func (c *Cart) Lines() []CartLineItem {
	out := make([]CartLineItem, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, cloneLine(l))
	}
	return out
}

// RemoveLine deletes the committed line with the given id.
func (c *Cart) RemoveLine(id string) bool {
	i := slices.IndexFunc(c.lines, func(l CartLineItem) bool { return l.ID == id })
	if i < 0 {
		return false
	}
	c.lines = slices.Delete(c.lines, i, i+1)
	return true
}

func (c *Cart) LineTotal() int {
	total := 0
	for _, l := range c.lines {
		total += l.TotalCount()
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear drops committed lines and the working selection.
func (c *Cart) Clear() {
	c.lines = nil
	c.active = ""
	clear(c.counts)
}

func cloneLine(l CartLineItem) CartLineItem {
	l.Counts = maps.Clone(l.Counts)
	return l
}
