package entities

import "fmt"

// DefaultSlotCapacity is the number of orders a pickup slot takes unless configured otherwise.
const DefaultSlotCapacity = 20

// Slot is a pickup time window with bounded capacity.
type Slot struct {
	Label         string
	TotalCapacity int
	BookedCount   int
}

func (s Slot) IsAvailable() bool {
	return s.BookedCount < s.TotalCapacity
}

func (s Slot) Remaining() int {
	return max(s.TotalCapacity-s.BookedCount, 0)
}

// Reserve books one place in the slot. It never lets BookedCount exceed TotalCapacity.
func (s *Slot) Reserve() error {
	if !s.IsAvailable() {
		return fmt.Errorf("%w: %s", ErrSlotFull, s.Label)
	}
	s.BookedCount++
	return nil
}

// SlotTracker is a local, advisory view over the active slot set. It is rebuilt from
// the store on every load; the store enforces capacity on its own.
type SlotTracker struct {
	order []string
	slots map[string]*Slot
}

func NewSlotTracker(slots []Slot) *SlotTracker {
	t := &SlotTracker{
		order: make([]string, 0, len(slots)),
		slots: make(map[string]*Slot, len(slots)),
	}
	for _, s := range slots {
		if _, dup := t.slots[s.Label]; dup {
			continue
		}
		s := s
		t.order = append(t.order, s.Label)
		t.slots[s.Label] = &s
	}
	return t
}

func (t *SlotTracker) Get(label string) (Slot, error) {
	s, ok := t.slots[label]
	if !ok {
		return Slot{}, fmt.Errorf("%w: %s", ErrSlotNotFound, label)
	}
	return *s, nil
}

func (t *SlotTracker) IsAvailable(label string) bool {
	s, ok := t.slots[label]
	return ok && s.IsAvailable()
}

func (t *SlotTracker) Remaining(label string) int {
	s, ok := t.slots[label]
	if !ok {
		return 0
	}
	return s.Remaining()
}

func (t *SlotTracker) Reserve(label string) error {
	s, ok := t.slots[label]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, label)
	}
	return s.Reserve()
}

// Slots returns a copy of the slot set in load order.
func (t *SlotTracker) Slots() []Slot {
	out := make([]Slot, 0, len(t.order))
	for _, label := range t.order {
		out = append(out, *t.slots[label])
	}
	return out
}
