package entities

import "fmt"

// Status is the lifecycle position of an order. The zero value is not a valid status.
type Status int

const (
	StatusPending Status = iota + 1
	StatusPickedUp
	StatusInProcess
	StatusWashingComplete
	StatusDelivered
)

var statusNames = map[Status]string{
	StatusPending:         "pending",
	StatusPickedUp:        "picked-up",
	StatusInProcess:       "in-process",
	StatusWashingComplete: "washing-complete",
	StatusDelivered:       "delivered",
}

// Statuses lists every status in lifecycle order.
func Statuses() []Status {
	return []Status{StatusPending, StatusPickedUp, StatusInProcess, StatusWashingComplete, StatusDelivered}
}

func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// Rank is the position of the status in the lifecycle, starting at 1.
// Invalid statuses rank 0.
func (s Status) Rank() int {
	if !s.IsValid() {
		return 0
	}
	return int(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}

// CanTransition reports whether target is strictly later than current.
// Intermediate states may be skipped.
func CanTransition(current, target Status) bool {
	if !current.IsValid() || !target.IsValid() {
		return false
	}
	return target.Rank() > current.Rank()
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(data []byte) error {
	st, err := ParseStatus(string(data))
	if err != nil {
		return err
	}
	*s = st
	return nil
}
