package entities

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrSlotNotFound  = errors.New("slot not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidOrder  = errors.New("invalid order")

	ErrSlotFull          = errors.New("slot is full")
	ErrEmptySelection    = errors.New("no items selected")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrLineNotFound      = errors.New("cart line not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrStatusConflict    = errors.New("order status changed concurrently")
	ErrUnknownItem       = errors.New("unknown service or clothing item")
	ErrInvalidPickup     = errors.New("invalid pickup location")
	ErrDuplicateRequest  = errors.New("duplicate request")

	ErrAuth               = errors.New("authentication failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserExists         = errors.New("user already exists")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("action not permitted for role")

	// ErrStore marks failures of the backing store or network; callers may retry.
	ErrStore = errors.New("store unavailable")
)
