package entities

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleWorker  Role = "worker"
)

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrAuth
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleWorker
}

// CanUpdateStatus reports whether the role may mutate order status.
func (r Role) CanUpdateStatus() bool {
	return r == RoleWorker
}

// CanPlaceOrders reports whether the role may build a cart and check out.
func (r Role) CanPlaceOrders() bool {
	return r == RoleStudent
}

type Profile struct {
	UserID    uuid.UUID
	Email     string
	FullName  string
	RegNumber string
	Mobile    string
	Role      Role
	Hostel    string
	Room      string
	CreatedAt time.Time
}

// Session identifies the actor behind a request.
type Session struct {
	UserID    uuid.UUID
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}

// CanSee reports whether the session may observe the order.
func (s Session) CanSee(o Order) bool {
	return s.Role == RoleWorker || o.OwnerID == s.UserID
}

type SessionEventType string

const (
	SessionSignedIn  SessionEventType = "signed_in"
	SessionSignedOut SessionEventType = "signed_out"
)

type SessionEvent struct {
	Type    SessionEventType
	Session Session
}
