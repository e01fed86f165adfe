package entities_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	owner := uuid.New()
	pickup := entities.PickupLocation{Hostel: "GANGA", Floor: 21}
	lines := []entities.CartLineItem{
		{ID: "l1", ServiceType: entities.ServiceWashing, Counts: map[string]int{"shirts": 2, "trousers": 1}},
		{ID: "l2", ServiceType: entities.ServiceIronAndWashing, Counts: map[string]int{"sarees": 1, "tops": 0}},
	}

	testCases := []struct {
		name    string
		lines   []entities.CartLineItem
		pickup  entities.PickupLocation
		slot    string
		wantErr error
	}{
		{name: "ok", lines: lines, pickup: pickup, slot: "11:00 AM"},
		{name: "no lines", lines: nil, pickup: pickup, slot: "11:00 AM", wantErr: entities.ErrEmptyCart},
		{
			name:    "only zero counts",
			lines:   []entities.CartLineItem{{ServiceType: entities.ServiceWashing, Counts: map[string]int{"shirts": 0}}},
			pickup:  pickup,
			slot:    "11:00 AM",
			wantErr: entities.ErrEmptyCart,
		},
		{name: "unknown hostel", lines: lines, pickup: entities.PickupLocation{Hostel: "YAMUNA", Floor: 6}, slot: "11:00 AM", wantErr: entities.ErrInvalidPickup},
		{name: "floor without pickup point", lines: lines, pickup: entities.PickupLocation{Hostel: "VEDAVATI", Floor: 21}, slot: "11:00 AM", wantErr: entities.ErrInvalidPickup},
		{name: "missing slot", lines: lines, pickup: pickup, slot: " ", wantErr: entities.ErrInvalidOrder},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := entities.NewOrder("ORD-1", owner, tc.lines, tc.pickup, tc.slot, now)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			want := entities.Order{
				ID:      "ORD-1",
				OwnerID: owner,
				LineItems: []entities.LineItem{
					{ServiceType: entities.ServiceWashing, Counts: map[string]int{"shirts": 2, "trousers": 1}},
					{ServiceType: entities.ServiceIronAndWashing, Counts: map[string]int{"sarees": 1}},
				},
				Pickup:    pickup,
				SlotLabel: tc.slot,
				Status:    entities.StatusPending,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if diff := cmp.Diff(want, order); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, 4, order.TotalItems())
		})
	}
}

func TestNewOrderID(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	id := entities.NewOrderID(now)
	assert.Regexp(t, regexp.MustCompile(`^ORD-1700000000123-[0-9A-F]{4}$`), id)
}

func TestOrder_Clone(t *testing.T) {
	order := entities.Order{
		ID:        "ORD-1",
		LineItems: []entities.LineItem{{ServiceType: entities.ServiceWashing, Counts: map[string]int{"shirts": 1}}},
		Owner:     &entities.Owner{FullName: "Asha"},
	}
	clone := order.Clone()
	clone.LineItems[0].Counts["shirts"] = 9
	clone.Owner.FullName = "Other"

	assert.Equal(t, 1, order.LineItems[0].Counts["shirts"])
	assert.Equal(t, "Asha", order.Owner.FullName)
}

func TestRole(t *testing.T) {
	assert.True(t, entities.RoleWorker.CanUpdateStatus())
	assert.False(t, entities.RoleStudent.CanUpdateStatus())
	assert.True(t, entities.RoleStudent.CanPlaceOrders())
	assert.False(t, entities.RoleWorker.CanPlaceOrders())

	_, err := entities.ParseRole("admin")
	assert.ErrorIs(t, err, entities.ErrAuth)
}

func TestSession_CanSee(t *testing.T) {
	owner := uuid.New()
	order := entities.Order{ID: "ORD-1", OwnerID: owner}

	assert.True(t, entities.Session{UserID: owner, Role: entities.RoleStudent}.CanSee(order))
	assert.False(t, entities.Session{UserID: uuid.New(), Role: entities.RoleStudent}.CanSee(order))
	assert.True(t, entities.Session{UserID: uuid.New(), Role: entities.RoleWorker}.CanSee(order))
}
