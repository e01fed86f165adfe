package repo

import (
	"database/sql"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"

	"github.com/google/uuid"
)

type Order struct {
	OrderID   string    `db:"order_id"`
	UserID    uuid.UUID `db:"user_id"`
	Hostel    string    `db:"hostel"`
	Floor     int       `db:"floor"`
	SlotLabel string    `db:"slot_label"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	FullName  sql.NullString `db:"full_name"`
	RegNumber sql.NullString `db:"reg_number"`
}

type LineItem struct {
	OrderID     string `db:"order_id"`
	Position    int    `db:"position"`
	ServiceType string `db:"service_type"`
	Item        string `db:"item"`
	Quantity    int    `db:"quantity"`
}

type Slot struct {
	Label         string `db:"label"`
	TotalCapacity int    `db:"total_capacity"`
	BookedCount   int    `db:"booked_count"`
}

type User struct {
	ID           uuid.UUID      `db:"id"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	FullName     string         `db:"full_name"`
	RegNumber    string         `db:"reg_number"`
	Mobile       string         `db:"mobile"`
	Hostel       sql.NullString `db:"hostel"`
	RoomNumber   sql.NullString `db:"room_number"`
	CreatedAt    time.Time      `db:"created_at"`
}

func SlotToEntity(s Slot) entities.Slot {
	return entities.Slot{
		Label:         s.Label,
		TotalCapacity: s.TotalCapacity,
		BookedCount:   s.BookedCount,
	}
}

func UserToProfile(u User) (entities.Profile, error) {
	role, err := entities.ParseRole(u.Role)
	if err != nil {
		return entities.Profile{}, fmt.Errorf("user %s has unknown role %q", u.ID, u.Role)
	}
	return entities.Profile{
		UserID:    u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		RegNumber: u.RegNumber,
		Mobile:    u.Mobile,
		Role:      role,
		Hostel:    nullStringToString(u.Hostel),
		Room:      nullStringToString(u.RoomNumber),
		CreatedAt: u.CreatedAt,
	}, nil
}

// LineItemsToEntity groups rows of one order by their position.
func LineItemsToEntity(rows []LineItem) ([]entities.LineItem, error) {
	var (
		out     []entities.LineItem
		lastPos = -1
	)
	for _, row := range rows {
		if row.Position != lastPos {
			st := entities.ServiceType(row.ServiceType)
			if !st.IsValid() {
				return nil, fmt.Errorf("order %s has unknown service type %q", row.OrderID, row.ServiceType)
			}
			out = append(out, entities.LineItem{ServiceType: st, Counts: make(map[string]int)})
			lastPos = row.Position
		}
		out[len(out)-1].Counts[row.Item] += row.Quantity
	}
	return out, nil
}

func OrderToEntity(o Order, items []LineItem) (entities.Order, error) {
	status, err := entities.ParseStatus(o.Status)
	if err != nil {
		return entities.Order{}, fmt.Errorf("order %s: %w", o.OrderID, err)
	}
	lines, err := LineItemsToEntity(items)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		ID:        o.OrderID,
		OwnerID:   o.UserID,
		LineItems: lines,
		Pickup:    entities.PickupLocation{Hostel: o.Hostel, Floor: o.Floor},
		SlotLabel: o.SlotLabel,
		Status:    status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	if o.FullName.Valid || o.RegNumber.Valid {
		order.Owner = &entities.Owner{
			FullName:  nullStringToString(o.FullName),
			RegNumber: nullStringToString(o.RegNumber),
		}
	}
	return order, nil
}

// OrderToRows flattens an order into its table rows. Items of a line are sorted by name.
func OrderToRows(o entities.Order) (Order, []LineItem) {
	order := Order{
		OrderID:   o.ID,
		UserID:    o.OwnerID,
		Hostel:    o.Pickup.Hostel,
		Floor:     o.Pickup.Floor,
		SlotLabel: o.SlotLabel,
		Status:    o.Status.String(),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}

	var items []LineItem
	for pos, line := range o.LineItems {
		for _, name := range sortedItems(line.Counts) {
			items = append(items, LineItem{
				OrderID:     o.ID,
				Position:    pos,
				ServiceType: string(line.ServiceType),
				Item:        name,
				Quantity:    line.Counts[name],
			})
		}
	}
	return order, items
}

func sortedItems(counts map[string]int) []string {
	out := make([]string, 0, len(counts))
	for _, name := range slices.Sorted(maps.Keys(counts)) {
		if counts[name] > 0 {
			out = append(out, name)
		}
	}
	return out
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func stringToNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
