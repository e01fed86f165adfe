package handler

import (
	"maps"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/service"
)

// Order is a placed laundry order
type Order struct {
	OrderID    string     `json:"order_id"`
	OwnerID    string     `json:"owner_id"`
	Owner      *Owner     `json:"owner,omitempty"`
	LineItems  []LineItem `json:"line_items"`
	Pickup     Pickup     `json:"pickup"`
	Slot       string     `json:"slot"`
	Status     string     `json:"status"`
	TotalItems int        `json:"total_items"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Owner is shown to workers only
type Owner struct {
	FullName  string `json:"full_name"`
	RegNumber string `json:"reg_number"`
}

// LineItem is one service type with per-item counts
type LineItem struct {
	ID          string         `json:"id,omitempty"`
	ServiceType string         `json:"service_type"`
	Items       map[string]int `json:"items"`
	TotalCount  int            `json:"total_count"`
}

type Pickup struct {
	Hostel string `json:"hostel" validate:"required"`
	Floor  int    `json:"floor" validate:"required,gt=0"`
}

type Slot struct {
	Label         string `json:"label"`
	TotalCapacity int    `json:"total_capacity"`
	BookedCount   int    `json:"booked_count"`
	Remaining     int    `json:"remaining"`
	Available     bool   `json:"available"`
}

type Hostel struct {
	Name   string `json:"name"`
	Floors []int  `json:"floors"`
}

// Catalog lists what can be ordered and where it can be picked up
type Catalog struct {
	ServiceTypes []string `json:"service_types"`
	Items        []string `json:"items"`
	Hostels      []Hostel `json:"hostels"`
}

// Cart is the caller's working selection and committed lines
type Cart struct {
	ActiveService  string         `json:"active_service,omitempty"`
	Selection      map[string]int `json:"selection"`
	SelectionTotal int            `json:"selection_total"`
	Lines          []LineItem     `json:"lines"`
	LineTotal      int            `json:"line_total"`
}

type Profile struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	RegNumber string    `json:"reg_number,omitempty"`
	Mobile    string    `json:"mobile,omitempty"`
	Role      string    `json:"role"`
	Hostel    string    `json:"hostel,omitempty"`
	Room      string    `json:"room,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthResponse is returned on sign up and sign in
type AuthResponse struct {
	Token   string  `json:"token"`
	Session Session `json:"session"`
	Profile Profile `json:"profile"`
}

type SessionResponse struct {
	Session Session `json:"session"`
	Profile Profile `json:"profile"`
}

type SignUpRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FullName  string `json:"full_name" validate:"required"`
	RegNumber string `json:"reg_number" validate:"required"`
	Mobile    string `json:"mobile" validate:"required"`
	Hostel    string `json:"hostel,omitempty"`
	Room      string `json:"room,omitempty"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CartItemRequest struct {
	ServiceType string `json:"service_type" validate:"required,oneof=washing iron+washing"`
	Item        string `json:"item" validate:"required"`
}

type PlaceOrderRequest struct {
	Pickup Pickup `json:"pickup" validate:"required"`
	Slot   string `json:"slot" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending picked-up in-process washing-complete delivered"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.LineItems))
	for _, l := range o.LineItems {
		items = append(items, LineItem{
			ServiceType: string(l.ServiceType),
			Items:       maps.Clone(l.Counts),
			TotalCount:  l.TotalCount(),
		})
	}

	res := Order{
		OrderID:    o.ID,
		OwnerID:    o.OwnerID.String(),
		LineItems:  items,
		Pickup:     Pickup{Hostel: o.Pickup.Hostel, Floor: o.Pickup.Floor},
		Slot:       o.SlotLabel,
		Status:     o.Status.String(),
		TotalItems: o.TotalItems(),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	if o.Owner != nil {
		res.Owner = &Owner{FullName: o.Owner.FullName, RegNumber: o.Owner.RegNumber}
	}
	return res
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	return out
}

func SlotEntityToJSON(s entities.Slot) Slot {
	return Slot{
		Label:         s.Label,
		TotalCapacity: s.TotalCapacity,
		BookedCount:   s.BookedCount,
		Remaining:     s.Remaining(),
		Available:     s.IsAvailable(),
	}
}

func CatalogEntityToJSON(c entities.Catalog) Catalog {
	services := make([]string, 0, len(c.ServiceTypes))
	for _, s := range c.ServiceTypes {
		services = append(services, string(s))
	}

	hostels := make([]Hostel, 0, len(c.Hostels))
	for _, name := range slices.Sorted(maps.Keys(c.Hostels)) {
		hostels = append(hostels, Hostel{Name: name, Floors: slices.Clone(c.Hostels[name])})
	}

	return Catalog{
		ServiceTypes: services,
		Items:        slices.Clone(c.Items),
		Hostels:      hostels,
	}
}

func CartLineEntityToJSON(l entities.CartLineItem) LineItem {
	return LineItem{
		ID:          l.ID,
		ServiceType: string(l.ServiceType),
		Items:       maps.Clone(l.Counts),
		TotalCount:  l.TotalCount(),
	}
}

func CartSnapshotToJSON(c service.CartSnapshot) Cart {
	lines := make([]LineItem, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, CartLineEntityToJSON(l))
	}

	selection := c.Selection
	if selection == nil {
		selection = map[string]int{}
	}

	return Cart{
		ActiveService:  string(c.ActiveService),
		Selection:      selection,
		SelectionTotal: c.SelectionTotal,
		Lines:          lines,
		LineTotal:      c.LineTotal,
	}
}

func ProfileEntityToJSON(p entities.Profile) Profile {
	return Profile{
		UserID:    p.UserID.String(),
		Email:     p.Email,
		FullName:  p.FullName,
		RegNumber: p.RegNumber,
		Mobile:    p.Mobile,
		Role:      p.Role.String(),
		Hostel:    p.Hostel,
		Room:      p.Room,
		CreatedAt: p.CreatedAt,
	}
}

func SessionEntityToJSON(s entities.Session) Session {
	return Session{
		UserID:    s.UserID.String(),
		Role:      s.Role.String(),
		ExpiresAt: s.ExpiresAt,
	}
}

func AuthResultToJSON(r service.AuthResult) AuthResponse {
	return AuthResponse{
		Token:   r.Token,
		Session: SessionEntityToJSON(r.Session),
		Profile: ProfileEntityToJSON(r.Profile),
	}
}

func SignUpRequestToInput(r SignUpRequest) service.SignUpInput {
	return service.SignUpInput{
		Email:     r.Email,
		Password:  r.Password,
		FullName:  r.FullName,
		RegNumber: r.RegNumber,
		Mobile:    r.Mobile,
		Hostel:    r.Hostel,
		Room:      r.Room,
	}
}
