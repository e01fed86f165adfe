package entities

import (
	"maps"
	"slices"
)

type ServiceType string

const (
	ServiceWashing        ServiceType = "washing"
	ServiceIronAndWashing ServiceType = "iron+washing"
)

func (s ServiceType) IsValid() bool {
	return s == ServiceWashing || s == ServiceIronAndWashing
}

// ClothingItems is the fixed set of items a student can hand in.
var ClothingItems = []string{
	"shirts", "trousers", "tshirts", "shorts",
	"kurtis", "sarees", "tops", "jeans",
	"bedsheets",
}

// HostelFloors maps each hostel to the floors that have a pickup point.
var HostelFloors = map[string][]int{
	"VEDAVATI": {6, 12},
	"GANGA":    {6, 12, 21},
}

type Catalog struct {
	ServiceTypes []ServiceType
	Items        []string
	Hostels      map[string][]int
}

func DefaultCatalog() Catalog {
	return Catalog{
		ServiceTypes: []ServiceType{ServiceWashing, ServiceIronAndWashing},
		Items:        slices.Clone(ClothingItems),
		Hostels:      cloneFloors(HostelFloors),
	}
}

func cloneFloors(m map[string][]int) map[string][]int {
	out := maps.Clone(m)
	for hostel, floors := range out {
		out[hostel] = slices.Clone(floors)
	}
	return out
}

func IsClothingItem(name string) bool {
	return slices.Contains(ClothingItems, name)
}

type PickupLocation struct {
	Hostel string
	Floor  int
}

func (p PickupLocation) Validate() error {
	floors, ok := HostelFloors[p.Hostel]
	if !ok || !slices.Contains(floors, p.Floor) {
		return ErrInvalidPickup
	}
	return nil
}
