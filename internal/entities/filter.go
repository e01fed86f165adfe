package entities

import "strings"

// StatusAll disables status filtering.
const StatusAll = "all"

// StatusFilter is either StatusAll or the name of a single status.
type StatusFilter string

func ParseStatusFilter(s string) (StatusFilter, error) {
	if s == "" || s == StatusAll {
		return StatusAll, nil
	}
	if _, err := ParseStatus(s); err != nil {
		return "", err
	}
	return StatusFilter(s), nil
}

func FilterByStatus(orders []Order, filter StatusFilter) []Order {
	if filter == "" || filter == StatusAll {
		return orders
	}
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.Status.String() == string(filter) {
			out = append(out, o)
		}
	}
	return out
}

// FilterBySearch keeps orders whose id, hostel or owner fields contain query,
// ignoring case. A blank query keeps everything.
func FilterBySearch(orders []Order, query string) []Order {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return orders
	}
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if matches(o, q) {
			out = append(out, o)
		}
	}
	return out
}

func FilterOrders(orders []Order, filter StatusFilter, query string) []Order {
	return FilterBySearch(FilterByStatus(orders, filter), query)
}

func matches(o Order, q string) bool {
	fields := []string{o.ID, o.Pickup.Hostel}
	if o.Owner != nil {
		fields = append(fields, o.Owner.FullName, o.Owner.RegNumber)
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
