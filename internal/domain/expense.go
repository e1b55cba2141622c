package domain

import "strings"

// Category is the fixed set of expense categories.
type Category string

const (
	CategoryAccommodation  Category = "accommodation"
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryActivities     Category = "activities"
	CategoryShopping       Category = "shopping"
	CategoryOther          Category = "other"
)

// Categories lists every expense category in display order.
var Categories = []Category{
	CategoryAccommodation,
	CategoryFood,
	CategoryTransportation,
	CategoryActivities,
	CategoryShopping,
	CategoryOther,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the display label, e.g. "food" → "Food".
func (c Category) Label() string {
	if c == "" {
		return ""
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Expense is a categorized amount spent on a trip.
type Expense struct {
	ID          string   `json:"id"`
	TripID      string   `json:"tripId"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
}
