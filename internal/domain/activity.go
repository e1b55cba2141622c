package domain

// Activity is a single planned item on one day of a trip.
// Day is 1-based and relative to the owning trip's start date.
// Time is "HH:MM" or empty; Price is nil for free activities.
type Activity struct {
	ID          string   `json:"id"`
	TripID      string   `json:"tripId"`
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Time        string   `json:"time,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// Priced reports whether the activity carries a positive price and therefore
// counts towards the trip budget.
func (a Activity) Priced() bool {
	return a.Price != nil && *a.Price > 0
}
