// Package calculator holds the pure derived views of a trip: the per-day
// itinerary and the budget summary. Nothing here touches storage; callers load
// the trip, its activities and its expenses and pass them in.
package calculator

import (
	"slices"
	"time"

	"github.com/pkordes/tripwise/backend/internal/domain"
)

// Day is one bucket of the itinerary.
type Day struct {
	Day        int               `json:"day"`
	Date       time.Time         `json:"date"`
	Activities []domain.Activity `json:"activities"`
}

// Itinerary buckets activities by trip day, 1..trip.DurationDays().
// Within a day, activities are ordered by time ascending. Untimed activities
// rank after timed ones and keep their insertion order, as do activities
// sharing the same time. Activities whose day is outside the trip are
// dropped from the view but not from storage.
func Itinerary(trip domain.Trip, activities []domain.Activity) []Day {
	n := trip.DurationDays()
	days := make([]Day, n)
	for i := range days {
		days[i] = Day{Day: i + 1, Date: trip.DateOf(i + 1), Activities: []domain.Activity{}}
	}
	for _, a := range activities {
		if a.Day < 1 || a.Day > n {
			continue
		}
		days[a.Day-1].Activities = append(days[a.Day-1].Activities, a)
	}
	for i := range days {
		SortByTime(days[i].Activities)
	}
	return days
}

// SortByTime orders activities by their "HH:MM" time, in place and stably.
// Zero-padded times compare correctly as strings.
func SortByTime(activities []domain.Activity) {
	slices.SortStableFunc(activities, func(a, b domain.Activity) int {
		switch {
		case a.Time == "" && b.Time == "":
			return 0
		case a.Time == "":
			return 1
		case b.Time == "":
			return -1
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})
}
