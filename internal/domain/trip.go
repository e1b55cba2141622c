// Package domain contains the core data types for the TripWise planner.
// This package has zero internal dependencies and is imported by every other
// internal package (recordstore, repo, calculator, service, handler).
package domain

import (
	"time"
)

// DateLayout is the calendar-date format used for trip dates on the wire and
// in stored records.
const DateLayout = "2006-01-02"

// Trip is the top-level aggregate; activities and expenses belong to a trip.
// StartDate and EndDate are calendar dates at midnight UTC.
// EndDate is expected to be on or after StartDate, but this is not enforced.
type Trip struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Notes       string    `json:"notes"`
}

// MaxTripDays bounds how long a trip may be.
const MaxTripDays = 366

// DurationDays returns the inclusive number of calendar days the trip spans.
// Inverted ranges never produce a negative count; they yield zero.
func (t Trip) DurationDays() int {
	days := civilDay(t.EndDate) - civilDay(t.StartDate) + 1
	if days < 0 {
		return 0
	}
	return int(days)
}

// civilDay numbers t's calendar date as days since 1970-01-01. Unix seconds
// cover every representable year, unlike time.Duration.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// DateOf returns the calendar date of the given 1-based trip day.
func (t Trip) DateOf(day int) time.Time {
	return t.StartDate.AddDate(0, 0, day-1)
}
