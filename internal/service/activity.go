package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/tripwise/backend/internal/calculator"
	"github.com/pkordes/tripwise/backend/internal/domain"
	"github.com/pkordes/tripwise/backend/internal/repo"
)

// ActivityService implements the activity ledger of a trip.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// DayView is a single day of a trip's itinerary with links to its neighbours.
// Prev and Next are nil at the ends of the trip.
type DayView struct {
	calculator.Day
	Days int  `json:"days"`
	Prev *int `json:"prev,omitempty"`
	Next *int `json:"next,omitempty"`
}

// Add validates a and appends it to the activities of tripID.
func (s *ActivityService) Add(ctx context.Context, tripID string, a domain.Activity) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Add: %w", err)
	}
	a.Title = strings.TrimSpace(a.Title)
	a.Time = strings.TrimSpace(a.Time)
	if err := validateActivity(a, trip.DurationDays()); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Add: %w", err)
	}
	a.ID = uuid.NewString()
	a.TripID = trip.ID

	created, err := s.activities.Create(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Add: %w", err)
	}
	recordsCreated.WithLabelValues("activity").Inc()
	return created, nil
}

// Delete removes one activity of tripID. An unknown activity ID is a no-op.
func (s *ActivityService) Delete(ctx context.Context, tripID, activityID string) error {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	if err := s.activities.Delete(ctx, tripID, activityID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

// List returns the activities of tripID in insertion order.
func (s *ActivityService) List(ctx context.Context, tripID string) ([]domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.List: %w", err)
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.List: %w", err)
	}
	return activities, nil
}

// Itinerary returns every day of tripID with its activities sorted by time.
func (s *ActivityService) Itinerary(ctx context.Context, tripID string) ([]calculator.Day, error) {
	trip, activities, err := s.load(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Itinerary: %w", err)
	}
	return calculator.Itinerary(trip, activities), nil
}

// Day returns one day of the itinerary. Days outside the trip are not found.
func (s *ActivityService) Day(ctx context.Context, tripID string, day int) (DayView, error) {
	trip, activities, err := s.load(ctx, tripID)
	if err != nil {
		return DayView{}, fmt.Errorf("service.ActivityService.Day: %w", err)
	}
	cursor := calculator.NewDayCursor(trip.DurationDays())
	if !cursor.Select(day) {
		return DayView{}, fmt.Errorf("service.ActivityService.Day: day %d: %w", day, domain.ErrNotFound)
	}

	view := DayView{
		Day:  calculator.Itinerary(trip, activities)[cursor.Day()-1],
		Days: cursor.Days(),
	}
	if cursor.HasPrev() {
		prev := cursor.Day() - 1
		view.Prev = &prev
	}
	if cursor.HasNext() {
		next := cursor.Day() + 1
		view.Next = &next
	}
	return view, nil
}

func (s *ActivityService) load(ctx context.Context, tripID string) (domain.Trip, []domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, nil, err
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, nil, err
	}
	return trip, activities, nil
}

// validateActivity checks the fields of a against a trip lasting days days.
func validateActivity(a domain.Activity, days int) error {
	if a.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if a.Day < 1 || a.Day > days {
		return fmt.Errorf("%w: day must be between 1 and %d", domain.ErrValidation, days)
	}
	if a.Time != "" {
		if _, err := time.Parse("15:04", a.Time); err != nil || len(a.Time) != 5 {
			return fmt.Errorf("%w: time must be HH:MM", domain.ErrValidation)
		}
	}
	if a.Price != nil && *a.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	return nil
}
