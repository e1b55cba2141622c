// Package service contains the business logic of the TripWise planner.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No storage details live here: services depend on repo interfaces only.
package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/tripwise/backend/internal/domain"
	"github.com/pkordes/tripwise/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
	expenses   repo.ExpenseRepo
}

// NewTripService constructs a TripService. The activity and expense repos are
// needed to cascade trip deletion.
func NewTripService(trips repo.TripRepo, activities repo.ActivityRepo, expenses repo.ExpenseRepo) *TripService {
	return &TripService{trips: trips, activities: activities, expenses: expenses}
}

// Create validates trip, assigns it a new ID and stores it ahead of every
// existing trip.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip = normalizeTrip(trip)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	trip.ID = uuid.NewString()

	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	recordsCreated.WithLabelValues("trip").Inc()
	return created, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns all trips, newest first.
// It always returns a non-nil slice.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

// ListPage returns one page of trips and the total number of trips.
func (s *TripService) ListPage(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int, error) {
	trips, err := s.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	return domain.Paginate(trips, p), len(trips), nil
}

// Update replaces the editable fields of an existing trip. The ID is kept.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip = normalizeTrip(trip)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip together with its activities and expenses.
// Deleting an unknown ID is a no-op.
func (s *TripService) Delete(ctx context.Context, id string) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if err := s.activities.DeleteByTripID(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if err := s.expenses.DeleteByTripID(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Clear deletes every trip, cascading like Delete. It ends a session scope.
func (s *TripService) Clear(ctx context.Context) (int, error) {
	trips, err := s.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.TripService.Clear: %w", err)
	}
	for _, t := range trips {
		if err := s.Delete(ctx, t.ID); err != nil {
			return 0, fmt.Errorf("service.TripService.Clear: %w", err)
		}
	}
	return len(trips), nil
}

// Destinations returns the distinct destinations of all trips, sorted.
func (s *TripService) Destinations(ctx context.Context) ([]string, error) {
	trips, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Destinations: %w", err)
	}
	out := make([]string, 0, len(trips))
	for _, t := range trips {
		if t.Destination != "" {
			out = append(out, t.Destination)
		}
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

func normalizeTrip(t domain.Trip) domain.Trip {
	t.Title = strings.TrimSpace(t.Title)
	t.Destination = strings.TrimSpace(t.Destination)
	return t
}

// validateTrip checks presence and caps the length at MaxTripDays. An end
// date before the start date is accepted; such a trip simply has no days.
func validateTrip(t domain.Trip) error {
	if t.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if t.Destination == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if t.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", domain.ErrValidation)
	}
	if t.EndDate.IsZero() {
		return fmt.Errorf("%w: end date is required", domain.ErrValidation)
	}
	if t.DurationDays() > domain.MaxTripDays {
		return fmt.Errorf("%w: trip may span at most %d days", domain.ErrValidation, domain.MaxTripDays)
	}
	return nil
}
