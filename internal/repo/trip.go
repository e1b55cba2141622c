// Package repo maps domain entities onto records in a recordstore.Store.
// Each entity has its own file with an interface and a record-store
// implementation. No business rules live here, only key layout and mapping.
package repo

import (
	"context"
	"fmt"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/tripwise/backend/internal/domain"
	"github.com/pkordes/tripwise/backend/internal/recordstore"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, so services can be unit-tested
// with a mock.
type TripRepo interface {
	// Create prepends trip to the trip list. The caller assigns the ID.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID returns the trip with the given ID, or domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (domain.Trip, error)

	// List returns every trip in stored order (most recently created first).
	List(ctx context.Context) ([]domain.Trip, error)

	// Update replaces the stored trip that has trip.ID.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes the trip with the given ID. A missing ID is a no-op.
	Delete(ctx context.Context, id string) error
}

// tripRecord is the stored shape of a trip. Dates are written as YYYY-MM-DD.
type tripRecord struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"startDate"`
	EndDate     openapi_types.Date `json:"endDate"`
	Notes       string             `json:"notes"`
}

type storeTripRepo struct {
	store *recordstore.Store
}

// NewTripRepo constructs a TripRepo over the plans record of store.
func NewTripRepo(store *recordstore.Store) TripRepo {
	return &storeTripRepo{store: store}
}

func (r *storeTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	defer r.store.Lock(recordstore.KeyPlans)()

	trips, err := r.load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	trips = append([]domain.Trip{trip}, trips...)
	if err := r.save(ctx, trips); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return trip, nil
}

func (r *storeTripRepo) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	trips, err := r.load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	for _, t := range trips {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
}

func (r *storeTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, nil
}

func (r *storeTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	defer r.store.Lock(recordstore.KeyPlans)()

	trips, err := r.load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	found := false
	for i := range trips {
		if trips[i].ID == trip.ID {
			trips[i] = trip
			found = true
			break
		}
	}
	if !found {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", domain.ErrNotFound)
	}
	if err := r.save(ctx, trips); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return trip, nil
}

func (r *storeTripRepo) Delete(ctx context.Context, id string) error {
	defer r.store.Lock(recordstore.KeyPlans)()

	trips, err := r.load(ctx)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	kept := trips[:0]
	for _, t := range trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(trips) {
		return nil
	}
	if err := r.save(ctx, kept); err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	return nil
}

func (r *storeTripRepo) load(ctx context.Context) ([]domain.Trip, error) {
	var records []tripRecord
	if _, err := r.store.Get(ctx, recordstore.KeyPlans, &records); err != nil {
		return nil, err
	}
	trips := make([]domain.Trip, len(records))
	for i, rec := range records {
		trips[i] = recordToTrip(rec)
	}
	return trips, nil
}

func (r *storeTripRepo) save(ctx context.Context, trips []domain.Trip) error {
	records := make([]tripRecord, len(trips))
	for i, t := range trips {
		records[i] = tripToRecord(t)
	}
	return r.store.Set(ctx, recordstore.KeyPlans, records)
}

func recordToTrip(rec tripRecord) domain.Trip {
	return domain.Trip{
		ID:          rec.ID,
		Title:       rec.Title,
		Destination: rec.Destination,
		StartDate:   rec.StartDate.Time,
		EndDate:     rec.EndDate.Time,
		Notes:       rec.Notes,
	}
}

func tripToRecord(t domain.Trip) tripRecord {
	return tripRecord{
		ID:          t.ID,
		Title:       t.Title,
		Destination: t.Destination,
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		Notes:       t.Notes,
	}
}
