package repo

import (
	"context"
	"fmt"

	"github.com/pkordes/tripwise/backend/internal/domain"
	"github.com/pkordes/tripwise/backend/internal/recordstore"
)

// ActivityRepo defines the persistence operations for a trip's activities.
// Activities are stored as one ordered list per trip.
type ActivityRepo interface {
	// Create appends a to the activity list of a.TripID.
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)

	// ListByTripID returns the trip's activities in insertion order.
	// A trip without activities yields an empty slice.
	ListByTripID(ctx context.Context, tripID string) ([]domain.Activity, error)

	// Delete removes one activity. A missing ID is a no-op.
	Delete(ctx context.Context, tripID, activityID string) error

	// DeleteByTripID removes the whole activity list of a trip.
	DeleteByTripID(ctx context.Context, tripID string) error
}

type activityRecord struct {
	ID          string   `json:"id"`
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Time        string   `json:"time,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

type storeActivityRepo struct {
	ledger ledger[activityRecord]
}

// NewActivityRepo constructs an ActivityRepo over the activities_<tripId>
// records of store.
func NewActivityRepo(store *recordstore.Store) ActivityRepo {
	return &storeActivityRepo{ledger: ledger[activityRecord]{
		store: store,
		key:   recordstore.ActivitiesKey,
		id:    func(r activityRecord) string { return r.ID },
	}}
}

func (r *storeActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	rec := activityRecord{
		ID:          a.ID,
		Day:         a.Day,
		Title:       a.Title,
		Description: a.Description,
		Time:        a.Time,
		Price:       a.Price,
	}
	if err := r.ledger.append(ctx, a.TripID, rec); err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return a, nil
}

func (r *storeActivityRepo) ListByTripID(ctx context.Context, tripID string) ([]domain.Activity, error) {
	records, err := r.ledger.load(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: %w", err)
	}
	out := make([]domain.Activity, len(records))
	for i, rec := range records {
		out[i] = domain.Activity{
			ID:          rec.ID,
			TripID:      tripID,
			Day:         rec.Day,
			Title:       rec.Title,
			Description: rec.Description,
			Time:        rec.Time,
			Price:       rec.Price,
		}
	}
	return out, nil
}

func (r *storeActivityRepo) Delete(ctx context.Context, tripID, activityID string) error {
	if err := r.ledger.remove(ctx, tripID, activityID); err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	return nil
}

func (r *storeActivityRepo) DeleteByTripID(ctx context.Context, tripID string) error {
	if err := r.ledger.drop(ctx, tripID); err != nil {
		return fmt.Errorf("repo.ActivityRepo.DeleteByTripID: %w", err)
	}
	return nil
}
