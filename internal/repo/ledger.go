package repo

import (
	"context"

	"github.com/pkordes/tripwise/backend/internal/recordstore"
)

// ledger is an ordered, trip-scoped list of records stored under one key per
// trip. It is shared by the activity and expense repos.
type ledger[R any] struct {
	store *recordstore.Store
	key   func(tripID string) string
	id    func(R) string
}

func (l ledger[R]) load(ctx context.Context, tripID string) ([]R, error) {
	var records []R
	if _, err := l.store.Get(ctx, l.key(tripID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (l ledger[R]) append(ctx context.Context, tripID string, rec R) error {
	defer l.store.Lock(l.key(tripID))()

	records, err := l.load(ctx, tripID)
	if err != nil {
		return err
	}
	return l.store.Set(ctx, l.key(tripID), append(records, rec))
}

// remove filters out the record with the given id. A missing id leaves the
// stored list untouched and does not write.
func (l ledger[R]) remove(ctx context.Context, tripID, id string) error {
	defer l.store.Lock(l.key(tripID))()

	records, err := l.load(ctx, tripID)
	if err != nil {
		return err
	}
	kept := make([]R, 0, len(records))
	for _, rec := range records {
		if l.id(rec) != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return l.store.Set(ctx, l.key(tripID), kept)
}

func (l ledger[R]) drop(ctx context.Context, tripID string) error {
	defer l.store.Lock(l.key(tripID))()
	return l.store.Remove(ctx, l.key(tripID))
}
