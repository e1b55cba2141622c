package repo

import (
	"context"
	"fmt"

	"github.com/pkordes/tripwise/backend/internal/domain"
	"github.com/pkordes/tripwise/backend/internal/recordstore"
)

// ExpenseRepo defines the persistence operations for a trip's expenses.
type ExpenseRepo interface {
	// Create appends e to the expense list of e.TripID.
	Create(ctx context.Context, e domain.Expense) (domain.Expense, error)

	// ListByTripID returns the trip's expenses in insertion order.
	ListByTripID(ctx context.Context, tripID string) ([]domain.Expense, error)

	// Delete removes one expense. A missing ID is a no-op.
	Delete(ctx context.Context, tripID, expenseID string) error

	// DeleteByTripID removes the whole expense list of a trip.
	DeleteByTripID(ctx context.Context, tripID string) error
}

type expenseRecord struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type storeExpenseRepo struct {
	ledger ledger[expenseRecord]
}

// NewExpenseRepo constructs an ExpenseRepo over the expenses_<tripId>
// records of store.
func NewExpenseRepo(store *recordstore.Store) ExpenseRepo {
	return &storeExpenseRepo{ledger: ledger[expenseRecord]{
		store: store,
		key:   recordstore.ExpensesKey,
		id:    func(r expenseRecord) string { return r.ID },
	}}
}

func (r *storeExpenseRepo) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	rec := expenseRecord{
		ID:          e.ID,
		Category:    string(e.Category),
		Description: e.Description,
		Amount:      e.Amount,
	}
	if err := r.ledger.append(ctx, e.TripID, rec); err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Create: %w", err)
	}
	return e, nil
}

func (r *storeExpenseRepo) ListByTripID(ctx context.Context, tripID string) ([]domain.Expense, error) {
	records, err := r.ledger.load(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.ListByTripID: %w", err)
	}
	out := make([]domain.Expense, len(records))
	for i, rec := range records {
		out[i] = domain.Expense{
			ID:          rec.ID,
			TripID:      tripID,
			Category:    domain.Category(rec.Category),
			Description: rec.Description,
			Amount:      rec.Amount,
		}
	}
	return out, nil
}

func (r *storeExpenseRepo) Delete(ctx context.Context, tripID, expenseID string) error {
	if err := r.ledger.remove(ctx, tripID, expenseID); err != nil {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", err)
	}
	return nil
}

func (r *storeExpenseRepo) DeleteByTripID(ctx context.Context, tripID string) error {
	if err := r.ledger.drop(ctx, tripID); err != nil {
		return fmt.Errorf("repo.ExpenseRepo.DeleteByTripID: %w", err)
	}
	return nil
}
