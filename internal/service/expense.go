package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/tripwise/backend/internal/calculator"
	"github.com/pkordes/tripwise/backend/internal/domain"
	"github.com/pkordes/tripwise/backend/internal/repo"
)

// ExpenseService implements the expense ledger and budget of a trip.
type ExpenseService struct {
	trips      repo.TripRepo
	expenses   repo.ExpenseRepo
	activities repo.ActivityRepo
}

// NewExpenseService constructs an ExpenseService. Activities are read for
// their prices, which count towards the budget.
func NewExpenseService(trips repo.TripRepo, expenses repo.ExpenseRepo, activities repo.ActivityRepo) *ExpenseService {
	return &ExpenseService{trips: trips, expenses: expenses, activities: activities}
}

// Add validates e and appends it to the expenses of tripID.
// An empty category defaults to accommodation.
func (s *ExpenseService) Add(ctx context.Context, tripID string, e domain.Expense) (domain.Expense, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Add: %w", err)
	}
	e.Description = strings.TrimSpace(e.Description)
	if e.Category == "" {
		e.Category = domain.CategoryAccommodation
	}
	if err := validateExpense(e); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Add: %w", err)
	}
	e.ID = uuid.NewString()
	e.TripID = tripID

	created, err := s.expenses.Create(ctx, e)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Add: %w", err)
	}
	recordsCreated.WithLabelValues("expense").Inc()
	return created, nil
}

// Delete removes one expense of tripID. An unknown expense ID is a no-op.
func (s *ExpenseService) Delete(ctx context.Context, tripID, expenseID string) error {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return fmt.Errorf("service.ExpenseService.Delete: %w", err)
	}
	if err := s.expenses.Delete(ctx, tripID, expenseID); err != nil {
		return fmt.Errorf("service.ExpenseService.Delete: %w", err)
	}
	return nil
}

// List returns the expenses of tripID in insertion order.
func (s *ExpenseService) List(ctx context.Context, tripID string) ([]domain.Expense, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ExpenseService.List: %w", err)
	}
	expenses, err := s.expenses.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.List: %w", err)
	}
	return expenses, nil
}

// Budget summarizes the spending of tripID.
func (s *ExpenseService) Budget(ctx context.Context, tripID string) (calculator.Budget, error) {
	expenses, err := s.List(ctx, tripID)
	if err != nil {
		return calculator.Budget{}, fmt.Errorf("service.ExpenseService.Budget: %w", err)
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return calculator.Budget{}, fmt.Errorf("service.ExpenseService.Budget: %w", err)
	}
	return calculator.Summarize(expenses, activities), nil
}

func validateExpense(e domain.Expense) error {
	if !e.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, e.Category)
	}
	if e.Description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if e.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrValidation)
	}
	return nil
}
