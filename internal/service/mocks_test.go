package service_test

import (
	"context"
	"time"

	"github.com/pkordes/tripwise/backend/internal/domain"
	"github.com/pkordes/tripwise/backend/internal/repo"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field; set only the ones your test needs.
type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id string) (domain.Trip, error)
	list    func(ctx context.Context) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id string) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

type mockActivityRepo struct {
	create         func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	listByTripID   func(ctx context.Context, tripID string) ([]domain.Activity, error)
	delete         func(ctx context.Context, tripID, activityID string) error
	deleteByTripID func(ctx context.Context, tripID string) error
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) ListByTripID(ctx context.Context, tripID string) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockActivityRepo) Delete(ctx context.Context, tripID, activityID string) error {
	return m.delete(ctx, tripID, activityID)
}
func (m *mockActivityRepo) DeleteByTripID(ctx context.Context, tripID string) error {
	return m.deleteByTripID(ctx, tripID)
}

type mockExpenseRepo struct {
	create         func(ctx context.Context, e domain.Expense) (domain.Expense, error)
	listByTripID   func(ctx context.Context, tripID string) ([]domain.Expense, error)
	delete         func(ctx context.Context, tripID, expenseID string) error
	deleteByTripID func(ctx context.Context, tripID string) error
}

func (m *mockExpenseRepo) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.create(ctx, e)
}
func (m *mockExpenseRepo) ListByTripID(ctx context.Context, tripID string) ([]domain.Expense, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockExpenseRepo) Delete(ctx context.Context, tripID, expenseID string) error {
	return m.delete(ctx, tripID, expenseID)
}
func (m *mockExpenseRepo) DeleteByTripID(ctx context.Context, tripID string) error {
	return m.deleteByTripID(ctx, tripID)
}

type mockUserRepo struct {
	get    func(ctx context.Context) (domain.User, error)
	save   func(ctx context.Context, u domain.User) error
	delete func(ctx context.Context) error
}

func (m *mockUserRepo) Get(ctx context.Context) (domain.User, error)  { return m.get(ctx) }
func (m *mockUserRepo) Save(ctx context.Context, u domain.User) error { return m.save(ctx, u) }
func (m *mockUserRepo) Delete(ctx context.Context) error              { return m.delete(ctx) }

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.TripRepo     = (*mockTripRepo)(nil)
	_ repo.ActivityRepo = (*mockActivityRepo)(nil)
	_ repo.ExpenseRepo  = (*mockExpenseRepo)(nil)
	_ repo.UserRepo     = (*mockUserRepo)(nil)
)

// ---- helpers ---------------------------------------------------------------

func validTrip() domain.Trip {
	return domain.Trip{
		Title:       "Rome",
		Destination: "Rome, Italy",
		StartDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
	}
}

// tripRepoWith returns a repo that knows exactly one trip.
func tripRepoWith(trip domain.Trip) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id string) (domain.Trip, error) {
			if id != trip.ID {
				return domain.Trip{}, domain.ErrNotFound
			}
			return trip, nil
		},
	}
}

func price(v float64) *float64 { return &v }
