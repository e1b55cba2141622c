package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripwise/backend/internal/domain"
	"github.com/pkordes/tripwise/backend/internal/service"
)

func echoExpenseRepo(stored *[]domain.Expense) *mockExpenseRepo {
	return &mockExpenseRepo{
		create: func(_ context.Context, e domain.Expense) (domain.Expense, error) {
			*stored = append(*stored, e)
			return e, nil
		},
		listByTripID: func(_ context.Context, _ string) ([]domain.Expense, error) {
			return *stored, nil
		},
	}
}

func TestExpenseService_Add_DefaultsCategory(t *testing.T) {
	var stored []domain.Expense
	svc := service.NewExpenseService(tripRepoWith(romeWithID()), echoExpenseRepo(&stored), &mockActivityRepo{})

	got, err := svc.Add(context.Background(), "rome", domain.Expense{Description: "Hotel", Amount: 300})

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryAccommodation, got.Category)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "rome", got.TripID)
}

func TestExpenseService_Add_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Expense
	}{
		{"unknown category", domain.Expense{Category: "souvenirs", Description: "x", Amount: 1}},
		{"missing description", domain.Expense{Category: domain.CategoryFood, Amount: 1}},
		{"zero amount", domain.Expense{Category: domain.CategoryFood, Description: "x"}},
		{"negative amount", domain.Expense{Category: domain.CategoryFood, Description: "x", Amount: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stored []domain.Expense
			svc := service.NewExpenseService(tripRepoWith(romeWithID()), echoExpenseRepo(&stored), &mockActivityRepo{})

			_, err := svc.Add(context.Background(), "rome", tt.in)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, stored)
		})
	}
}

func TestExpenseService_Add_UnknownTrip(t *testing.T) {
	var stored []domain.Expense
	svc := service.NewExpenseService(tripRepoWith(romeWithID()), echoExpenseRepo(&stored), &mockActivityRepo{})

	_, err := svc.Add(context.Background(), "paris", domain.Expense{Description: "x", Amount: 1})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpenseService_Budget(t *testing.T) {
	stored := []domain.Expense{
		{Category: domain.CategoryFood, Description: "Pizza", Amount: 50},
		{Category: domain.CategoryFood, Description: "Gelato", Amount: 30},
	}
	activities := &mockActivityRepo{
		listByTripID: func(_ context.Context, _ string) ([]domain.Activity, error) {
			return []domain.Activity{{Title: "Colosseum", Price: price(20)}, {Title: "Walk"}}, nil
		},
	}
	svc := service.NewExpenseService(tripRepoWith(romeWithID()), echoExpenseRepo(&stored), activities)

	b, err := svc.Budget(context.Background(), "rome")

	require.NoError(t, err)
	assert.InDelta(t, 80, b.Subtotal(domain.CategoryFood), 1e-9)
	assert.InDelta(t, 20, b.ActivitiesTotal, 1e-9)
	assert.InDelta(t, 100, b.Total, 1e-9)
}

func TestExpenseService_Delete_UnknownIDIsNoop(t *testing.T) {
	called := false
	expenses := &mockExpenseRepo{
		delete: func(_ context.Context, _, _ string) error {
			called = true
			return nil
		},
	}
	svc := service.NewExpenseService(tripRepoWith(romeWithID()), expenses, &mockActivityRepo{})

	require.NoError(t, svc.Delete(context.Background(), "rome", "missing"))
	assert.True(t, called)
}
