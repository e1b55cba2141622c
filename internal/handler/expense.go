package handler

import (
	"context"

	"github.com/pkordes/tripwise/backend/internal/calculator"
	"github.com/pkordes/tripwise/backend/internal/domain"
)

type expenseRequest struct {
	Category    string  `json:"category,omitempty" enum:"accommodation,food,transportation,activities,shopping,other" doc:"Defaults to accommodation"`
	Description string  `json:"description" minLength:"1" example:"Hotel Artemide"`
	Amount      float64 `json:"amount" exclusiveMinimum:"0" example:"320.50"`
}

type expensesOutput struct {
	Body struct {
		Data []domain.Expense `json:"data"`
	}
}

type addExpenseInput struct {
	TripPath
	Body expenseRequest
}

type expenseOutput struct {
	Body domain.Expense
}

type deleteExpenseInput struct {
	TripPath
	ExpenseID string `path:"expenseId"`
}

type budgetInput struct {
	TripPath
	View     string `query:"view" enum:"breakdown,distribution" doc:"Defaults to breakdown"`
	Category string `query:"category" enum:"accommodation,food,transportation,activities,shopping,other" doc:"Selected category for the drill-down"`
}

type budgetOutput struct {
	Body struct {
		View             calculator.ViewMode        `json:"view"`
		Toggle           calculator.ViewMode        `json:"toggle" doc:"The other view mode"`
		Categories       []calculator.CategoryTotal `json:"categories"`
		PricedActivities []domain.Activity          `json:"pricedActivities"`
		ActivitiesTotal  float64                    `json:"activitiesTotal"`
		Total            float64                    `json:"total"`
		Distribution     *[]calculator.Slice        `json:"distribution,omitempty" doc:"Present in distribution view only; empty when the total is 0"`
		Selected         *calculator.CategoryDetail `json:"selected,omitempty"`
	}
}

// listExpenses handles GET {scope}/trips/{id}/expenses.
func (s *Server) listExpenses(ctx context.Context, p Planner, in *TripPath) (*expensesOutput, error) {
	expenses, err := p.Expenses.List(ctx, in.ID)
	if err != nil {
		return nil, s.apiError(ctx, err, "trip not found")
	}
	out := &expensesOutput{}
	out.Body.Data = expenses
	return out, nil
}

// addExpense handles POST {scope}/trips/{id}/expenses.
func (s *Server) addExpense(ctx context.Context, p Planner, in *addExpenseInput) (*expenseOutput, error) {
	created, err := p.Expenses.Add(ctx, in.ID, domain.Expense{
		Category:    domain.Category(in.Body.Category),
		Description: in.Body.Description,
		Amount:      in.Body.Amount,
	})
	if err != nil {
		return nil, s.apiError(ctx, err, "trip not found")
	}
	return &expenseOutput{Body: created}, nil
}

// deleteExpense handles DELETE {scope}/trips/{id}/expenses/{expenseId}.
func (s *Server) deleteExpense(ctx context.Context, p Planner, in *deleteExpenseInput) (*struct{}, error) {
	if err := p.Expenses.Delete(ctx, in.ID, in.ExpenseID); err != nil {
		return nil, s.apiError(ctx, err, "trip not found")
	}
	return nil, nil
}

// getBudget handles GET {scope}/trips/{id}/budget.
// The view and the selected category are presentation state only; they never
// change stored data.
func (s *Server) getBudget(ctx context.Context, p Planner, in *budgetInput) (*budgetOutput, error) {
	view, err := calculator.ParseViewMode(in.View)
	if err != nil {
		return nil, s.apiError(ctx, err, "")
	}
	b, err := p.Expenses.Budget(ctx, in.ID)
	if err != nil {
		return nil, s.apiError(ctx, err, "trip not found")
	}

	out := &budgetOutput{}
	out.Body.View = view
	out.Body.Toggle = view.Toggle()
	out.Body.Categories = b.Categories
	out.Body.PricedActivities = b.PricedActivities
	out.Body.ActivitiesTotal = b.ActivitiesTotal
	out.Body.Total = b.Total
	if view == calculator.ViewDistribution {
		d := b.Distribution()
		out.Body.Distribution = &d
	}
	if in.Category != "" {
		detail, err := b.Detail(domain.Category(in.Category))
		if err != nil {
			return nil, s.apiError(ctx, err, "")
		}
		out.Body.Selected = &detail
	}
	return out, nil
}
