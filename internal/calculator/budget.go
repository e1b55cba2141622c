package calculator

import (
	"fmt"

	"github.com/pkordes/tripwise/backend/internal/domain"
)

// ActivitiesLabel names the merged activities slice of the distribution.
const ActivitiesLabel = "Activities"

// CategoryTotal is the subtotal of one expense category.
type CategoryTotal struct {
	Category domain.Category `json:"category"`
	Label    string          `json:"label"`
	Amount   float64         `json:"amount"`
}

// Budget is the summary of a trip's spending.
//
// Categories holds every expense category in fixed order, zero subtotals
// included. PricedActivities and ActivitiesTotal describe the activity
// prices counted on top of the expenses. The sum of every category amount
// plus ActivitiesTotal equals Total.
type Budget struct {
	Categories       []CategoryTotal   `json:"categories"`
	PricedActivities []domain.Activity `json:"pricedActivities"`
	ActivitiesTotal  float64           `json:"activitiesTotal"`
	Total            float64           `json:"total"`

	expenses []domain.Expense
}

// Summarize computes the budget of a trip from its expenses and activities.
// Only activities with a positive price are counted.
func Summarize(expenses []domain.Expense, activities []domain.Activity) Budget {
	b := Budget{
		Categories:       make([]CategoryTotal, len(domain.Categories)),
		PricedActivities: []domain.Activity{},
		expenses:         expenses,
	}
	index := make(map[domain.Category]int, len(domain.Categories))
	for i, c := range domain.Categories {
		b.Categories[i] = CategoryTotal{Category: c, Label: c.Label()}
		index[c] = i
	}

	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			// Unknown categories can only come from hand-edited records.
			i = index[domain.CategoryOther]
		}
		b.Categories[i].Amount += e.Amount
		b.Total += e.Amount
	}
	for _, a := range activities {
		if !a.Priced() {
			continue
		}
		b.PricedActivities = append(b.PricedActivities, a)
		b.ActivitiesTotal += *a.Price
		b.Total += *a.Price
	}
	return b
}

// Subtotal returns the subtotal of category c.
func (b Budget) Subtotal(c domain.Category) float64 {
	for _, ct := range b.Categories {
		if ct.Category == c {
			return ct.Amount
		}
	}
	return 0
}

// CategoryDetail is the drill-down view of one category.
type CategoryDetail struct {
	Category domain.Category  `json:"category"`
	Label    string           `json:"label"`
	Amount   float64          `json:"amount"`
	Expenses []domain.Expense `json:"expenses"`
	// Activities is only filled for the activities category, which also
	// counts priced activities.
	Activities []domain.Activity `json:"activities,omitempty"`
}

// Detail returns the drill-down view of category c.
// It returns domain.ErrValidation for an unknown category.
func (b Budget) Detail(c domain.Category) (CategoryDetail, error) {
	if !c.Valid() {
		return CategoryDetail{}, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, c)
	}
	d := CategoryDetail{
		Category: c,
		Label:    c.Label(),
		Amount:   b.Subtotal(c),
		Expenses: []domain.Expense{},
	}
	for _, e := range b.expenses {
		if e.Category == c {
			d.Expenses = append(d.Expenses, e)
		}
	}
	if c == domain.CategoryActivities {
		d.Activities = b.PricedActivities
		d.Amount += b.ActivitiesTotal
	}
	return d, nil
}

// Slice is one share of the distribution view.
type Slice struct {
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// Distribution returns each spending slice as a share of Total.
// The activities category and the priced activities form one slice, zero
// slices are left out, and an empty budget yields no slices at all.
func (b Budget) Distribution() []Slice {
	out := []Slice{}
	if b.Total <= 0 {
		return out
	}
	for _, ct := range b.Categories {
		amount := ct.Amount
		label := ct.Label
		if ct.Category == domain.CategoryActivities {
			amount += b.ActivitiesTotal
			label = ActivitiesLabel
		}
		if amount == 0 {
			continue
		}
		out = append(out, Slice{Label: label, Amount: amount, Percent: amount / b.Total * 100})
	}
	return out
}
