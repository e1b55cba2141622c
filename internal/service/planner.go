package service

import "github.com/pkordes/tripwise/backend/internal/repo"

// Planner groups the services of one record-store scope. The durable planner
// and every session planner are built the same way; only the repos differ.
type Planner struct {
	Trips      *TripService
	Activities *ActivityService
	Expenses   *ExpenseService
}

// NewPlanner wires a Planner over set.
func NewPlanner(set repo.Set) *Planner {
	return &Planner{
		Trips:      NewTripService(set.Trips, set.Activities, set.Expenses),
		Activities: NewActivityService(set.Trips, set.Activities),
		Expenses:   NewExpenseService(set.Trips, set.Expenses, set.Activities),
	}
}
