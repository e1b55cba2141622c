package repo

import "github.com/pkordes/tripwise/backend/internal/recordstore"

// Set bundles the planner repos that share one record-store scope.
type Set struct {
	Trips      TripRepo
	Activities ActivityRepo
	Expenses   ExpenseRepo
}

// NewSet builds every planner repo over store.
func NewSet(store *recordstore.Store) Set {
	return Set{
		Trips:      NewTripRepo(store),
		Activities: NewActivityRepo(store),
		Expenses:   NewExpenseRepo(store),
	}
}
