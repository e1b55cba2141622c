package handler

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func healthOp() huma.Operation {
	return huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Liveness check",
		Tags:        []string{"health"},
	}
}

// ---- auth ------------------------------------------------------------------

func loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Log in",
		Description: "Mock login. Any email and non-empty password is accepted; nothing is verified.",
		Tags:        []string{"auth"},
	}
}

func signupOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-signup",
		Method:      http.MethodPost,
		Path:        "/auth/signup",
		Summary:     "Sign up",
		Tags:        []string{"auth"},
	}
}

func logoutOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-logout",
		Method:        http.MethodPost,
		Path:          "/auth/logout",
		Summary:       "Log out",
		Description:   "Removes the current user. Trips are kept.",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusNoContent,
	}
}

func meOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-me",
		Method:      http.MethodGet,
		Path:        "/auth/me",
		Summary:     "Current user and greeting",
		Tags:        []string{"auth"},
	}
}

func authEventsOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-events",
		Method:      http.MethodGet,
		Path:        "/auth/events",
		Summary:     "Stream auth changes",
		Description: "Server-sent events. The current state is sent first, then one event per login, signup or logout.",
		Tags:        []string{"auth"},
	}
}

// ---- misc ------------------------------------------------------------------

func destinationsOp() huma.Operation {
	return huma.Operation{
		OperationID: "destinations-list",
		Method:      http.MethodGet,
		Path:        "/destinations",
		Summary:     "Distinct destinations of saved trips",
		Tags:        []string{"trips"},
	}
}

func endSessionOp() huma.Operation {
	return huma.Operation{
		OperationID:   "session-end",
		Method:        http.MethodDelete,
		Path:          "/session",
		Summary:       "End a session",
		Description:   "Deletes every trip of the session together with its activities and expenses.",
		Tags:          []string{"session"},
		DefaultStatus: http.StatusNoContent,
	}
}

// ---- trips -----------------------------------------------------------------
// Paths below are relative to a scope; see scope.op.

func listTripsOp() huma.Operation {
	return huma.Operation{
		OperationID: "trips-list",
		Method:      http.MethodGet,
		Path:        "/trips",
		Summary:     "List trips, newest first",
		Tags:        []string{"trips"},
	}
}

func createTripOp() huma.Operation {
	return huma.Operation{
		OperationID:   "trips-create",
		Method:        http.MethodPost,
		Path:          "/trips",
		Summary:       "Create a trip",
		Tags:          []string{"trips"},
		DefaultStatus: http.StatusCreated,
	}
}

func getTripOp() huma.Operation {
	return huma.Operation{
		OperationID: "trips-get",
		Method:      http.MethodGet,
		Path:        "/trips/{id}",
		Summary:     "Get a trip",
		Tags:        []string{"trips"},
	}
}

func updateTripOp() huma.Operation {
	return huma.Operation{
		OperationID: "trips-update",
		Method:      http.MethodPut,
		Path:        "/trips/{id}",
		Summary:     "Update a trip",
		Tags:        []string{"trips"},
	}
}

func deleteTripOp() huma.Operation {
	return huma.Operation{
		OperationID:   "trips-delete",
		Method:        http.MethodDelete,
		Path:          "/trips/{id}",
		Summary:       "Delete a trip with its activities and expenses",
		Tags:          []string{"trips"},
		DefaultStatus: http.StatusNoContent,
	}
}

// ---- activities ------------------------------------------------------------

func listActivitiesOp() huma.Operation {
	return huma.Operation{
		OperationID: "activities-list",
		Method:      http.MethodGet,
		Path:        "/trips/{id}/activities",
		Summary:     "List activities in insertion order",
		Tags:        []string{"activities"},
	}
}

func addActivityOp() huma.Operation {
	return huma.Operation{
		OperationID:   "activities-add",
		Method:        http.MethodPost,
		Path:          "/trips/{id}/activities",
		Summary:       "Add an activity",
		Tags:          []string{"activities"},
		DefaultStatus: http.StatusCreated,
	}
}

func deleteActivityOp() huma.Operation {
	return huma.Operation{
		OperationID:   "activities-delete",
		Method:        http.MethodDelete,
		Path:          "/trips/{id}/activities/{activityId}",
		Summary:       "Delete an activity",
		Tags:          []string{"activities"},
		DefaultStatus: http.StatusNoContent,
	}
}

func itineraryOp() huma.Operation {
	return huma.Operation{
		OperationID: "itinerary-get",
		Method:      http.MethodGet,
		Path:        "/trips/{id}/itinerary",
		Summary:     "Activities bucketed by day and sorted by time",
		Tags:        []string{"activities"},
	}
}

func dayOp() huma.Operation {
	return huma.Operation{
		OperationID: "itinerary-day",
		Method:      http.MethodGet,
		Path:        "/trips/{id}/days/{day}",
		Summary:     "One day of the itinerary with links to its neighbours",
		Tags:        []string{"activities"},
	}
}

// ---- expenses --------------------------------------------------------------

func listExpensesOp() huma.Operation {
	return huma.Operation{
		OperationID: "expenses-list",
		Method:      http.MethodGet,
		Path:        "/trips/{id}/expenses",
		Summary:     "List expenses in insertion order",
		Tags:        []string{"expenses"},
	}
}

func addExpenseOp() huma.Operation {
	return huma.Operation{
		OperationID:   "expenses-add",
		Method:        http.MethodPost,
		Path:          "/trips/{id}/expenses",
		Summary:       "Add an expense",
		Tags:          []string{"expenses"},
		DefaultStatus: http.StatusCreated,
	}
}

func deleteExpenseOp() huma.Operation {
	return huma.Operation{
		OperationID:   "expenses-delete",
		Method:        http.MethodDelete,
		Path:          "/trips/{id}/expenses/{expenseId}",
		Summary:       "Delete an expense",
		Tags:          []string{"expenses"},
		DefaultStatus: http.StatusNoContent,
	}
}

func budgetOp() huma.Operation {
	return huma.Operation{
		OperationID: "budget-get",
		Method:      http.MethodGet,
		Path:        "/trips/{id}/budget",
		Summary:     "Budget summary",
		Description: "Per-category subtotals, priced activities and the total. " +
			"view=distribution adds the share of each slice; category adds the drill-down of one category.",
		Tags: []string{"expenses"},
	}
}
