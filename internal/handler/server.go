// Package handler implements the HTTP API of the TripWise planner.
// Operations are registered with huma on a chi router. Every planner route
// exists twice: once on the durable scope and once under /session, where the
// X-Session-ID header picks the session. Both share one implementation.
package handler

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pkordes/tripwise/backend/internal/calculator"
	"github.com/pkordes/tripwise/backend/internal/domain"
	"github.com/pkordes/tripwise/backend/internal/service"
	"github.com/pkordes/tripwise/backend/internal/session"
)

// TripServicer defines the trip operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching storage or the service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id string) (domain.Trip, error)
	ListPage(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) (int, error)
	Destinations(ctx context.Context) ([]string, error)
}

// ActivityServicer defines the activity ledger operations.
type ActivityServicer interface {
	Add(ctx context.Context, tripID string, a domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, tripID, activityID string) error
	List(ctx context.Context, tripID string) ([]domain.Activity, error)
	Itinerary(ctx context.Context, tripID string) ([]calculator.Day, error)
	Day(ctx context.Context, tripID string, day int) (service.DayView, error)
}

// ExpenseServicer defines the expense ledger operations.
type ExpenseServicer interface {
	Add(ctx context.Context, tripID string, e domain.Expense) (domain.Expense, error)
	Delete(ctx context.Context, tripID, expenseID string) error
	List(ctx context.Context, tripID string) ([]domain.Expense, error)
	Budget(ctx context.Context, tripID string) (calculator.Budget, error)
}

// AuthServicer defines the mock identity operations.
type AuthServicer interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Signup(ctx context.Context, name, email, password string) (domain.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*domain.User, error)
	Subscribe(fn func(session.Event)) func()
}

// Planner is the set of services of one record-store scope.
type Planner struct {
	Trips      TripServicer
	Activities ActivityServicer
	Expenses   ExpenseServicer
}

// PlannerSource resolves the planner of a scope. An empty session ID selects
// the durable scope.
type PlannerSource func(sessionID string) Planner

// ScopesSource adapts service.Scopes to a PlannerSource.
func ScopesSource(scopes *service.Scopes) PlannerSource {
	return func(sessionID string) Planner {
		p := scopes.Durable()
		if sessionID != "" {
			p = scopes.Session(sessionID)
		}
		return Planner{Trips: p.Trips, Activities: p.Activities, Expenses: p.Expenses}
	}
}

// Server holds the dependencies of every operation.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	planners PlannerSource
	auth     AuthServicer
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(planners PlannerSource, auth AuthServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{planners: planners, auth: auth, log: log}
}

// Register adds every operation to api.
func (s *Server) Register(api huma.API) {
	huma.Register(api, healthOp(), s.getHealth)

	huma.Register(api, loginOp(), s.login)
	huma.Register(api, signupOp(), s.signup)
	huma.Register(api, logoutOp(), s.logout)
	huma.Register(api, meOp(), s.me)
	s.registerAuthEvents(api)

	huma.Register(api, destinationsOp(), s.listDestinations)
	huma.Register(api, endSessionOp(), s.endSession)

	for _, sc := range []scope{durableScope, sessionScope} {
		s.registerPlanner(api, sc)
	}
}

func (s *Server) registerPlanner(api huma.API, sc scope) {
	huma.Register(api, sc.op(listTripsOp()), bind(s, sc, s.listTrips))
	huma.Register(api, sc.op(createTripOp()), bind(s, sc, s.createTrip))
	huma.Register(api, sc.op(getTripOp()), bind(s, sc, s.getTrip))
	huma.Register(api, sc.op(updateTripOp()), bind(s, sc, s.updateTrip))
	huma.Register(api, sc.op(deleteTripOp()), bind(s, sc, s.deleteTrip))

	huma.Register(api, sc.op(listActivitiesOp()), bind(s, sc, s.listActivities))
	huma.Register(api, sc.op(addActivityOp()), bind(s, sc, s.addActivity))
	huma.Register(api, sc.op(deleteActivityOp()), bind(s, sc, s.deleteActivity))
	huma.Register(api, sc.op(itineraryOp()), bind(s, sc, s.getItinerary))
	huma.Register(api, sc.op(dayOp()), bind(s, sc, s.getDay))

	huma.Register(api, sc.op(listExpensesOp()), bind(s, sc, s.listExpenses))
	huma.Register(api, sc.op(addExpenseOp()), bind(s, sc, s.addExpense))
	huma.Register(api, sc.op(deleteExpenseOp()), bind(s, sc, s.deleteExpense))
	huma.Register(api, sc.op(budgetOp()), bind(s, sc, s.getBudget))
}
