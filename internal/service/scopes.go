package service

import (
	"log/slog"

	"github.com/pkordes/tripwise/backend/internal/recordstore"
	"github.com/pkordes/tripwise/backend/internal/repo"
)

// Scopes hands out the planner of the durable scope or of one session.
// Session planners are cheap and built per call; their records live in the
// session backend until the session is cleared or its TTL runs out.
type Scopes struct {
	durable *Planner
	session recordstore.Backend
	log     *slog.Logger
}

// NewScopes builds the durable planner over durable and serves session
// planners from session.
func NewScopes(durable, session recordstore.Backend, log *slog.Logger) *Scopes {
	return &Scopes{
		durable: NewPlanner(repo.NewSet(recordstore.Durable(durable, log))),
		session: session,
		log:     log,
	}
}

// Durable returns the planner whose data survives restarts.
func (s *Scopes) Durable() *Planner {
	return s.durable
}

// Session returns the planner of sessionID.
func (s *Scopes) Session(sessionID string) *Planner {
	return NewPlanner(repo.NewSet(recordstore.Session(s.session, sessionID, s.log)))
}
