package handler

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pkordes/tripwise/backend/internal/recordstore"
)

// SessionHeader carries the session ID on /session routes.
const SessionHeader = "X-Session-ID"

// scope describes where a planner route is mounted.
type scope struct {
	prefix  string
	idPart  string
	session bool
}

var (
	durableScope = scope{}
	sessionScope = scope{prefix: "/session", idPart: "session-", session: true}
)

// op mounts a planner operation under the scope's prefix.
func (sc scope) op(op huma.Operation) huma.Operation {
	op.Path = sc.prefix + op.Path
	op.OperationID = sc.idPart + op.OperationID
	if sc.session {
		op.Tags = append(op.Tags, "session")
	}
	return op
}

// SessionParam is embedded in every planner input.
type SessionParam struct {
	SessionID string `header:"X-Session-ID" doc:"Session ID; required on /session routes, ignored elsewhere"`
}

func (in *SessionParam) sessionID() string { return in.SessionID }

type scopedInput interface {
	sessionID() string
}

// bind turns a planner operation into a huma handler for scope sc. The
// scope's planner is resolved before fn runs.
func bind[I, O any, PI interface {
	*I
	scopedInput
}](s *Server, sc scope, fn func(ctx context.Context, p Planner, in PI) (*O, error)) func(context.Context, *I) (*O, error) {
	return func(ctx context.Context, in *I) (*O, error) {
		sid := ""
		if sc.session {
			sid = PI(in).sessionID()
			if err := checkSessionID(sid); err != nil {
				return nil, err
			}
		}
		return fn(ctx, s.planners(sid), PI(in))
	}
}

func checkSessionID(sid string) error {
	if sid == "" {
		return huma.Error400BadRequest(SessionHeader + " header is required")
	}
	if !recordstore.ValidSessionID(sid) {
		return huma.Error400BadRequest(SessionHeader + " must be 1-64 letters, digits or hyphens")
	}
	return nil
}
