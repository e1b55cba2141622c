package handler

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/sse"

	"github.com/pkordes/tripwise/backend/internal/domain"
	"github.com/pkordes/tripwise/backend/internal/session"
)

type loginInput struct {
	Body struct {
		Email    string `json:"email" minLength:"1" example:"alex@example.com"`
		Password string `json:"password" minLength:"1"`
	}
}

type signupInput struct {
	Body struct {
		Name     string `json:"name" minLength:"1" example:"Alex"`
		Email    string `json:"email" minLength:"1" example:"alex@example.com"`
		Password string `json:"password" doc:"At least 6 characters"`
	}
}

type userOutput struct {
	Body domain.User
}

type meOutput struct {
	Body authState
}

// authState is what /auth/me returns and what each auth event carries.
type authState struct {
	Kind     session.Kind `json:"kind,omitempty" doc:"Set on streamed events only"`
	LoggedIn bool         `json:"loggedIn"`
	User     *domain.User `json:"user,omitempty"`
	Greeting string       `json:"greeting" example:"Welcome back, Alex"`
}

func stateOf(kind session.Kind, u *domain.User) authState {
	return authState{Kind: kind, LoggedIn: u != nil, User: u, Greeting: session.Greeting(u)}
}

// login handles POST /auth/login.
func (s *Server) login(ctx context.Context, in *loginInput) (*userOutput, error) {
	u, err := s.auth.Login(ctx, in.Body.Email, in.Body.Password)
	if err != nil {
		return nil, s.apiError(ctx, err, "")
	}
	return &userOutput{Body: u}, nil
}

// signup handles POST /auth/signup.
func (s *Server) signup(ctx context.Context, in *signupInput) (*userOutput, error) {
	u, err := s.auth.Signup(ctx, in.Body.Name, in.Body.Email, in.Body.Password)
	if err != nil {
		return nil, s.apiError(ctx, err, "")
	}
	return &userOutput{Body: u}, nil
}

// logout handles POST /auth/logout.
func (s *Server) logout(ctx context.Context, _ *struct{}) (*struct{}, error) {
	if err := s.auth.Logout(ctx); err != nil {
		return nil, s.apiError(ctx, err, "")
	}
	return nil, nil
}

// me handles GET /auth/me.
func (s *Server) me(ctx context.Context, _ *struct{}) (*meOutput, error) {
	u, err := s.auth.Current(ctx)
	if err != nil {
		return nil, s.apiError(ctx, err, "")
	}
	return &meOutput{Body: stateOf("", u)}, nil
}

// registerAuthEvents adds GET /auth/events, a server-sent event stream that
// starts with the current state and then follows the broadcaster.
func (s *Server) registerAuthEvents(api huma.API) {
	sse.Register(api, authEventsOp(), map[string]any{
		"auth": authState{},
	}, func(ctx context.Context, _ *struct{}, send sse.Sender) {
		events := make(chan session.Event, 8)
		cancel := s.auth.Subscribe(func(e session.Event) {
			select {
			case events <- e:
			default:
				// A slow client misses intermediate events; the next one
				// still carries the full state.
			}
		})
		defer cancel()

		u, err := s.auth.Current(ctx)
		if err != nil {
			s.log.ErrorContext(ctx, "auth events: read current user", "error", err)
			return
		}
		if err := send.Data(stateOf("", u)); err != nil {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case e := <-events:
				if err := send.Data(stateOf(e.Kind, e.User)); err != nil {
					return
				}
			}
		}
	})
}
