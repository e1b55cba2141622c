package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkordes/tripwise/backend/internal/domain"
	"github.com/pkordes/tripwise/backend/internal/repo"
	"github.com/pkordes/tripwise/backend/internal/session"
)

// MinPasswordLength is the shortest password signup accepts.
const MinPasswordLength = 6

// AuthService is the mock identity flow. Passwords are checked for presence
// and length only and are never stored.
type AuthService struct {
	users  repo.UserRepo
	events *session.Broadcaster
	log    *slog.Logger
}

// NewAuthService constructs an AuthService that publishes to events.
func NewAuthService(users repo.UserRepo, events *session.Broadcaster, log *slog.Logger) *AuthService {
	if log == nil {
		log = slog.Default()
	}
	return &AuthService{users: users, events: events, log: log}
}

// Login signs in as email, replacing any previous user.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.User{}, fmt.Errorf("service.AuthService.Login: %w: email is required", domain.ErrValidation)
	}
	if password == "" {
		return domain.User{}, fmt.Errorf("service.AuthService.Login: %w: password is required", domain.ErrValidation)
	}
	u := domain.User{Email: email}
	if err := s.users.Save(ctx, u); err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}
	s.publish(ctx, session.KindLogin, &u)
	return u, nil
}

// Signup signs in as a named user.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	switch {
	case name == "":
		return domain.User{}, fmt.Errorf("service.AuthService.Signup: %w: name is required", domain.ErrValidation)
	case email == "":
		return domain.User{}, fmt.Errorf("service.AuthService.Signup: %w: email is required", domain.ErrValidation)
	case len(password) < MinPasswordLength:
		return domain.User{}, fmt.Errorf("service.AuthService.Signup: %w: password must be at least %d characters",
			domain.ErrValidation, MinPasswordLength)
	}
	u := domain.User{Name: name, Email: email}
	if err := s.users.Save(ctx, u); err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Signup: %w", err)
	}
	s.publish(ctx, session.KindSignup, &u)
	return u, nil
}

// Logout removes the current user. Trips are left alone.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.users.Delete(ctx); err != nil {
		return fmt.Errorf("service.AuthService.Logout: %w", err)
	}
	s.publish(ctx, session.KindLogout, nil)
	return nil
}

// Current returns the signed-in user, or nil when logged out.
func (s *AuthService) Current(ctx context.Context) (*domain.User, error) {
	u, err := s.users.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("service.AuthService.Current: %w", err)
	}
	return &u, nil
}

// Greeting returns the header text for the signed-in user.
func (s *AuthService) Greeting(ctx context.Context) (string, error) {
	u, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	return session.Greeting(u), nil
}

// Subscribe follows auth changes. See session.Broadcaster.Subscribe.
func (s *AuthService) Subscribe(fn func(session.Event)) func() {
	return s.events.Subscribe(fn)
}

func (s *AuthService) publish(ctx context.Context, kind session.Kind, u *domain.User) {
	authEvents.WithLabelValues(string(kind)).Inc()
	s.log.InfoContext(ctx, "auth change", "kind", kind)
	s.events.Publish(session.Event{Kind: kind, User: u})
}
