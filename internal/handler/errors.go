package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pkordes/tripwise/backend/internal/domain"
)

// apiError maps a service error onto an HTTP error.
// Not-found becomes 404 and validation 422; everything else is logged and
// reported as a bare 500 so storage details do not leak.
func (s *Server) apiError(ctx context.Context, err error, notFound string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return huma.Error404NotFound(notFound)
	case errors.Is(err, domain.ErrValidation):
		return huma.Error422UnprocessableEntity(unwrapMessage(err))
	}
	s.log.ErrorContext(ctx, "request failed", "error", err)
	return huma.Error500InternalServerError("internal error")
}

// unwrapMessage extracts the human-readable part of a wrapped validation error.
// e.g. "service.TripService.Create: validation error: title is required" → "title is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
