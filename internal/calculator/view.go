package calculator

import (
	"fmt"

	"github.com/pkordes/tripwise/backend/internal/domain"
)

// ViewMode selects how a budget is presented.
type ViewMode string

const (
	ViewBreakdown    ViewMode = "breakdown"
	ViewDistribution ViewMode = "distribution"
)

// ParseViewMode parses s, defaulting to ViewBreakdown when s is empty.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case "", ViewBreakdown:
		return ViewBreakdown, nil
	case ViewDistribution:
		return ViewDistribution, nil
	}
	return "", fmt.Errorf("%w: unknown view %q", domain.ErrValidation, s)
}

// Toggle returns the other view mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewDistribution {
		return ViewBreakdown
	}
	return ViewDistribution
}
