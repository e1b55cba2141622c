package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/tripwise/backend/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTrip_DurationDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"five day trip", "2026-06-01", "2026-06-05", 5},
		{"same day", "2026-06-01", "2026-06-01", 1},
		{"across month", "2026-01-30", "2026-02-02", 4},
		{"inverted by one day", "2026-06-05", "2026-06-04", 0},
		{"inverted by many days", "2026-06-10", "2026-06-01", 0},
		{"leap day", "2028-02-28", "2028-03-01", 3},
		{"whole calendar range", "0001-01-01", "9999-12-31", 3652059},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := domain.Trip{StartDate: date(tt.start), EndDate: date(tt.end)}
			assert.Equal(t, tt.want, trip.DurationDays())
		})
	}
}

func TestTrip_DateOf(t *testing.T) {
	trip := domain.Trip{StartDate: date("2026-06-01"), EndDate: date("2026-06-05")}
	assert.Equal(t, date("2026-06-03"), trip.DateOf(3))
}

func TestCategory_ValidAndLabel(t *testing.T) {
	assert.True(t, domain.CategoryFood.Valid())
	assert.False(t, domain.Category("souvenirs").Valid())
	assert.Equal(t, "Transportation", domain.CategoryTransportation.Label())
	assert.Len(t, domain.Categories, 6)
}

func TestActivity_Priced(t *testing.T) {
	zero, twenty := 0.0, 20.0
	assert.False(t, domain.Activity{}.Priced())
	assert.False(t, domain.Activity{Price: &zero}.Priced())
	assert.True(t, domain.Activity{Price: &twenty}.Priced())
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Traveler", domain.User{Email: "a@b.c"}.DisplayName())
	assert.Equal(t, "Alex", domain.User{Name: "Alex", Email: "a@b.c"}.DisplayName())
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, domain.Paginate(items, domain.NewPaginationParams(1, 2)))
	assert.Equal(t, []int{5}, domain.Paginate(items, domain.NewPaginationParams(3, 2)))
	assert.Equal(t, []int{}, domain.Paginate(items, domain.NewPaginationParams(4, 2)))

	p := domain.NewPaginationParams(0, 500)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.Limit)
}
