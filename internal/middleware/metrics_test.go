package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripwise/backend/internal/middleware"
)

// TestMetrics_observesRoutePattern verifies that requests are labelled by
// their chi route pattern rather than the raw path.
func TestMetrics_observesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.NewMetrics())
	r.Get("/trips/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trips/abc-123", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	metrics := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(metrics, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := metrics.Body.String()

	assert.True(t, strings.Contains(body, `tripwise_http_request_duration_seconds_count{method="GET",route="/trips/{id}",status="200"}`), body)
	assert.NotContains(t, body, "abc-123")
}
