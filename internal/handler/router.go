package handler

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/tripwise/backend/internal/middleware"
)

// RouterConfig carries the HTTP-level settings of NewRouter.
type RouterConfig struct {
	CORSOrigins  []string
	MaxBodyBytes int64
	Logger       *slog.Logger
}

// NewRouter builds the chi router with the middleware stack, every huma
// operation of s, and /metrics.
//
// Middleware is applied in order: RequestID → RealIP → Logger → Metrics →
// Recoverer → CORS → MaxBodySize. RequestID generates a unique trace ID per
// request, RealIP trusts X-Forwarded-For behind a proxy, and Recoverer turns
// panics into HTTP 500 instead of crashing.
func NewRouter(s *Server, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(middleware.NewMetrics())
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	if cfg.MaxBodyBytes > 0 {
		r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	}

	r.Handle("/metrics", promhttp.Handler())

	// huma serves /openapi.json and /docs next to the operations.
	api := humachi.New(r, huma.DefaultConfig("TripWise API", "1.0.0"))
	s.Register(api)

	return r
}
