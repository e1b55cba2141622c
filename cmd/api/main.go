// Package main is the entry point for the TripWise API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql (goose)
	"github.com/joho/godotenv"

	"github.com/pkordes/tripwise/backend/internal/config"
	"github.com/pkordes/tripwise/backend/internal/handler"
	"github.com/pkordes/tripwise/backend/internal/logging"
	"github.com/pkordes/tripwise/backend/internal/recordstore"
	"github.com/pkordes/tripwise/backend/internal/repo"
	"github.com/pkordes/tripwise/backend/internal/service"
	"github.com/pkordes/tripwise/backend/internal/session"
)

func main() {
	// --- Config -----------------------------------------------------------
	// A .env file is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env", "error", err)
	}
	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before ours is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Record store -----------------------------------------------------
	durable, closeDurable, err := openDurable(ctx, cfg)
	if err != nil {
		slog.Error("failed to open durable store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer closeDurable()
	slog.Info("durable store ready", "driver", cfg.StoreDriver)

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	sessions, err := openSessions(sweepCtx, cfg)
	if err != nil {
		slog.Error("failed to open session store", "backend", cfg.SessionBackend, "error", err)
		os.Exit(1)
	}
	slog.Info("session store ready", "backend", cfg.SessionBackend, "ttl", cfg.SessionTTL)

	// --- Services ---------------------------------------------------------
	scopes := service.NewScopes(durable, sessions, logger)
	users := repo.NewUserRepo(recordstore.Durable(durable, logger))
	auth := service.NewAuthService(users, session.NewBroadcaster(), logger)

	// --- Router -----------------------------------------------------------
	server := handler.NewServer(handler.ScopesSource(scopes), auth, logger)
	router := handler.NewRouter(server, handler.RouterConfig{
		CORSOrigins:  cfg.CORSOrigins,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Logger:       logger,
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// WriteTimeout stays unset so /auth/events can stream.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openDurable opens the backend selected by STORE_DRIVER. Postgres is
// migrated with goose before use.
func openDurable(ctx context.Context, cfg config.Config) (recordstore.Backend, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		b, err := recordstore.NewSQLiteBackend(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return b, func() { _ = b.Close() }, nil

	case config.DriverPostgres:
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open migration connection: %w", err)
		}
		err = recordstore.Migrate(ctx, db)
		_ = db.Close()
		if err != nil {
			return nil, nil, err
		}

		// pgxpool manages a pool of Postgres connections.
		// New() does not open connections immediately; Ping does.
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("create pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping: %w", err)
		}
		return recordstore.NewPostgresBackend(pool), pool.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// openSessions opens the backend selected by SESSION_BACKEND. Both expire a
// session idle for SESSION_TTL. The memory backend sweeps expired sessions
// until ctx is done.
func openSessions(ctx context.Context, cfg config.Config) (recordstore.Backend, error) {
	if cfg.SessionBackend == config.SessionMemcache {
		b, err := recordstore.NewMemcacheBackend(cfg.MemcacheHosts, cfg.SessionTTL)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	b := recordstore.NewMemoryBackend(cfg.SessionTTL)
	go b.Run(ctx, cfg.SessionTTL/2)
	return b, nil
}
