package testutil

import (
	"io"
	"log/slog"

	"github.com/pkordes/tripwise/backend/internal/recordstore"
)

// DiscardLogger returns a logger that drops everything, for quiet tests.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewDurableStore returns a durable-scope Store over a fresh in-memory backend,
// together with the backend so tests can plant raw bytes.
func NewDurableStore() (*recordstore.Store, *recordstore.MemoryBackend) {
	backend := recordstore.NewMemoryBackend(0)
	return recordstore.Durable(backend, DiscardLogger()), backend
}
