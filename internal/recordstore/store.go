// Package recordstore is the persistence façade of the planner: a JSON
// key-value store with two scopes. The durable scope survives restarts; the
// session scope lives as long as one client session.
//
// Backends only move bytes. Store adds key prefixing, JSON encoding, and the
// silent-degradation read policy: a missing or malformed record reads as absent.
package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Backend is the raw key-value storage behind a Store.
// Get returns (nil, nil) when the key does not exist.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store reads and writes JSON records under a fixed key prefix.
type Store struct {
	backend Backend
	prefix  string
	log     *slog.Logger
}

// New constructs a Store that namespaces every key with prefix.
func New(backend Backend, prefix string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{backend: backend, prefix: prefix, log: log}
}

// Durable returns a Store over backend using the durable key prefix.
func Durable(backend Backend, log *slog.Logger) *Store {
	return New(backend, DurablePrefix, log)
}

// Session returns a Store over backend scoped to one session id.
func Session(backend Backend, sessionID string, log *slog.Logger) *Store {
	return New(backend, SessionPrefix(sessionID), log)
}

// Get decodes the record stored under key into dst.
// It returns false when the record is missing or cannot be decoded; the latter
// is logged and otherwise ignored. Only backend failures are returned as errors.
func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	full := s.prefix + key
	raw, err := s.backend.Get(ctx, full)
	if err != nil {
		return false, fmt.Errorf("recordstore.Store.Get %s: %w", full, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.WarnContext(ctx, "discarding malformed record", "key", full, "error", err)
		return false, nil
	}
	return true, nil
}

// Set encodes v as JSON and writes it under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, v any) error {
	full := s.prefix + key
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("recordstore.Store.Set %s: encode: %w", full, err)
	}
	if err := s.backend.Set(ctx, full, raw); err != nil {
		return fmt.Errorf("recordstore.Store.Set %s: %w", full, err)
	}
	return nil
}

// Remove deletes the record under key. Removing a missing key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	full := s.prefix + key
	if err := s.backend.Delete(ctx, full); err != nil {
		return fmt.Errorf("recordstore.Store.Remove %s: %w", full, err)
	}
	return nil
}

// Lock serializes read-modify-write cycles on key within this process.
// Hold it across the Get and Set of one mutation:
//
//	unlock := store.Lock(key)
//	defer unlock()
func (s *Store) Lock(key string) (unlock func()) {
	return writeLocks.lock(s.prefix + key)
}

// Prefix returns the key prefix this store writes under.
func (s *Store) Prefix() string {
	return s.prefix
}
