package recordstore

import (
	"context"
	"sync"
	"time"
)

// MemoryBackend keeps records in process memory.
//
// With a non-zero TTL, records expire as a group: every record of one session
// shares a single last-seen time, refreshed by any read or write in that
// session. A session idle for longer than TTL is dropped whole. Expired
// groups are swept on writes and by Run.
type MemoryBackend struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	groups    map[string]*memoryGroup
	lastSweep time.Time
}

type memoryGroup struct {
	seen    time.Time
	records map[string][]byte
}

// NewMemoryBackend constructs an empty MemoryBackend. A zero ttl disables expiry.
func NewMemoryBackend(ttl time.Duration) *MemoryBackend {
	return &MemoryBackend{ttl: ttl, now: time.Now, groups: make(map[string]*memoryGroup)}
}

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g := m.live(groupOf(key))
	if g == nil {
		return nil, nil
	}
	g.seen = m.now()

	v, ok := g.records[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryBackend) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweepIfDue()

	name := groupOf(key)
	g := m.live(name)
	if g == nil {
		g = &memoryGroup{records: make(map[string][]byte)}
		m.groups[name] = g
	}
	g.seen = m.now()

	v := make([]byte, len(value))
	copy(v, value)
	g.records[key] = v
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := groupOf(key)
	g := m.live(name)
	if g == nil {
		return nil
	}
	g.seen = m.now()
	delete(g.records, key)
	if len(g.records) == 0 {
		delete(m.groups, name)
	}
	return nil
}

// Len returns the number of live records.
func (m *MemoryBackend) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, g := range m.groups {
		if !m.expired(g) {
			n += len(g.records)
		}
	}
	return n
}

// Sweep drops every expired group and returns how many records went with them.
func (m *MemoryBackend) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweep()
}

// Run sweeps every interval until ctx is done.
func (m *MemoryBackend) Run(ctx context.Context, interval time.Duration) {
	if m.ttl <= 0 || interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Sweep()
		}
	}
}

// live returns the group, dropping it first when it has expired.
func (m *MemoryBackend) live(name string) *memoryGroup {
	g, ok := m.groups[name]
	if !ok {
		return nil
	}
	if m.expired(g) {
		delete(m.groups, name)
		return nil
	}
	return g
}

// sweepIfDue sweeps at most once per TTL so writes stay cheap.
func (m *MemoryBackend) sweepIfDue() {
	if m.ttl <= 0 || m.now().Sub(m.lastSweep) < m.ttl {
		return
	}
	m.sweep()
}

func (m *MemoryBackend) sweep() int {
	m.lastSweep = m.now()
	n := 0
	for name, g := range m.groups {
		if m.expired(g) {
			n += len(g.records)
			delete(m.groups, name)
		}
	}
	return n
}

func (m *MemoryBackend) expired(g *memoryGroup) bool {
	return m.ttl > 0 && m.now().Sub(g.seen) >= m.ttl
}
