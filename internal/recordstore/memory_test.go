package recordstore

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend_ExpiresIdleEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryBackend(time.Minute)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "k", []byte("v")))

	now = now.Add(50 * time.Second)
	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v, "read before deadline")

	// The read above pushed the deadline out again.
	now = now.Add(50 * time.Second)
	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	now = now.Add(2 * time.Minute)
	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v, "entry idle past ttl")
	assert.Equal(t, 0, m.Len())
}

func TestMemoryBackend_NoTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	m := NewMemoryBackend(0)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "k", []byte("v")))
	now = now.Add(24 * 365 * time.Hour)

	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestMemoryBackend_CopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend(0)
	in := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", in))
	in[0] = 'x'

	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)

	v[0] = 'y'
	again, _ := m.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryBackend_Delete(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend(0)
	require.NoError(t, m.Set(ctx, "k", []byte("v")))
	require.NoError(t, m.Delete(ctx, "k"))
	require.NoError(t, m.Delete(ctx, "missing"))

	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)
}

// rawRecords counts stored records, live or not.
func rawRecords(m *MemoryBackend) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, g := range m.groups {
		n += len(g.records)
	}
	return n
}

func TestMemoryBackend_SessionExpiresAsUnit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryBackend(30 * time.Minute)
	m.now = func() time.Time { return now }

	prefix := SessionPrefix("tab-1")
	plans := prefix + KeyPlans
	acts := prefix + ActivitiesKey("trip-1")
	require.NoError(t, m.Set(ctx, plans, []byte(`[]`)))
	require.NoError(t, m.Set(ctx, acts, []byte(`[{"id":"a"}]`)))

	// Reading only the trip list keeps the whole session alive.
	for range 3 {
		now = now.Add(20 * time.Minute)
		v, err := m.Get(ctx, plans)
		require.NoError(t, err)
		require.NotNil(t, v)
	}

	v, err := m.Get(ctx, acts)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(v), "activities live as long as the session")

	now = now.Add(31 * time.Minute)
	for _, k := range []string{plans, acts} {
		v, err := m.Get(ctx, k)
		require.NoError(t, err)
		assert.Nil(t, v, k)
	}
}

func TestMemoryBackend_SessionsExpireIndependently(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryBackend(time.Minute)
	m.now = func() time.Time { return now }

	a := SessionPrefix("a") + KeyPlans
	b := SessionPrefix("b") + KeyPlans
	require.NoError(t, m.Set(ctx, a, []byte(`1`)))
	require.NoError(t, m.Set(ctx, b, []byte(`2`)))

	now = now.Add(40 * time.Second)
	_, _ = m.Get(ctx, a)
	now = now.Add(40 * time.Second)

	va, _ := m.Get(ctx, a)
	vb, _ := m.Get(ctx, b)
	assert.Equal(t, []byte(`1`), va)
	assert.Nil(t, vb)
}

func TestMemoryBackend_SweepsAbandonedSessions(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryBackend(30 * time.Minute)
	m.now = func() time.Time { return now }

	for i := range 1000 {
		require.NoError(t, m.Set(ctx, SessionPrefix(fmt.Sprintf("s%d", i))+KeyPlans, []byte(`[]`)))
	}
	require.Equal(t, 1000, rawRecords(m))

	now = now.Add(24 * time.Hour)
	assert.Equal(t, 0, m.Len())

	// The next write sweeps everything that expired.
	require.NoError(t, m.Set(ctx, SessionPrefix("fresh")+KeyPlans, []byte(`[]`)))
	assert.Equal(t, 1, rawRecords(m))

	now = now.Add(time.Hour)
	assert.Equal(t, 1, m.Sweep())
	assert.Equal(t, 0, rawRecords(m))
}

func TestMemoryBackend_RunStopsWithContext(t *testing.T) {
	m := NewMemoryBackend(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestGroupOf(t *testing.T) {
	tests := []struct{ key, want string }{
		{"tp_plans", "tp_plans"},
		{"tp_session_abc_plans", "tp_session_abc_"},
		{"tp_session_abc_activities_trip-1", "tp_session_abc_"},
		{"tp_session_", "tp_session_"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, groupOf(tc.key), tc.key)
	}
}

func TestValidSessionID(t *testing.T) {
	assert.True(t, ValidSessionID("3f2b9c1e-aa10-4b7e-9d2a-0c1d2e3f4a5b"))
	assert.True(t, ValidSessionID("tab-1"))
	assert.False(t, ValidSessionID(""))
	assert.False(t, ValidSessionID("a_b"), "underscore would split the key")
	assert.False(t, ValidSessionID("has space"))
	assert.False(t, ValidSessionID(strings.Repeat("a", 65)))
}
