package recordstore_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripwise/backend/internal/recordstore"
)

// newMemcache connects to TEST_MEMCACHE_HOSTS, skipping when it is not set.
func newMemcache(t *testing.T) *recordstore.MemcacheBackend {
	t.Helper()
	hosts := os.Getenv("TEST_MEMCACHE_HOSTS")
	if hosts == "" {
		t.Skip("TEST_MEMCACHE_HOSTS not set; skipping integration test")
	}
	b, err := recordstore.NewMemcacheBackend(strings.Split(hosts, ","), time.Minute)
	require.NoError(t, err)
	return b
}

func TestMemcacheBackend_RoundTrip(t *testing.T) {
	b := newMemcache(t)
	ctx := context.Background()
	key := "tp_session_" + uuid.NewString() + "_plans"

	v, err := b.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, b.Set(ctx, key, []byte(`[]`)))
	v, err = b.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(v))

	require.NoError(t, b.Delete(ctx, key))
	require.NoError(t, b.Delete(ctx, key))
}

func TestMemcacheBackend_SessionSharesOneItem(t *testing.T) {
	b := newMemcache(t)
	ctx := context.Background()
	prefix := recordstore.SessionPrefix(uuid.NewString())

	require.NoError(t, b.Set(ctx, prefix+recordstore.KeyPlans, []byte(`[]`)))
	require.NoError(t, b.Set(ctx, prefix+recordstore.ActivitiesKey("t1"), []byte(`[1]`)))

	v, err := b.Get(ctx, prefix+recordstore.ActivitiesKey("t1"))
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(v))

	require.NoError(t, b.Delete(ctx, prefix+recordstore.KeyPlans))
	v, err = b.Get(ctx, prefix+recordstore.KeyPlans)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = b.Get(ctx, prefix+recordstore.ActivitiesKey("t1"))
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(v), "deleting one record keeps the rest of the session")
}
