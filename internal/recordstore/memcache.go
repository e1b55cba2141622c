package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// maxRelativeExpiration is the largest TTL memcached reads as relative
// seconds; anything longer is taken as an absolute Unix time.
const maxRelativeExpiration = 30 * 24 * time.Hour

// casAttempts bounds the compare-and-swap retries of one write.
const casAttempts = 16

// MemcacheBackend keeps session records in memcached so several API
// instances can share one session scope.
//
// All records of a session live in one item keyed by the session prefix, so
// the session expires as a unit. Reads touch the item and writes replace it
// with compare-and-swap.
type MemcacheBackend struct {
	client *memcache.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewMemcacheBackend connects to the given memcached hosts and verifies they
// respond.
func NewMemcacheBackend(hosts []string, ttl time.Duration) (*MemcacheBackend, error) {
	mc := memcache.New(hosts...)
	if err := mc.Ping(); err != nil {
		return nil, fmt.Errorf("recordstore.NewMemcacheBackend: ping: %w", err)
	}
	return &MemcacheBackend{client: mc, ttl: ttl, now: time.Now}, nil
}

func (b *MemcacheBackend) Get(_ context.Context, key string) ([]byte, error) {
	group := groupOf(key)
	item, records, err := b.load(group)
	if err != nil {
		return nil, fmt.Errorf("memcache get %s: %w", key, err)
	}
	if item == nil {
		return nil, nil
	}
	if err := b.client.Touch(group, b.expiration()); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return nil, fmt.Errorf("memcache touch %s: %w", group, err)
	}
	return records[key], nil
}

func (b *MemcacheBackend) Set(_ context.Context, key string, value []byte) error {
	err := b.update(groupOf(key), func(records map[string][]byte) {
		records[key] = value
	})
	if err != nil {
		return fmt.Errorf("memcache set %s: %w", key, err)
	}
	return nil
}

func (b *MemcacheBackend) Delete(_ context.Context, key string) error {
	err := b.update(groupOf(key), func(records map[string][]byte) {
		delete(records, key)
	})
	if err != nil {
		return fmt.Errorf("memcache delete %s: %w", key, err)
	}
	return nil
}

// load fetches and decodes a group item. A missing item is (nil, nil, nil).
func (b *MemcacheBackend) load(group string) (*memcache.Item, map[string][]byte, error) {
	item, err := b.client.Get(group)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	records := map[string][]byte{}
	if err := json.Unmarshal(item.Value, &records); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", group, err)
	}
	return item, records, nil
}

// update applies fn to the records of group and writes them back, retrying
// when another writer got there first. An emptied group is deleted.
func (b *MemcacheBackend) update(group string, fn func(map[string][]byte)) error {
	for range casAttempts {
		item, records, err := b.load(group)
		if err != nil {
			return err
		}
		if records == nil {
			records = map[string][]byte{}
		}
		fn(records)

		if len(records) == 0 {
			if item == nil {
				return nil
			}
			err = b.client.Delete(group)
			if errors.Is(err, memcache.ErrCacheMiss) {
				return nil
			}
			return err
		}

		raw, err := json.Marshal(records)
		if err != nil {
			return err
		}
		if item == nil {
			err = b.client.Add(&memcache.Item{Key: group, Value: raw, Expiration: b.expiration()})
		} else {
			item.Value = raw
			item.Expiration = b.expiration()
			err = b.client.CompareAndSwap(item)
		}
		switch {
		case err == nil:
			return nil
		case errors.Is(err, memcache.ErrNotStored), errors.Is(err, memcache.ErrCASConflict), errors.Is(err, memcache.ErrCacheMiss):
			continue
		default:
			return err
		}
	}
	return fmt.Errorf("%s: too many concurrent writers", group)
}

func (b *MemcacheBackend) expiration() int32 {
	return expirationFor(b.ttl, b.now())
}

// expirationFor converts ttl to memcached's Expiration field: relative
// seconds up to 30 days, an absolute Unix time beyond that, 0 for none.
func expirationFor(ttl time.Duration, now time.Time) int32 {
	if ttl <= 0 {
		return 0
	}
	if ttl > maxRelativeExpiration {
		return int32(now.Add(ttl).Unix())
	}
	return int32(ttl / time.Second)
}
