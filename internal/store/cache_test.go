package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	fail    bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return nil, false, errors.New("cache down")
	}
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("cache down")
	}
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("cache down")
	}
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

type countingStore struct {
	Store
	lists int
}

func (s *countingStore) List(ctx context.Context, collection string) ([]Document, error) {
	s.lists++
	return s.Store.List(ctx, collection)
}

func TestCachedStoreServesListsFromCache(t *testing.T) {
	backing := &countingStore{Store: newTestGormStore(t)}
	cache := newMemoryCache()
	s := NewCachedStore(backing, cache, time.Minute, nil)
	ctx := context.Background()

	_, err := s.Add(ctx, "Projects", Fields{"title": "Reel"})
	require.NoError(t, err)

	first, err := s.List(ctx, "Projects")
	require.NoError(t, err)
	second, err := s.List(ctx, "Projects")
	require.NoError(t, err)
	assert.Equal(t, 1, backing.lists)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, "Reel", second[0].Fields.String("title", ""))

	_, err = s.Add(ctx, "Projects", Fields{"title": "Short"})
	require.NoError(t, err)
	third, err := s.List(ctx, "Projects")
	require.NoError(t, err)
	assert.Len(t, third, 2)
	assert.Equal(t, 2, backing.lists, "writes drop the cached list")
}

func TestCachedStoreBypassesBrokenCache(t *testing.T) {
	backing := &countingStore{Store: newTestGormStore(t)}
	cache := newMemoryCache()
	cache.fail = true
	s := NewCachedStore(backing, cache, time.Minute, nil)
	ctx := context.Background()

	id, err := s.Add(ctx, "contactUs", Fields{"label": "Phone"})
	require.NoError(t, err)

	docs, err := s.List(ctx, "contactUs")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, id, docs[0].ID)

	require.NoError(t, s.Delete(ctx, "contactUs", id))
	assert.NoError(t, s.Ping(ctx))
}

// racingStore runs onList after reading from the backing store, before the
// caller gets the result.
type racingStore struct {
	Store
	onList func()
}

func (s *racingStore) List(ctx context.Context, collection string) ([]Document, error) {
	docs, err := s.Store.List(ctx, collection)
	if s.onList != nil {
		hook := s.onList
		s.onList = nil
		hook()
	}
	return docs, err
}

func TestCachedStoreSkipsListOverlappingWrite(t *testing.T) {
	backing := &racingStore{Store: newTestGormStore(t)}
	cache := newMemoryCache()
	s := NewCachedStore(backing, cache, time.Minute, nil)
	ctx := context.Background()

	_, err := s.Add(ctx, "pricingPlans", Fields{"title": "Basic"})
	require.NoError(t, err)

	backing.onList = func() {
		_, err := s.Add(ctx, "pricingPlans", Fields{"title": "Premium"})
		require.NoError(t, err)
	}
	stale, err := s.List(ctx, "pricingPlans")
	require.NoError(t, err)
	assert.Len(t, stale, 1)

	_, cached, err := cache.Get(ctx, "sitedeck:collection:pricingPlans")
	require.NoError(t, err)
	assert.False(t, cached, "a list read before a write must not be cached")

	fresh, err := s.List(ctx, "pricingPlans")
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}
