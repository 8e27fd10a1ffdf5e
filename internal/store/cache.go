package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is the byte-level cache behind CachedStore.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// RedisCache implements Cache with go-redis.
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache parses url, connects and pings the server.
func NewRedisCache(url string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisCache{rdb: rdb}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	return c.rdb.Del(ctx, keys...).Err()
}

// Close releases the connection pool.
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

// CachedStore caches List results per collection. Any write to a collection
// drops its cached list. Cache errors are logged and the backing store is used.
//
// A list read that overlaps a write in the same process is not cached, so an
// older result cannot outlive the invalidation. Writers in other processes can
// still leave a stale list for up to ttl.
type CachedStore struct {
	next   Store
	cache  Cache
	ttl    time.Duration
	prefix string
	log    *zap.Logger

	mu       sync.Mutex
	versions map[string]uint64
}

// NewCachedStore decorates next with cache.
func NewCachedStore(next Store, cache Cache, ttl time.Duration, log *zap.Logger) *CachedStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedStore{
		next:     next,
		cache:    cache,
		ttl:      ttl,
		prefix:   "sitedeck:collection:",
		log:      log,
		versions: map[string]uint64{},
	}
}

func (s *CachedStore) List(ctx context.Context, collection string) ([]Document, error) {
	key := s.prefix + collection

	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn("cache read failed", zap.String("collection", collection), zap.Error(err))
	}
	if ok {
		var docs []Document
		if err := json.Unmarshal(data, &docs); err == nil {
			return docs, nil
		}
		s.log.Warn("cache entry corrupt", zap.String("collection", collection))
	}

	version := s.version(collection)
	docs, err := s.next.List(ctx, collection)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(docs)
	if err != nil {
		return docs, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.versions[collection] != version {
		return docs, nil
	}
	if err := s.cache.Set(ctx, key, payload, s.ttl); err != nil {
		s.log.Warn("cache write failed", zap.String("collection", collection), zap.Error(err))
	}
	return docs, nil
}

func (s *CachedStore) Get(ctx context.Context, collection, id string) (Document, error) {
	return s.next.Get(ctx, collection, id)
}

func (s *CachedStore) Add(ctx context.Context, collection string, fields Fields) (string, error) {
	id, err := s.next.Add(ctx, collection, fields)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx, collection)
	return id, nil
}

func (s *CachedStore) Update(ctx context.Context, collection, id string, fields Fields) error {
	if err := s.next.Update(ctx, collection, id, fields); err != nil {
		return err
	}
	s.invalidate(ctx, collection)
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, collection, id string) error {
	if err := s.next.Delete(ctx, collection, id); err != nil {
		return err
	}
	s.invalidate(ctx, collection)
	return nil
}

// Ping forwards to the backing store when it supports health checks.
func (s *CachedStore) Ping(ctx context.Context) error {
	if pinger, ok := s.next.(Pinger); ok {
		return pinger.Ping(ctx)
	}
	return nil
}

func (s *CachedStore) version(collection string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.versions[collection]
}

func (s *CachedStore) invalidate(ctx context.Context, collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.versions[collection]++
	if err := s.cache.Del(ctx, s.prefix+collection); err != nil {
		s.log.Warn("cache invalidation failed", zap.String("collection", collection), zap.Error(err))
	}
}
