package llmcatalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// TTL is how long a stored dataset stays fresh.
const TTL = time.Hour

// DefaultCacheKey is the key a Catalog stores its dataset under.
const DefaultCacheKey = "llm_catalog_models_cache"

// Store is a durable key-value byte store. Get returns ErrNotFound for a
// missing key and Delete of a missing key is not an error.
// Expiry is not the store's concern; Cache owns it.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// CacheEntry is the serialized form of a cached dataset.
type CacheEntry struct {
	Records   []Model   `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Cache applies a TTL on top of a Store.
type Cache struct {
	store  Store
	logger *slog.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithCacheLogger sets the logger for cache diagnostics.
func WithCacheLogger(l *slog.Logger) CacheOption {
	return func(c *Cache) { c.logger = l }
}

// NewCache creates a Cache over store. A nil store behaves like NopStore.
func NewCache(store Store, opts ...CacheOption) *Cache {
	if store == nil {
		store = NopStore{}
	}
	c := &Cache{
		store:  store,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store replaces the entry for key with records captured at now.
func (c *Cache) Store(ctx context.Context, key string, records []Model, now time.Time) error {
	data, err := json.Marshal(CacheEntry{Records: records, Timestamp: now})
	if err != nil {
		return err
	}
	if err := c.store.Set(ctx, key, data); err != nil {
		return err
	}
	c.logger.Debug("cache stored", "key", key, "count", len(records))
	return nil
}

// Load returns the records stored under key if they are younger than the TTL.
// Missing, unreadable and expired entries all report false.
func (c *Cache) Load(ctx context.Context, key string, now time.Time) ([]Model, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.logger.Warn("cache read failed", "key", key, "err", err)
		}
		c.logger.Debug("cache miss", "key", key)
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.logger.Warn("cache entry corrupt", "key", key, "err", err)
		return nil, false
	}

	age := now.Sub(entry.Timestamp)
	if age >= TTL {
		c.logger.Debug("cache expired", "key", key, "age", age, "ttl", TTL)
		return nil, false
	}

	c.logger.Debug("cache hit", "key", key, "count", len(entry.Records), "age", age)
	return entry.Records, true
}

// Clear deletes the entry for key. Clearing a missing key succeeds.
func (c *Cache) Clear(ctx context.Context, key string) error {
	if err := c.store.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	c.logger.Debug("cache cleared", "key", key)
	return nil
}

// NopStore never holds data. It stands in where no durable storage exists.
type NopStore struct{}

func (NopStore) Get(context.Context, string) ([]byte, error) { return nil, ErrNotFound }
func (NopStore) Set(context.Context, string, []byte) error   { return nil }
func (NopStore) Delete(context.Context, string) error        { return nil }

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
