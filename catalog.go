package llmcatalog

import (
	"context"
	"log/slog"
	"time"
)

// Catalog loads the dataset, preferring a fresh cached copy over a fetch.
//
// A Catalog has no notion of request identity: when a Load is superseded by
// another, discarding the late result is up to the caller.
type Catalog struct {
	fetcher Fetcher
	cache   *Cache
	key     string
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithCache sets the cache. Without it nothing is cached.
func WithCache(c *Cache) Option {
	return func(cat *Catalog) { cat.cache = c }
}

// WithCacheKey overrides DefaultCacheKey.
func WithCacheKey(key string) Option {
	return func(cat *Catalog) { cat.key = key }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(cat *Catalog) { cat.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(cat *Catalog) { cat.logger = l }
}

// New creates a Catalog reading from fetcher.
func New(fetcher Fetcher, opts ...Option) *Catalog {
	c := &Catalog{
		fetcher: fetcher,
		key:     DefaultCacheKey,
		now:     time.Now,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = NewCache(NopStore{}, WithCacheLogger(c.logger))
	}
	return c
}

// Load returns the cached dataset if it is fresh, otherwise fetches,
// normalizes and caches a new one. Fetch errors are returned unchanged.
func (c *Catalog) Load(ctx context.Context) (*Dataset, error) {
	if records, ok := c.cache.Load(ctx, c.key, c.now()); ok {
		c.logger.Info("loaded catalog from cache", "count", len(records))
		return NewDataset(records), nil
	}

	raw, err := c.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.logger.Info("fetched catalog", "count", len(raw))

	return c.Normalize(ctx, raw), nil
}

// Refresh drops the cached dataset and loads a new one.
func (c *Catalog) Refresh(ctx context.Context) (*Dataset, error) {
	if err := c.cache.Clear(ctx, c.key); err != nil {
		c.logger.Warn("clearing cache failed", "key", c.key, "err", err)
	}
	return c.Load(ctx)
}

// Normalize builds a dataset from raw records and caches it.
func (c *Catalog) Normalize(ctx context.Context, raw []Model) *Dataset {
	ds := Normalize(raw)
	if dropped := len(raw) - ds.Len(); dropped > 0 {
		c.logger.Info("dropped models with empty pricing", "dropped", dropped, "remaining", ds.Len())
	}

	// A failed cache write still returns the fetched data.
	if err := c.cache.Store(ctx, c.key, ds.models, c.now()); err != nil {
		c.logger.Warn("caching catalog failed", "key", c.key, "err", err)
	}
	return ds
}
