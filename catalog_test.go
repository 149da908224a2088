package llmcatalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFetcher serves the sample payload and counts calls.
type countingFetcher struct {
	calls int
	err   error
}

func (f *countingFetcher) Fetch(context.Context) ([]Model, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return Decode([]byte(samplePayload))
}

func TestCatalog_Load(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	fetcher := &countingFetcher{}
	store := NewMemoryStore()
	cat := New(fetcher, WithCache(NewCache(store)), WithClock(clock))

	ds, err := cat.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 1, fetcher.calls)

	// Fresh cache: no fetch
	now = now.Add(30 * time.Minute)
	cached, err := cat.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, names(ds.Models()), names(cached.Models()))
	assert.Equal(t, ds.Models()[0].NameTokens, cached.Models()[0].NameTokens)

	_, ok := cached.Get("gpt-4o")
	assert.True(t, ok, "indexes are rebuilt from cached records")

	// Expired cache: fetch again
	now = now.Add(TTL)
	_, err = cat.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}

func TestCatalog_CacheKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	cat := New(&countingFetcher{}, WithCache(NewCache(store)), WithCacheKey("custom"))

	_, err := cat.Load(ctx)
	require.NoError(t, err)

	_, err = store.Get(ctx, "custom")
	assert.NoError(t, err)
	_, err = store.Get(ctx, DefaultCacheKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_Refresh(t *testing.T) {
	ctx := context.Background()
	fetcher := &countingFetcher{}
	cat := New(fetcher, WithCache(NewCache(NewMemoryStore())))

	_, err := cat.Load(ctx)
	require.NoError(t, err)
	_, err = cat.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}

func TestCatalog_FetchError(t *testing.T) {
	ctx := context.Background()
	want := &TransportError{Op: "fetching models", URL: DefaultEndpoint, StatusCode: 500, Err: errors.New("boom")}
	cat := New(&countingFetcher{err: want})

	ds, err := cat.Load(ctx)
	assert.Nil(t, ds)
	assert.Same(t, want, err, "fetch errors are returned unchanged")
}

func TestCatalog_NoCache(t *testing.T) {
	ctx := context.Background()
	fetcher := &countingFetcher{}
	cat := New(fetcher)

	_, err := cat.Load(ctx)
	require.NoError(t, err)
	_, err = cat.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}

func TestCatalog_StoreFailure(t *testing.T) {
	ctx := context.Background()
	cat := New(&countingFetcher{}, WithCache(NewCache(failingStore{err: errors.New("read-only")})))

	ds, err := cat.Load(ctx)
	require.NoError(t, err, "cache failures never reach the caller")
	assert.Equal(t, 2, ds.Len())

	ds, err = cat.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
}
