package ratecache_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/ratecache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_String(t *testing.T) {
	assert.Equal(t, "currencies", ratecache.CurrenciesKey().String())
	assert.Equal(t, "latest:USD", ratecache.LatestKey("usd").String())
	assert.Equal(t, "historical:EUR:2024-01-31", ratecache.HistoricalKey("2024-01-31", "EUR").String())
	assert.Equal(t, ratecache.HistoricalKey("2024-01-31", "eur"), ratecache.HistoricalKey("2024-01-31", "EUR"))
}

func TestKind_TTL(t *testing.T) {
	assert.Equal(t, 24*time.Hour, ratecache.KindCurrencies.TTL())
	assert.Equal(t, 5*time.Minute, ratecache.KindLatest.TTL())
	assert.Equal(t, 24*time.Hour, ratecache.KindHistorical.TTL())
}

func TestLRUStore_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	store, err := ratecache.NewLRUStore(2)
	require.NoError(t, err)

	store.Put(ctx, "a", ratecache.Entry{Payload: []byte("1")})
	store.Put(ctx, "b", ratecache.Entry{Payload: []byte("2")})
	_, _ = store.Get(ctx, "a")
	store.Put(ctx, "c", ratecache.Entry{Payload: []byte("3")})

	_, okA := store.Get(ctx, "a")
	_, okB := store.Get(ctx, "b")
	_, okC := store.Get(ctx, "c")
	assert.True(t, okA)
	assert.False(t, okB, "b was least recently used and should be evicted")
	assert.True(t, okC)
	assert.Equal(t, 2, store.Len())
}

func TestNewLRUStore_RejectsNonPositiveSize(t *testing.T) {
	_, err := ratecache.NewLRUStore(0)
	assert.Error(t, err)
}

func TestTieredStore_BackfillsLocalFromRemote(t *testing.T) {
	ctx := context.Background()
	local, err := ratecache.NewLRUStore(4)
	require.NoError(t, err)
	remote, err := ratecache.NewLRUStore(4)
	require.NoError(t, err)
	tiered := &ratecache.TieredStore{Local: local, Remote: remote}

	fetchedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	remote.Put(ctx, "latest:USD", ratecache.Entry{Payload: []byte(`{"EUR":0.9}`), FetchedAt: fetchedAt})

	entry, ok := tiered.Get(ctx, "latest:USD")
	require.True(t, ok)
	assert.Equal(t, fetchedAt, entry.FetchedAt)

	backfilled, ok := local.Get(ctx, "latest:USD")
	require.True(t, ok)
	assert.Equal(t, entry, backfilled)

	tiered.Put(ctx, "latest:EUR", ratecache.Entry{Payload: []byte(`{}`)})
	_, okLocal := local.Get(ctx, "latest:EUR")
	_, okRemote := remote.Get(ctx, "latest:EUR")
	assert.True(t, okLocal)
	assert.True(t, okRemote)
}
