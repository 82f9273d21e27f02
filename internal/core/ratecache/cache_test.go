package ratecache_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/core/ratecache"
	"github.com/stretchr/testify/suite"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recordingObserver struct {
	outcomes []string
	failures []string
}

func (o *recordingObserver) ObserveCacheOutcome(kind, outcome string) {
	o.outcomes = append(o.outcomes, kind+"/"+outcome)
}

func (o *recordingObserver) ObserveCacheFailure(kind string) {
	o.failures = append(o.failures, kind)
}

type CacheTestSuite struct {
	suite.Suite
	clock    *fakeClock
	observer *recordingObserver
	cache    *ratecache.Cache
	calls    int
}

func (suite *CacheTestSuite) SetupTest() {
	store, err := ratecache.NewLRUStore(16)
	suite.Require().NoError(err)
	suite.clock = &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	suite.observer = &recordingObserver{}
	suite.cache = ratecache.New(store, ratecache.WithClock(suite.clock.Now), ratecache.WithObserver(suite.observer))
	suite.calls = 0
}

func (suite *CacheTestSuite) fetchOK(table domain.RateTable) func(context.Context) (domain.RateTable, error) {
	return func(context.Context) (domain.RateTable, error) {
		suite.calls++
		return table, nil
	}
}

func (suite *CacheTestSuite) fetchErr(err error) func(context.Context) (domain.RateTable, error) {
	return func(context.Context) (domain.RateTable, error) {
		suite.calls++
		return nil, err
	}
}

func (suite *CacheTestSuite) TestFetch_WithinTTLCallsUpstreamOnce() {
	ctx := context.Background()
	key := ratecache.LatestKey("USD")
	table := domain.RateTable{"EUR": 0.92}

	first, err := ratecache.Fetch(ctx, suite.cache, key, suite.fetchOK(table))
	suite.Require().NoError(err)
	suite.Equal(ratecache.OutcomeFetched, first.Outcome)

	suite.clock.Advance(4 * time.Minute)
	second, err := ratecache.Fetch(ctx, suite.cache, key, suite.fetchOK(table))
	suite.Require().NoError(err)

	suite.Equal(1, suite.calls)
	suite.Equal(ratecache.OutcomeFresh, second.Outcome)
	suite.Equal(table, second.Value)
	suite.Equal([]string{"latest/fetched", "latest/fresh"}, suite.observer.outcomes)
}

func (suite *CacheTestSuite) TestFetch_AfterTTLCallsUpstreamAgain() {
	ctx := context.Background()
	key := ratecache.LatestKey("USD")

	_, err := ratecache.Fetch(ctx, suite.cache, key, suite.fetchOK(domain.RateTable{"EUR": 0.92}))
	suite.Require().NoError(err)

	suite.clock.Advance(ratecache.LatestTTL + time.Second)
	res, err := ratecache.Fetch(ctx, suite.cache, key, suite.fetchOK(domain.RateTable{"EUR": 0.93}))
	suite.Require().NoError(err)

	suite.Equal(2, suite.calls)
	suite.Equal(ratecache.OutcomeFetched, res.Outcome)
	suite.Equal(0.93, res.Value["EUR"])
}

func (suite *CacheTestSuite) TestFetch_HistoricalKeepsEntryForADay() {
	ctx := context.Background()
	key := ratecache.HistoricalKey("2024-01-01", "usd")

	_, err := ratecache.Fetch(ctx, suite.cache, key, suite.fetchOK(domain.RateTable{"EUR": 0.9}))
	suite.Require().NoError(err)
	suite.clock.Advance(23 * time.Hour)
	_, err = ratecache.Fetch(ctx, suite.cache, key, suite.fetchOK(domain.RateTable{"EUR": 0.9}))
	suite.Require().NoError(err)

	suite.Equal(1, suite.calls)
}

func (suite *CacheTestSuite) TestFetch_FailureServesStaleEntry() {
	ctx := context.Background()
	key := ratecache.LatestKey("USD")
	table := domain.RateTable{"EUR": 0.92}
	upstreamErr := fmt.Errorf("%w: connection refused", apperrors.ErrUpstreamUnavailable)

	_, err := ratecache.Fetch(ctx, suite.cache, key, suite.fetchOK(table))
	suite.Require().NoError(err)

	suite.clock.Advance(72 * time.Hour)
	res, err := ratecache.Fetch(ctx, suite.cache, key, suite.fetchErr(upstreamErr))

	suite.Require().NoError(err)
	suite.True(res.Stale())
	suite.Equal(table, res.Value)
	suite.ErrorIs(res.Cause, apperrors.ErrUpstreamUnavailable)
	suite.Equal(suite.clock.Now().Add(-72*time.Hour), res.FetchedAt)
	suite.Contains(suite.observer.outcomes, "latest/stale")
}

func (suite *CacheTestSuite) TestFetch_FailureWithoutEntryIsUnavailable() {
	ctx := context.Background()

	_, err := ratecache.Fetch(ctx, suite.cache, ratecache.LatestKey("USD"), suite.fetchErr(errors.New("dial tcp: timeout")))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
	suite.Equal([]string{"latest"}, suite.observer.failures)
}

func (suite *CacheTestSuite) TestFetch_FormatErrorIsAlsoUnavailable() {
	ctx := context.Background()
	formatErr := fmt.Errorf("%w: data is not an object", apperrors.ErrUpstreamFormat)

	_, err := ratecache.Fetch(ctx, suite.cache, ratecache.HistoricalKey("2024-01-01", "USD"), suite.fetchErr(formatErr))

	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
	suite.ErrorIs(err, apperrors.ErrUpstreamFormat)
}

func (suite *CacheTestSuite) TestFetch_KeysAreIndependent() {
	ctx := context.Background()

	_, err := ratecache.Fetch(ctx, suite.cache, ratecache.LatestKey("USD"), suite.fetchOK(domain.RateTable{"EUR": 0.92}))
	suite.Require().NoError(err)
	_, err = ratecache.Fetch(ctx, suite.cache, ratecache.LatestKey("EUR"), suite.fetchErr(errors.New("boom")))

	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
	suite.Equal(2, suite.calls)
}

func (suite *CacheTestSuite) TestFetch_ConcurrentMissesShareOneFetch() {
	store, err := ratecache.NewLRUStore(16)
	suite.Require().NoError(err)
	cache := ratecache.New(store)
	key := ratecache.LatestKey("USD")
	table := domain.RateTable{"EUR": 0.92}

	var calls atomic.Int32
	fetch := func(context.Context) (domain.RateTable, error) {
		calls.Add(1)
		time.Sleep(50 * time.Millisecond)
		return table, nil
	}

	const callers = 20
	results := make([]domain.RateTable, callers)
	errs := make([]error, callers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			res, err := ratecache.Fetch(context.Background(), cache, key, fetch)
			results[i], errs[i] = res.Value, err
		}(i)
	}
	close(start)
	wg.Wait()

	suite.Equal(int32(1), calls.Load())
	for i := 0; i < callers; i++ {
		suite.NoError(errs[i])
		suite.Equal(table, results[i])
	}
}

func (suite *CacheTestSuite) TestFetch_SharedFetchIgnoresCallerCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	key := ratecache.LatestKey("USD")
	table := domain.RateTable{"EUR": 0.92}

	res, err := ratecache.Fetch(ctx, suite.cache, key, func(fetchCtx context.Context) (domain.RateTable, error) {
		suite.calls++
		cancel()
		if err := fetchCtx.Err(); err != nil {
			return nil, err
		}
		return table, nil
	})

	suite.Require().NoError(err)
	suite.Equal(ratecache.OutcomeFetched, res.Outcome)
	suite.Equal(table, res.Value)
	_, ok := suite.cache.Get(context.Background(), key)
	suite.True(ok, "fetched value is stored for later callers")
}

type unencodable struct {
	Rate float64
}

func (unencodable) MarshalJSON() ([]byte, error) {
	return nil, errors.New("no json form")
}

func (suite *CacheTestSuite) TestFetch_EncodeFailureIsLoggedAndNotCached() {
	store, err := ratecache.NewLRUStore(16)
	suite.Require().NoError(err)
	var logs bytes.Buffer
	cache := ratecache.New(store,
		ratecache.WithClock(suite.clock.Now),
		ratecache.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)
	key := ratecache.LatestKey("USD")
	fetch := func(context.Context) (unencodable, error) {
		suite.calls++
		return unencodable{Rate: 0.92}, nil
	}

	res, err := ratecache.Fetch(context.Background(), cache, key, fetch)
	suite.Require().NoError(err)
	suite.Equal(0.92, res.Value.Rate)
	suite.Contains(logs.String(), "Failed to encode rate cache entry")
	suite.Contains(logs.String(), "latest:USD")

	_, err = ratecache.Fetch(context.Background(), cache, key, fetch)
	suite.Require().NoError(err)
	suite.Equal(2, suite.calls)
	_, ok := cache.Get(context.Background(), key)
	suite.False(ok)
}

func (suite *CacheTestSuite) TestGetPutIsFresh() {
	ctx := context.Background()
	key := ratecache.CurrenciesKey()

	_, ok := suite.cache.Get(ctx, key)
	suite.False(ok)

	suite.cache.Put(ctx, key, []byte(`{"USD":{"code":"USD"}}`))
	entry, ok := suite.cache.Get(ctx, key)
	suite.Require().True(ok)
	suite.True(suite.cache.IsFresh(entry, ratecache.CurrenciesTTL))

	suite.clock.Advance(ratecache.CurrenciesTTL)
	suite.False(suite.cache.IsFresh(entry, ratecache.CurrenciesTTL))
}

func TestCacheTestSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}
