package ratecache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"
)

// Outcome tells a caller which path produced a value.
type Outcome int

const (
	// OutcomeFresh means the value was served from an entry inside its TTL.
	OutcomeFresh Outcome = iota + 1
	// OutcomeFetched means the value came from a live upstream call.
	OutcomeFetched
	// OutcomeStale means the upstream call failed and an expired entry was served instead.
	OutcomeStale
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFresh:
		return "fresh"
	case OutcomeFetched:
		return "fetched"
	case OutcomeStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Observer receives one call per Fetch describing how it was served.
type Observer interface {
	ObserveCacheOutcome(kind, outcome string)
	ObserveCacheFailure(kind string)
}

// Cache is a read-through cache over provider responses with stale-on-error fallback.
type Cache struct {
	store    Store
	now      func() time.Time
	group    singleflight.Group
	observer Observer
	logger   *slog.Logger
}

type Option func(*Cache)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func WithObserver(o Observer) Option {
	return func(c *Cache) { c.observer = o }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) { c.logger = l }
}

func New(store Store, opts ...Option) *Cache {
	c := &Cache{store: store, now: time.Now, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get is a pure lookup.
func (c *Cache) Get(ctx context.Context, key Key) (Entry, bool) {
	return c.store.Get(ctx, key.String())
}

// Put stores payload under key stamped with the current time.
func (c *Cache) Put(ctx context.Context, key Key, payload []byte) {
	c.store.Put(ctx, key.String(), Entry{Payload: payload, FetchedAt: c.now()})
}

// IsFresh reports whether entry is younger than ttl.
func (c *Cache) IsFresh(entry Entry, ttl time.Duration) bool {
	return entry.IsFresh(ttl, c.now())
}

// Result is a successfully served value. Cause holds the masked upstream
// error when Outcome is OutcomeStale.
type Result[T any] struct {
	Value     T
	Outcome   Outcome
	FetchedAt time.Time
	Cause     error
}

// Stale reports whether the value was served through the degraded path.
func (r Result[T]) Stale() bool {
	return r.Outcome == OutcomeStale
}

type fetched[T any] struct {
	value T
	at    time.Time
}

// Fetch serves key from a fresh entry, else calls fetch and stores its result.
// If fetch fails, any entry for key is served as stale. With no entry at all the
// failure is returned wrapped in apperrors.ErrUpstreamUnavailable.
// Concurrent misses for the same key share one fetch, which is not cancelled
// when the caller that started it goes away.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (T, error)) (Result[T], error) {
	k := key.String()
	ttl := key.Kind.TTL()

	if entry, ok := c.store.Get(ctx, k); ok && c.IsFresh(entry, ttl) {
		if v, err := decode[T](entry); err == nil {
			c.observe(key, OutcomeFresh)
			return Result[T]{Value: v, Outcome: OutcomeFresh, FetchedAt: entry.FetchedAt}, nil
		}
	}

	shared, fetchErr, _ := c.group.Do(k, func() (any, error) {
		sharedCtx := context.WithoutCancel(ctx)
		v, err := fetch(sharedCtx)
		if err != nil {
			return nil, err
		}
		at := c.now()
		payload, err := json.Marshal(v)
		if err != nil {
			c.logger.ErrorContext(ctx, "Failed to encode rate cache entry, value not cached",
				slog.String("key", k),
				slog.String("error", err.Error()),
			)
			return fetched[T]{value: v, at: at}, nil
		}
		c.store.Put(sharedCtx, k, Entry{Payload: payload, FetchedAt: at})
		return fetched[T]{value: v, at: at}, nil
	})
	if fetchErr == nil {
		f := shared.(fetched[T])
		c.observe(key, OutcomeFetched)
		return Result[T]{Value: f.value, Outcome: OutcomeFetched, FetchedAt: f.at}, nil
	}

	if entry, ok := c.store.Get(ctx, k); ok {
		if v, err := decode[T](entry); err == nil {
			outcome := OutcomeStale
			if c.IsFresh(entry, ttl) {
				outcome = OutcomeFresh
			}
			c.observe(key, outcome)
			return Result[T]{Value: v, Outcome: outcome, FetchedAt: entry.FetchedAt, Cause: fetchErr}, nil
		}
	}

	if c.observer != nil {
		c.observer.ObserveCacheFailure(string(key.Kind))
	}
	if errors.Is(fetchErr, apperrors.ErrUpstreamUnavailable) {
		return Result[T]{}, fetchErr
	}
	return Result[T]{}, fmt.Errorf("%w: %w", apperrors.ErrUpstreamUnavailable, fetchErr)
}

func decode[T any](entry Entry) (T, error) {
	var v T
	err := json.Unmarshal(entry.Payload, &v)
	return v, err
}

func (c *Cache) observe(key Key, outcome Outcome) {
	if c.observer != nil {
		c.observer.ObserveCacheOutcome(string(key.Kind), outcome.String())
	}
}
