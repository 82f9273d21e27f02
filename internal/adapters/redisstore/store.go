package redisstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/ratecache"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "ratecache:"

	// DefaultRetention keeps entries around long after their TTL so stale fallback survives restarts.
	DefaultRetention = 7 * 24 * time.Hour
)

// Client is the subset of redis.Cmdable the store uses.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Store is a ratecache.Store shared between processes through redis.
// Redis errors are logged and treated as misses.
type Store struct {
	client    Client
	retention time.Duration
	logger    *slog.Logger
}

var _ ratecache.Store = (*Store)(nil)

func New(client Client, retention time.Duration, logger *slog.Logger) *Store {
	if retention <= 0 {
		retention = DefaultRetention
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{client: client, retention: retention, logger: logger}
}

type record struct {
	FetchedAt time.Time       `json:"fetchedAt"`
	Payload   json.RawMessage `json:"payload"`
}

func (s *Store) Get(ctx context.Context, key string) (ratecache.Entry, bool) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("Redis rate cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return ratecache.Entry{}, false
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.logger.Warn("Redis rate cache entry is corrupt", slog.String("key", key), slog.String("error", err.Error()))
		return ratecache.Entry{}, false
	}
	return ratecache.Entry{Payload: rec.Payload, FetchedAt: rec.FetchedAt}, true
}

func (s *Store) Put(ctx context.Context, key string, entry ratecache.Entry) {
	raw, err := json.Marshal(record{FetchedAt: entry.FetchedAt, Payload: entry.Payload})
	if err != nil {
		s.logger.Warn("Failed to encode rate cache entry", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := s.client.Set(ctx, keyPrefix+key, raw, s.retention).Err(); err != nil {
		s.logger.Warn("Redis rate cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
