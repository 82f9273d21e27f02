package ratecache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Entry is an encoded provider response stamped with its fetch time.
type Entry struct {
	Payload   []byte
	FetchedAt time.Time
}

// IsFresh reports now - FetchedAt < ttl.
func (e Entry) IsFresh(ttl time.Duration, now time.Time) bool {
	return now.Sub(e.FetchedAt) < ttl
}

// Store is a key/entry map. Put must replace an entry atomically.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool)
	Put(ctx context.Context, key string, entry Entry)
}

// LRUStore is an in-process Store bounded by entry count.
type LRUStore struct {
	entries *lru.Cache[string, Entry]
}

// NewLRUStore creates a store holding at most maxEntries entries.
func NewLRUStore(maxEntries int) (*LRUStore, error) {
	entries, err := lru.New[string, Entry](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru store: %w", err)
	}
	return &LRUStore{entries: entries}, nil
}

func (s *LRUStore) Get(_ context.Context, key string) (Entry, bool) {
	return s.entries.Get(key)
}

func (s *LRUStore) Put(_ context.Context, key string, entry Entry) {
	s.entries.Add(key, entry)
}

// Len returns the number of entries held.
func (s *LRUStore) Len() int {
	return s.entries.Len()
}

// TieredStore reads from Local first and falls back to Remote, backfilling Local on a remote hit.
// Writes go to both tiers.
type TieredStore struct {
	Local  Store
	Remote Store
}

func (s *TieredStore) Get(ctx context.Context, key string) (Entry, bool) {
	if entry, ok := s.Local.Get(ctx, key); ok {
		return entry, true
	}
	entry, ok := s.Remote.Get(ctx, key)
	if ok {
		s.Local.Put(ctx, key, entry)
	}
	return entry, ok
}

func (s *TieredStore) Put(ctx context.Context, key string, entry Entry) {
	s.Local.Put(ctx, key, entry)
	s.Remote.Put(ctx, key, entry)
}
