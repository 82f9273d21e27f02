package quota

import (
	"net/http"
	"sync"
	"testing"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func quotaHeaders(limit, remaining string) http.Header {
	h := http.Header{}
	if limit != "" {
		h.Set(HeaderMonthlyLimit, limit)
	}
	if remaining != "" {
		h.Set(HeaderMonthlyRemaining, remaining)
	}
	return h
}

func TestTracker_EmptyUntilRecorded(t *testing.T) {
	tracker := NewTracker()

	_, ok := tracker.Current()

	assert.False(t, ok)
}

func TestTracker_RecordsBothHeaders(t *testing.T) {
	tracker := NewTracker()

	assert.True(t, tracker.RecordFromResponseHeaders(quotaHeaders("5000", "4950")))

	snap, ok := tracker.Current()
	assert.True(t, ok)
	assert.Equal(t, domain.QuotaSnapshot{MonthlyLimit: 5000, Remaining: 4950}, snap)
}

func TestTracker_MissingOrMalformedHeadersKeepPrevious(t *testing.T) {
	tracker := NewTracker()
	tracker.RecordFromResponseHeaders(quotaHeaders("5000", "4950"))

	cases := map[string]http.Header{
		"no headers":        http.Header{},
		"limit only":        quotaHeaders("5000", ""),
		"remaining only":    quotaHeaders("", "10"),
		"non numeric":       quotaHeaders("lots", "4949"),
		"fractional":        quotaHeaders("5000", "49.5"),
		"whitespace values": quotaHeaders(" ", " "),
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			assert.False(t, tracker.RecordFromResponseHeaders(h))
			snap, ok := tracker.Current()
			assert.True(t, ok)
			assert.Equal(t, domain.QuotaSnapshot{MonthlyLimit: 5000, Remaining: 4950}, snap)
		})
	}
}

func TestTracker_ReplacesWholesale(t *testing.T) {
	tracker := NewTracker()
	tracker.RecordFromResponseHeaders(quotaHeaders("5000", "4950"))
	tracker.RecordFromResponseHeaders(quotaHeaders("300", "12"))

	snap, _ := tracker.Current()

	assert.Equal(t, domain.QuotaSnapshot{MonthlyLimit: 300, Remaining: 12}, snap)
}

func TestTracker_ConcurrentRecord(t *testing.T) {
	tracker := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.RecordFromResponseHeaders(quotaHeaders("5000", "4000"))
			_, _ = tracker.Current()
		}()
	}
	wg.Wait()

	snap, ok := tracker.Current()
	assert.True(t, ok)
	assert.Equal(t, 4000, snap.Remaining)
}
