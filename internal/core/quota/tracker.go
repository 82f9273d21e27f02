package quota

import (
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// Response headers carrying the provider's monthly allowance.
const (
	HeaderMonthlyLimit     = "X-RateLimit-Limit-Quota-Month"
	HeaderMonthlyRemaining = "X-RateLimit-Remaining-Quota-Month"
)

// Parse extracts a snapshot from response headers. It reports false when
// either header is missing or not an integer.
func Parse(h http.Header) (domain.QuotaSnapshot, bool) {
	limit, ok := headerInt(h, HeaderMonthlyLimit)
	if !ok {
		return domain.QuotaSnapshot{}, false
	}
	remaining, ok := headerInt(h, HeaderMonthlyRemaining)
	if !ok {
		return domain.QuotaSnapshot{}, false
	}
	return domain.QuotaSnapshot{MonthlyLimit: limit, Remaining: remaining}, true
}

func headerInt(h http.Header, name string) (int, bool) {
	raw := strings.TrimSpace(h.Get(name))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Tracker holds the last snapshot observed across the whole process.
// The quota is advisory; nothing here enforces it.
type Tracker struct {
	snapshot atomic.Pointer[domain.QuotaSnapshot]
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// RecordFromResponseHeaders replaces the held snapshot when h carries both
// quota headers. Otherwise the previous snapshot is kept.
func (t *Tracker) RecordFromResponseHeaders(h http.Header) bool {
	snap, ok := Parse(h)
	if !ok {
		return false
	}
	t.snapshot.Store(&snap)
	return true
}

// Current returns the last snapshot, if any was ever recorded.
func (t *Tracker) Current() (domain.QuotaSnapshot, bool) {
	snap := t.snapshot.Load()
	if snap == nil {
		return domain.QuotaSnapshot{}, false
	}
	return *snap, true
}
