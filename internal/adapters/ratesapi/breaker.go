package ratesapi

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_converter/internal/platform/metrics"
	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	breakerName             = "rate-provider"
	breakerFailureThreshold = 5
	breakerOpenTimeout      = 30 * time.Second
)

// newBreaker opens after consecutive provider failures and probes again after breakerOpenTimeout.
// Caller cancellations and 4xx replies to bad requests do not count as failures.
func newBreaker(logger *slog.Logger, m *metrics.Metrics) *gobreaker.CircuitBreaker[[]byte] {
	m.SetBreakerState(breakerName, stateValue(gobreaker.StateClosed))

	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			var se *StatusError
			return errors.As(err, &se) && se.CallerFault()
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			m.SetBreakerState(name, stateValue(to))
		},
	})
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
