package ports

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// RateProvider is the upstream exchange-rate source.
// Failures wrap apperrors.ErrUpstreamUnavailable or apperrors.ErrUpstreamFormat.
type RateProvider interface {
	Currencies(ctx context.Context) (domain.CurrencyInfoTable, error)
	Latest(ctx context.Context, base string) (domain.RateTable, error)
	Historical(ctx context.Context, date, base string) (domain.RateTable, error)
}

// Mailer delivers account emails.
type Mailer interface {
	SendOTP(ctx context.Context, to, name, otp string) error
	SendPasswordReset(ctx context.Context, to, name, resetToken string) error
}

// EventSink receives product analytics events.
type EventSink interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}
