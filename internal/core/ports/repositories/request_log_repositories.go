package repositories

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// RequestLogWriter persists request audit rows.
type RequestLogWriter interface {
	SaveRequestLog(ctx context.Context, entry domain.RequestLog) error
}
