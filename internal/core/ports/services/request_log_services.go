package services

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// RequestLogSvc records one row per handled API request.
type RequestLogSvc interface {
	// Record persists entry in the background. Failures are logged only.
	Record(ctx context.Context, entry domain.RequestLog)

	// Wait blocks until pending writes finish.
	Wait()
}
