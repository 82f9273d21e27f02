package services

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// HistorySvcFacade manages the per-identity conversion history.
type HistorySvcFacade interface {
	// RecordConversion persists result for identity. Anonymous callers are skipped.
	RecordConversion(ctx context.Context, identity domain.Identity, result *domain.ConversionResult) error

	// ListHistory returns one page (1-based) of identity's conversions, newest first.
	ListHistory(ctx context.Context, identity domain.Identity, page, limit int) (domain.Page[domain.ConversionRecord], error)

	// ClearHistory deletes every conversion owned by identity.
	ClearHistory(ctx context.Context, identity domain.Identity) (int64, error)
}
