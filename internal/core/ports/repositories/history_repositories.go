package repositories

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// ConversionHistoryReader reads one identity's partition of conversion history.
type ConversionHistoryReader interface {
	// ListConversions returns records newest first together with the partition's total size.
	ListConversions(ctx context.Context, identity domain.Identity, limit, offset int) (domain.Page[domain.ConversionRecord], error)
}

// ConversionHistoryWriter mutates conversion history.
type ConversionHistoryWriter interface {
	SaveConversion(ctx context.Context, record domain.ConversionRecord) error

	// DeleteConversions removes every record in identity's partition and returns the count removed.
	DeleteConversions(ctx context.Context, identity domain.Identity) (int64, error)
}

type ConversionHistoryRepositoryFacade interface {
	ConversionHistoryReader
	ConversionHistoryWriter
}
