package services

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// CurrencyReaderSvc serves cached provider data.
type CurrencyReaderSvc interface {
	// ListCurrencies returns metadata for every supported currency.
	ListCurrencies(ctx context.Context) (domain.CurrencyInfoTable, error)

	// LatestRates returns today's rates relative to base (USD when empty).
	LatestRates(ctx context.Context, base string) (*domain.RatesSnapshot, error)

	// HistoricalRates returns the rates published on date (YYYY-MM-DD).
	// Returns apperrors.ErrValidation for malformed or future dates.
	HistoricalRates(ctx context.Context, date, base string) (*domain.RatesSnapshot, error)

	// TimeSeries samples at most ten dates between start and end, always including end.
	TimeSeries(ctx context.Context, start, end, base string, currencies []string) (domain.TimeSeries, error)

	// CurrentQuota returns the last quota reported by the provider, if any.
	CurrentQuota() (domain.QuotaSnapshot, bool)
}

// CurrencyConverterSvc converts amounts between currencies.
type CurrencyConverterSvc interface {
	// Convert multiplies amount by the from->to rate, using historical rates when date is set.
	// Returns apperrors.ErrUnsupportedCurrency when to is missing from the rate table.
	Convert(ctx context.Context, from, to string, amount float64, date string) (*domain.ConversionResult, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyConverterSvc
}
