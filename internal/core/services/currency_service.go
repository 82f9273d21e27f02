package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/core/ports"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/core/ratecache"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBaseCurrency is used when a request names no base.
	DefaultBaseCurrency = "USD"

	maxSeriesDays    = 30
	seriesSamples    = 10
	seriesFetchLimit = 4
)

var dateValidator = validator.New()

// QuotaReader exposes the last provider quota observed.
type QuotaReader interface {
	Current() (domain.QuotaSnapshot, bool)
}

type currencyService struct {
	BaseService
	provider ports.RateProvider
	cache    *ratecache.Cache
	quota    QuotaReader
	now      func() time.Time
}

// CurrencyServiceOption configures optional dependencies.
type CurrencyServiceOption func(*currencyService)

// WithCurrencyClock overrides the clock used for date validation and result timestamps.
func WithCurrencyClock(now func() time.Time) CurrencyServiceOption {
	return func(s *currencyService) { s.now = now }
}

// NewCurrencyService creates the rate orchestrator over provider, reading through cache.
func NewCurrencyService(provider ports.RateProvider, cache *ratecache.Cache, quota QuotaReader, opts ...CurrencyServiceOption) portssvc.CurrencySvcFacade {
	s := &currencyService{
		provider: provider,
		cache:    cache,
		quota:    quota,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *currencyService) ListCurrencies(ctx context.Context) (domain.CurrencyInfoTable, error) {
	res, err := fetchRates(ctx, s, ratecache.CurrenciesKey(), s.provider.Currencies)
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

func (s *currencyService) LatestRates(ctx context.Context, base string) (*domain.RatesSnapshot, error) {
	base = normalizeCode(base)
	res, err := fetchRates(ctx, s, ratecache.LatestKey(base), func(ctx context.Context) (domain.RateTable, error) {
		return s.provider.Latest(ctx, base)
	})
	if err != nil {
		return nil, err
	}
	return &domain.RatesSnapshot{
		Base:      base,
		Rates:     res.Value,
		FetchedAt: res.FetchedAt,
		Stale:     res.Stale(),
	}, nil
}

func (s *currencyService) HistoricalRates(ctx context.Context, date, base string) (*domain.RatesSnapshot, error) {
	if err := s.validatePastDate(date); err != nil {
		return nil, err
	}
	base = normalizeCode(base)
	res, err := fetchRates(ctx, s, ratecache.HistoricalKey(date, base), func(ctx context.Context) (domain.RateTable, error) {
		return s.provider.Historical(ctx, date, base)
	})
	if err != nil {
		return nil, err
	}
	return &domain.RatesSnapshot{
		Base:      base,
		Date:      date,
		Rates:     res.Value,
		FetchedAt: res.FetchedAt,
		Stale:     res.Stale(),
	}, nil
}

func (s *currencyService) Convert(ctx context.Context, from, to string, amount float64, date string) (*domain.ConversionResult, error) {
	from = normalizeCode(from)
	to = strings.ToUpper(strings.TrimSpace(to))

	var (
		snap *domain.RatesSnapshot
		err  error
	)
	if date != "" {
		snap, err = s.HistoricalRates(ctx, date, from)
	} else {
		snap, err = s.LatestRates(ctx, from)
	}
	if err != nil {
		return nil, err
	}

	rate, ok := snap.Rates[to]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, to)
	}

	result := &domain.ConversionResult{
		FromCurrency:    from,
		ToCurrency:      to,
		Amount:          amount,
		ConvertedAmount: amount * rate,
		ExchangeRate:    rate,
		Date:            date,
		Stale:           snap.Stale,
		Timestamp:       s.now().UTC(),
	}
	if q, ok := s.CurrentQuota(); ok {
		result.Quota = &q
	}
	return result, nil
}

func (s *currencyService) TimeSeries(ctx context.Context, start, end, base string, currencies []string) (domain.TimeSeries, error) {
	startDate, err := parseDate("start_date", start)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate("end_date", end)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", apperrors.ErrValidation)
	}

	codes := make([]string, 0, len(currencies))
	for _, c := range currencies {
		if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
			codes = append(codes, c)
		}
	}

	dates := sampleDates(startDate, endDate)
	series := make(domain.TimeSeries, len(dates))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(seriesFetchLimit)
	for _, date := range dates {
		g.Go(func() error {
			snap, err := s.HistoricalRates(ctx, date, base)
			if err != nil {
				s.LogDebug(ctx, "Skipping time series date", slog.String("date", date), slog.String("error", err.Error()))
				return nil
			}
			mu.Lock()
			series[date] = snap.Rates.Filter(codes)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return series, nil
}

func (s *currencyService) CurrentQuota() (domain.QuotaSnapshot, bool) {
	if s.quota == nil {
		return domain.QuotaSnapshot{}, false
	}
	return s.quota.Current()
}

// validatePastDate accepts YYYY-MM-DD dates no later than today (UTC).
func (s *currencyService) validatePastDate(date string) error {
	if _, err := parseDate("date", date); err != nil {
		return err
	}
	if date > s.now().UTC().Format(domain.DateLayout) {
		return fmt.Errorf("%w: date %s is in the future", apperrors.ErrValidation, date)
	}
	return nil
}

// fetchRates reads key through the cache and logs how upstream failures were handled.
func fetchRates[T any](ctx context.Context, s *currencyService, key ratecache.Key, fetch func(context.Context) (T, error)) (ratecache.Result[T], error) {
	res, err := ratecache.Fetch(ctx, s.cache, key, fetch)
	if err != nil {
		s.reportUpstreamError(ctx, key, err, false)
		return res, err
	}
	if res.Cause != nil {
		s.reportUpstreamError(ctx, key, res.Cause, res.Stale())
	}
	return res, nil
}

func (s *currencyService) reportUpstreamError(ctx context.Context, key ratecache.Key, err error, servedStale bool) {
	attrs := []any{slog.String("cache_key", key.String())}
	if servedStale {
		attrs = append(attrs, slog.String("cache_outcome", ratecache.OutcomeStale.String()))
	}
	if errors.Is(err, apperrors.ErrUpstreamFormat) {
		s.LogError(ctx, err, "Rate provider returned an unexpected response", append(attrs, slog.String("error_kind", "format"))...)
		return
	}
	attrs = append(attrs, slog.String("error_kind", "unavailable"), slog.String("error", err.Error()))
	if servedStale {
		s.LogWarn(ctx, "Rate provider unavailable, serving stale rates", attrs...)
		return
	}
	s.LogWarn(ctx, "Rate provider unavailable", attrs...)
}

// sampleDates picks dates from start, at most maxSeriesDays in, with a stride
// giving roughly seriesSamples points. end is always the last element.
func sampleDates(start, end time.Time) []string {
	days := int(end.Sub(start).Hours() / 24)
	span := min(days, maxSeriesDays)
	step := max(1, days/seriesSamples)

	endKey := end.Format(domain.DateLayout)
	dates := make([]string, 0, span/step+2)
	for i := 0; i <= span; i += step {
		dates = append(dates, start.AddDate(0, 0, i).Format(domain.DateLayout))
	}
	if dates[len(dates)-1] != endKey {
		dates = append(dates, endKey)
	}
	return dates
}

func parseDate(field, value string) (time.Time, error) {
	if err := dateValidator.Var(value, "required,datetime="+domain.DateLayout); err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a valid YYYY-MM-DD date", apperrors.ErrValidation, field)
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a valid YYYY-MM-DD date", apperrors.ErrValidation, field)
	}
	return t, nil
}

func normalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultBaseCurrency
	}
	return code
}
