package domain

import (
	"sort"
	"time"
)

// DateLayout is the calendar date format used by the rate provider and the API.
const DateLayout = "2006-01-02"

// CurrencyInfo is the provider's metadata for one currency.
type CurrencyInfo struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	SymbolNative  string  `json:"symbol_native"`
	DecimalDigits int     `json:"decimal_digits"`
	Rounding      float64 `json:"rounding"`
	Code          string  `json:"code"`
	NamePlural    string  `json:"name_plural"`
	Type          string  `json:"type,omitempty"`
}

// CurrencyInfoTable maps currency code to its metadata.
type CurrencyInfoTable map[string]CurrencyInfo

// RateTable maps currency code to the amount of that currency one unit of the base buys.
type RateTable map[string]float64

// Filter returns a table holding only the requested codes present in t.
// An empty codes slice returns t unchanged.
func (t RateTable) Filter(codes []string) RateTable {
	if len(codes) == 0 {
		return t
	}
	filtered := make(RateTable, len(codes))
	for _, code := range codes {
		if rate, ok := t[code]; ok {
			filtered[code] = rate
		}
	}
	return filtered
}

// TimeSeries maps a YYYY-MM-DD date to the rate table observed on that date.
type TimeSeries map[string]RateTable

// Dates returns the series keys in ascending order.
func (s TimeSeries) Dates() []string {
	dates := make([]string, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// QuotaSnapshot is the last monthly allowance reported by the rate provider.
type QuotaSnapshot struct {
	MonthlyLimit int `json:"monthlyLimit"`
	Remaining    int `json:"remaining"`
}

// RatesSnapshot is a rate table together with where it came from.
type RatesSnapshot struct {
	Base      string
	Date      string // empty for latest rates
	Rates     RateTable
	FetchedAt time.Time
	Stale     bool
}

// ConversionResult is computed per request and never cached.
type ConversionResult struct {
	FromCurrency    string
	ToCurrency      string
	Amount          float64
	ConvertedAmount float64
	ExchangeRate    float64
	Date            string
	Quota           *QuotaSnapshot
	Stale           bool
	Timestamp       time.Time
}
