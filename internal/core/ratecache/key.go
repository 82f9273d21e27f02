package ratecache

import (
	"strings"
	"time"
)

// Kind identifies which provider operation a cache entry came from.
type Kind string

const (
	KindCurrencies Kind = "currencies"
	KindLatest     Kind = "latest"
	KindHistorical Kind = "historical"
)

const (
	CurrenciesTTL = 24 * time.Hour
	LatestTTL     = 5 * time.Minute
	HistoricalTTL = 24 * time.Hour
)

// TTL returns the freshness window for a kind.
func (k Kind) TTL() time.Duration {
	switch k {
	case KindLatest:
		return LatestTTL
	case KindHistorical:
		return HistoricalTTL
	default:
		return CurrenciesTTL
	}
}

// Key addresses one cached provider response.
type Key struct {
	Kind Kind
	Base string
	Date string
}

func CurrenciesKey() Key {
	return Key{Kind: KindCurrencies}
}

func LatestKey(base string) Key {
	return Key{Kind: KindLatest, Base: strings.ToUpper(base)}
}

func HistoricalKey(date, base string) Key {
	return Key{Kind: KindHistorical, Base: strings.ToUpper(base), Date: date}
}

// String renders the key deterministically, e.g. "historical:USD:2024-01-01".
func (k Key) String() string {
	switch k.Kind {
	case KindCurrencies:
		return string(KindCurrencies)
	case KindHistorical:
		return string(k.Kind) + ":" + k.Base + ":" + k.Date
	default:
		return string(k.Kind) + ":" + k.Base
	}
}
