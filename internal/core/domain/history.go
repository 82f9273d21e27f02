package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionRecord is one persisted conversion.
type ConversionRecord struct {
	ID              string
	FromCurrency    string
	ToCurrency      string
	Amount          decimal.Decimal
	ConvertedAmount decimal.Decimal
	ExchangeRate    decimal.Decimal
	HistoricalDate  *string
	UserID          *string
	GuestID         *string
	CreatedAt       time.Time
}
