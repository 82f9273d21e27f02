package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionHistory is a row of the conversion_history table.
type ConversionHistory struct {
	ID              string          `db:"id"`
	FromCurrency    string          `db:"from_currency"`
	ToCurrency      string          `db:"to_currency"`
	Amount          decimal.Decimal `db:"amount"`           // NUMERIC(18,6)
	ConvertedAmount decimal.Decimal `db:"converted_amount"` // NUMERIC(18,6)
	ExchangeRate    decimal.Decimal `db:"exchange_rate"`    // NUMERIC(18,10)
	HistoricalDate  *string         `db:"historical_date"`
	UserID          *string         `db:"user_id"`
	GuestID         *string         `db:"guest_id"`
	CreatedAt       time.Time       `db:"created_at"`
}
