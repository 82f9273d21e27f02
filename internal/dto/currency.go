package dto

import (
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// ConvertRequest is the body of POST /currency/convert.
type ConvertRequest struct {
	FromCurrency string   `json:"fromCurrency" binding:"required,len=3,alpha" example:"USD"`
	ToCurrency   string   `json:"toCurrency" binding:"required,len=3,alpha" example:"EUR"`
	Amount       *float64 `json:"amount" binding:"required,gte=0" example:"100"`
	Date         string   `json:"date,omitempty" example:"2025-12-07"` // YYYY-MM-DD, optional
	GuestID      string   `json:"guestId,omitempty" binding:"omitempty,max=128"`
}

// ConversionResponse is the result of a conversion.
type ConversionResponse struct {
	FromCurrency    string                `json:"fromCurrency" example:"USD"`
	ToCurrency      string                `json:"toCurrency" example:"EUR"`
	Amount          float64               `json:"amount" example:"100"`
	ConvertedAmount float64               `json:"convertedAmount" example:"92"`
	ExchangeRate    float64               `json:"exchangeRate" example:"0.92"`
	Date            string                `json:"date,omitempty"`
	Quota           *domain.QuotaSnapshot `json:"quota,omitempty"`
	Stale           bool                  `json:"stale,omitempty"`
	Timestamp       time.Time             `json:"timestamp"`
}

func ToConversionResponse(r *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		FromCurrency:    r.FromCurrency,
		ToCurrency:      r.ToCurrency,
		Amount:          r.Amount,
		ConvertedAmount: r.ConvertedAmount,
		ExchangeRate:    r.ExchangeRate,
		Date:            r.Date,
		Quota:           r.Quota,
		Stale:           r.Stale,
		Timestamp:       r.Timestamp,
	}
}

// RatesResponse is returned by the latest and historical rate endpoints.
type RatesResponse struct {
	Base      string           `json:"base" example:"USD"`
	Date      string           `json:"date,omitempty"`
	Rates     domain.RateTable `json:"rates"`
	Timestamp time.Time        `json:"timestamp"`
	Stale     bool             `json:"stale,omitempty"`
}

func ToRatesResponse(s *domain.RatesSnapshot) RatesResponse {
	return RatesResponse{
		Base:      s.Base,
		Date:      s.Date,
		Rates:     s.Rates,
		Timestamp: s.FetchedAt,
		Stale:     s.Stale,
	}
}

// RatesQuery binds ?base= for the latest rates endpoint.
type RatesQuery struct {
	Base string `form:"base" binding:"omitempty,len=3,alpha"`
}

// HistoricalRatesQuery binds ?date=&base=.
type HistoricalRatesQuery struct {
	Date string `form:"date" binding:"required"`
	Base string `form:"base" binding:"omitempty,len=3,alpha"`
}

// TimeSeriesQuery binds ?start_date=&end_date=&base=&currencies=.
type TimeSeriesQuery struct {
	StartDate  string `form:"start_date" binding:"required"`
	EndDate    string `form:"end_date" binding:"required"`
	Base       string `form:"base" binding:"omitempty,len=3,alpha"`
	Currencies string `form:"currencies"` // comma separated
}
