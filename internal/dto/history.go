package dto

import (
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListHistoryParams defines query parameters for listing conversion history.
type ListHistoryParams struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=5" binding:"min=1,max=100"`
}

// ConversionHistoryResponse is one persisted conversion.
type ConversionHistoryResponse struct {
	ID              string          `json:"id"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"number"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount" swaggertype:"number"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate" swaggertype:"number"`
	HistoricalDate  *string         `json:"historicalDate,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListHistoryResponse wraps one page of conversion history.
type ListHistoryResponse struct {
	Data  []ConversionHistoryResponse `json:"data"`
	Total int                         `json:"total"`
	Page  int                         `json:"page"`
	Limit int                         `json:"limit"`
}

func ToConversionHistoryResponse(r domain.ConversionRecord) ConversionHistoryResponse {
	return ConversionHistoryResponse{
		ID:              r.ID,
		FromCurrency:    r.FromCurrency,
		ToCurrency:      r.ToCurrency,
		Amount:          r.Amount,
		ConvertedAmount: r.ConvertedAmount,
		ExchangeRate:    r.ExchangeRate,
		HistoricalDate:  r.HistoricalDate,
		CreatedAt:       r.CreatedAt,
	}
}

func ToListHistoryResponse(page domain.Page[domain.ConversionRecord], pageNum, limit int) ListHistoryResponse {
	data := make([]ConversionHistoryResponse, len(page.Items))
	for i, r := range page.Items {
		data[i] = ToConversionHistoryResponse(r)
	}
	return ListHistoryResponse{
		Data:  data,
		Total: page.Total,
		Page:  pageNum,
		Limit: limit,
	}
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
