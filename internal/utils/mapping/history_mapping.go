package mapping

import (
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/models"
)

// ToModelConversion converts a domain ConversionRecord to a model ConversionHistory
func ToModelConversion(d domain.ConversionRecord) models.ConversionHistory {
	return models.ConversionHistory{
		ID:              d.ID,
		FromCurrency:    d.FromCurrency,
		ToCurrency:      d.ToCurrency,
		Amount:          d.Amount,
		ConvertedAmount: d.ConvertedAmount,
		ExchangeRate:    d.ExchangeRate,
		HistoricalDate:  d.HistoricalDate,
		UserID:          d.UserID,
		GuestID:         d.GuestID,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainConversion converts a model ConversionHistory to a domain ConversionRecord
func ToDomainConversion(m models.ConversionHistory) domain.ConversionRecord {
	return domain.ConversionRecord{
		ID:              m.ID,
		FromCurrency:    m.FromCurrency,
		ToCurrency:      m.ToCurrency,
		Amount:          m.Amount,
		ConvertedAmount: m.ConvertedAmount,
		ExchangeRate:    m.ExchangeRate,
		HistoricalDate:  m.HistoricalDate,
		UserID:          m.UserID,
		GuestID:         m.GuestID,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainConversionSlice converts a slice of model rows to domain records
func ToDomainConversionSlice(ms []models.ConversionHistory) []domain.ConversionRecord {
	ds := make([]domain.ConversionRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainConversion(m)
	}
	return ds
}

// ToModelRequestLog converts a domain RequestLog to a model RequestLog
func ToModelRequestLog(d domain.RequestLog) models.RequestLog {
	return models.RequestLog{
		ID:             d.ID,
		Method:         d.Method,
		URL:            d.URL,
		IPAddress:      d.IPAddress,
		UserAgent:      d.UserAgent,
		UserID:         d.UserID,
		GuestID:        d.GuestID,
		RequestBody:    d.RequestBody,
		StatusCode:     d.StatusCode,
		ResponseTimeMs: d.ResponseTimeMs,
		CreatedAt:      d.CreatedAt,
	}
}
