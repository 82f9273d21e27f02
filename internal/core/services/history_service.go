package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/core/ports"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/SscSPs/currency_converter/internal/utils/pagination"
	"github.com/google/uuid"
)

// Fractional digits kept by the history table.
const (
	amountScale = 6
	rateScale   = 10
)

const eventConversionCompleted = "conversion_completed"

// ConversionObserver counts conversions per identity kind.
type ConversionObserver interface {
	ObserveConversion(identityKind string)
}

type historyService struct {
	BaseService
	repo     portsrepo.ConversionHistoryRepositoryFacade
	events   ports.EventSink
	observer ConversionObserver
	now      func() time.Time
}

type HistoryServiceOption func(*historyService)

func WithHistoryEvents(sink ports.EventSink) HistoryServiceOption {
	return func(s *historyService) { s.events = sink }
}

func WithConversionObserver(o ConversionObserver) HistoryServiceOption {
	return func(s *historyService) { s.observer = o }
}

func NewHistoryService(repo portsrepo.ConversionHistoryRepositoryFacade, opts ...HistoryServiceOption) portssvc.HistorySvcFacade {
	s := &historyService{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *historyService) RecordConversion(ctx context.Context, identity domain.Identity, result *domain.ConversionResult) error {
	if s.observer != nil {
		s.observer.ObserveConversion(identity.Kind().String())
	}
	if identity.IsAnonymous() {
		s.LogDebug(ctx, "Skipping history for anonymous conversion")
		return nil
	}

	record := domain.ConversionRecord{
		ID:              uuid.NewString(),
		FromCurrency:    result.FromCurrency,
		ToCurrency:      result.ToCurrency,
		Amount:          utils.ToFixedDecimal(result.Amount, amountScale),
		ConvertedAmount: utils.ToFixedDecimal(result.ConvertedAmount, amountScale),
		ExchangeRate:    utils.ToFixedDecimal(result.ExchangeRate, rateScale),
		CreatedAt:       s.now().UTC(),
	}
	if result.Date != "" {
		date := result.Date
		record.HistoricalDate = &date
	}
	if userID, ok := identity.UserID(); ok {
		record.UserID = &userID
	}
	if guestID, ok := identity.GuestID(); ok {
		record.GuestID = &guestID
	}

	if err := s.repo.SaveConversion(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save conversion", slog.String("identity", identity.String()))
		return fmt.Errorf("failed to save conversion in service: %w", err)
	}

	if s.events != nil {
		s.events.Enqueue(identity.DistinctID(), eventConversionCompleted, map[string]any{
			"from_currency": record.FromCurrency,
			"to_currency":   record.ToCurrency,
			"historical":    record.HistoricalDate != nil,
			"identity_kind": identity.Kind().String(),
		})
	}
	return nil
}

func (s *historyService) ListHistory(ctx context.Context, identity domain.Identity, page, limit int) (domain.Page[domain.ConversionRecord], error) {
	if identity.IsAnonymous() {
		return domain.Page[domain.ConversionRecord]{}, fmt.Errorf("%w: guest id is required", apperrors.ErrValidation)
	}
	_, limit, offset := pagination.Normalize(page, limit)

	result, err := s.repo.ListConversions(ctx, identity, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list conversions", slog.String("identity", identity.String()))
		return domain.Page[domain.ConversionRecord]{}, fmt.Errorf("failed to list conversions in service: %w", err)
	}
	if result.Items == nil {
		result.Items = []domain.ConversionRecord{}
	}
	return result, nil
}

func (s *historyService) ClearHistory(ctx context.Context, identity domain.Identity) (int64, error) {
	if identity.IsAnonymous() {
		return 0, fmt.Errorf("%w: guest id is required", apperrors.ErrValidation)
	}
	deleted, err := s.repo.DeleteConversions(ctx, identity)
	if err != nil {
		s.LogError(ctx, err, "Failed to clear conversions", slog.String("identity", identity.String()))
		return 0, fmt.Errorf("failed to clear conversions in service: %w", err)
	}
	s.LogInfo(ctx, "Cleared conversion history", slog.String("identity", identity.String()), slog.Int64("deleted", deleted))
	return deleted, nil
}
