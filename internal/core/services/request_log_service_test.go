package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRequestLogService_RecordFillsDefaults(t *testing.T) {
	repo := new(MockRequestLogRepository)
	repo.On("SaveRequestLog", mock.Anything, mock.MatchedBy(func(e domain.RequestLog) bool {
		return e.ID != "" && !e.CreatedAt.IsZero() && e.Method == "POST" && e.StatusCode == 201
	})).Return(nil).Once()

	svc := services.NewRequestLogService(repo)
	svc.Record(context.Background(), domain.RequestLog{Method: "POST", URL: "/api/currency/convert", StatusCode: 201})
	svc.Wait()

	repo.AssertExpectations(t)
}

func TestRequestLogService_ErrorIsSwallowed(t *testing.T) {
	repo := new(MockRequestLogRepository)
	repo.On("SaveRequestLog", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	ctx, cancel := context.WithCancel(context.Background())
	svc := services.NewRequestLogService(repo)
	svc.Record(ctx, domain.RequestLog{Method: "GET", URL: "/api/currency/list"})
	cancel()
	svc.Wait()

	repo.AssertExpectations(t)
}
