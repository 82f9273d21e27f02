package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/google/uuid"
)

const requestLogWriteTimeout = 5 * time.Second

type requestLogService struct {
	BaseService
	repo portsrepo.RequestLogWriter
	wg   sync.WaitGroup
}

func NewRequestLogService(repo portsrepo.RequestLogWriter) portssvc.RequestLogSvc {
	return &requestLogService{repo: repo}
}

func (s *requestLogService) Record(ctx context.Context, entry domain.RequestLog) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	logger := s.GetLogger(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), requestLogWriteTimeout)
		defer cancel()
		if err := s.repo.SaveRequestLog(writeCtx, entry); err != nil {
			logger.Error("Failed to save request log", slog.String("error", err.Error()), slog.String("url", entry.URL))
		}
	}()
}

func (s *requestLogService) Wait() {
	s.wg.Wait()
}
