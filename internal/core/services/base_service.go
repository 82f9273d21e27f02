package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/currency_converter/internal/middleware"
)

// BaseService gives services the request-scoped logger carried in ctx.
type BaseService struct{}

// GetLogger returns the logger attached by the logging middleware, or slog.Default.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs err under msg with any extra attributes.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, attrs ...any) {
	s.GetLogger(ctx).With(slog.String("error", err.Error())).Error(msg, attrs...)
}

func (s *BaseService) LogWarn(ctx context.Context, msg string, attrs ...any) {
	s.GetLogger(ctx).Warn(msg, attrs...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, attrs ...any) {
	s.GetLogger(ctx).Info(msg, attrs...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, attrs ...any) {
	s.GetLogger(ctx).Debug(msg, attrs...)
}
