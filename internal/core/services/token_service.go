package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/SscSPs/currency_converter/internal/utils"
)

// tokenService signs HS256 access tokens for local and Google logins alike.
type tokenService struct {
	secret string
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{
		secret: cfg.JWTSecret,
		issuer: cfg.JWTIssuer,
		ttl:    cfg.JWTExpiryDuration,
		now:    time.Now,
	}
}

// GenerateAccessToken returns a token whose subject is the user id, plus its expiry.
func (s *tokenService) GenerateAccessToken(_ context.Context, user *domain.User) (string, time.Time, error) {
	if user == nil || user.UserID == "" {
		return "", time.Time{}, fmt.Errorf("cannot sign token without a user id")
	}
	expiresAt := s.now().Add(s.ttl)
	token, err := utils.GenerateJWT(user.UserID, user.Email, s.secret, s.ttl, s.issuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token for user %s: %w", user.UserID, err)
	}
	return token, expiresAt, nil
}
