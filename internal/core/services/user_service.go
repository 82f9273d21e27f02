package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderID(ctx, provider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find user by provider in service: %w", err)
	}

	email = normalizeEmail(email)
	now := time.Now().UTC()

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		// Link the external identity to the account registered with the same email.
		existing.ProviderUserID = &providerUserID
		existing.IsEmailVerified = true
		existing.LastUpdatedAt = now
		if err := s.userRepo.UpdateUser(ctx, *existing); err != nil {
			return nil, fmt.Errorf("failed to link oauth user in service: %w", err)
		}
		s.LogInfo(ctx, "Linked external identity to existing user",
			slog.String("user_id", existing.UserID), slog.String("provider", string(provider)))
		return existing, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to find user by email in service: %w", err)
	}

	user = &domain.User{
		UserID:          uuid.NewString(),
		Email:           email,
		Name:            name,
		IsEmailVerified: true,
		AuthProvider:    provider,
		ProviderUserID:  &providerUserID,
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.userRepo.SaveUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to create oauth user in service: %w", err)
	}
	s.LogInfo(ctx, "Created user from external identity",
		slog.String("user_id", user.UserID), slog.String("provider", string(provider)))
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
