package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/core/ports"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/google/uuid"
)

const (
	otpTTL        = 10 * time.Minute
	resetTokenTTL = time.Hour
	resetTokenLen = 32
)

type credentialsService struct {
	BaseService
	users  portsrepo.UserRepositoryFacade
	tokens portssvc.TokenSvcFacade
	mailer ports.Mailer
	now    func() time.Time
}

// CredentialsServiceOption configures optional dependencies.
type CredentialsServiceOption func(*credentialsService)

// WithCredentialsClock overrides the clock used for OTP and reset token expiry.
func WithCredentialsClock(now func() time.Time) CredentialsServiceOption {
	return func(s *credentialsService) { s.now = now }
}

// NewAuthService creates the email/password account service.
func NewAuthService(users portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvcFacade, mailer ports.Mailer, opts ...CredentialsServiceOption) portssvc.AuthSvcFacade {
	s := &credentialsService{users: users, tokens: tokens, mailer: mailer, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *credentialsService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := normalizeEmail(req.Email)

	_, err := s.users.FindUserByEmail(ctx, email)
	if err == nil {
		return nil, fmt.Errorf("%w: email already exists", apperrors.ErrDuplicate)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email in service: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	otp, err := utils.GenerateOTP()
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	expiry := now.Add(otpTTL)
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		OTP:          &otp,
		OTPExpiry:    &expiry,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.users.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	s.LogInfo(ctx, "Registered user", slog.String("user_id", user.UserID))
	s.deliverOTP(ctx, &user, otp)
	return &user, nil
}

func (s *credentialsService) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) error {
	user, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	matches, expired := user.OTPValid(req.OTP, s.now())
	if !matches {
		return fmt.Errorf("%w: invalid OTP", apperrors.ErrValidation)
	}
	if expired {
		return fmt.Errorf("%w: OTP has expired", apperrors.ErrExpired)
	}

	user.IsEmailVerified = true
	user.OTP = nil
	user.OTPExpiry = nil
	user.LastUpdatedAt = s.now().UTC()
	if err := s.users.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to verify user in service: %w", err)
	}
	return nil
}

func (s *credentialsService) ResendOTP(ctx context.Context, email string) error {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.IsEmailVerified {
		return fmt.Errorf("%w: email is already verified", apperrors.ErrValidation)
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	now := s.now().UTC()
	expiry := now.Add(otpTTL)
	user.OTP = &otp
	user.OTPExpiry = &expiry
	user.LastUpdatedAt = now
	if err := s.users.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to store OTP in service: %w", err)
	}

	s.deliverOTP(ctx, user, otp)
	return nil
}

func (s *credentialsService) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error) {
	user, err := s.users.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return "", nil, fmt.Errorf("failed to look up user in service: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	if !user.IsEmailVerified {
		return "", nil, fmt.Errorf("%w: please verify your email first", apperrors.ErrEmailNotVerified)
	}

	token, _, err := s.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", nil, err
	}
	return token, user, nil
}

func (s *credentialsService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up user in service: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(resetTokenLen)
	if err != nil {
		return err
	}
	now := s.now().UTC()
	hashed := utils.HashToken(token)
	expiry := now.Add(resetTokenTTL)
	user.ResetToken = &hashed
	user.ResetTokenExpiry = &expiry
	user.LastUpdatedAt = now
	if err := s.users.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to store reset token in service: %w", err)
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, user.Name, token); err != nil {
		s.LogError(ctx, err, "Failed to send password reset email", slog.String("user_id", user.UserID))
	}
	return nil
}

func (s *credentialsService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	user, err := s.users.FindUserByResetToken(ctx, utils.HashToken(req.Token))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: invalid or expired reset token", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to look up reset token in service: %w", err)
	}
	if user.ResetTokenExpiry != nil && s.now().After(*user.ResetTokenExpiry) {
		return fmt.Errorf("%w: reset token has expired", apperrors.ErrExpired)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	user.ResetToken = nil
	user.ResetTokenExpiry = nil
	user.LastUpdatedAt = s.now().UTC()
	if err := s.users.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to reset password in service: %w", err)
	}
	s.LogInfo(ctx, "Password reset", slog.String("user_id", user.UserID))
	return nil
}

// findByEmail maps a missing account to a validation error.
func (s *credentialsService) findByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to look up user in service: %w", err)
	}
	return user, nil
}

func (s *credentialsService) deliverOTP(ctx context.Context, user *domain.User, otp string) {
	if err := s.mailer.SendOTP(ctx, user.Email, user.Name, otp); err != nil {
		s.LogError(ctx, err, "Failed to send OTP email", slog.String("user_id", user.UserID))
	}
}
