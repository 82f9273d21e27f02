package services

import (
	"context"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/dto"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// AuthSvcFacade covers email/password registration and recovery.
type AuthSvcFacade interface {
	// Register creates an unverified local account and mails an OTP.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// VerifyOTP marks the account verified.
	VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) error

	// ResendOTP issues a fresh OTP for an unverified account.
	ResendOTP(ctx context.Context, email string) error

	// Login checks credentials and returns an access token.
	Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error)

	// ForgotPassword mails a reset token. Unknown emails succeed silently.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword replaces the password of the account holding token.
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
}

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
