package services

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserOAuthSvc links external identities to local accounts.
type UserOAuthSvc interface {
	// FindOrCreateOAuthUser returns the user linked to providerUserID, linking an
	// existing account with the same email or creating a verified one.
	FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email, name string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserOAuthSvc
}
