package repositories

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// UserReader defines read operations for user data.
// Lookups return apperrors.ErrNotFound when no row matches.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by case-insensitive email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByResetToken retrieves the user holding a password reset token.
	FindUserByResetToken(ctx context.Context, token string) (*domain.User, error)

	// FindUserByProviderID retrieves a user linked to an external identity provider.
	FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate if the email is taken.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser overwrites credentials, verification and token fields.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
