package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	"github.com/SscSPs/currency_converter/internal/models"
	"github.com/SscSPs/currency_converter/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const userColumns = `user_id, email, name, password_hash, is_email_verified, auth_provider, provider_user_id,
        otp, otp_expiry, reset_token_hash, reset_token_expiry, created_at, last_updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db DBTX) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Email, m.Name, m.PasswordHash, m.IsEmailVerified, m.AuthProvider, m.ProviderUserID,
		m.OTP, m.OTPExpiry, m.ResetTokenHash, m.ResetTokenExpiry, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user with email %s", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        UPDATE users SET
            name = $2,
            password_hash = $3,
            is_email_verified = $4,
            provider_user_id = $5,
            otp = $6,
            otp_expiry = $7,
            reset_token_hash = $8,
            reset_token_expiry = $9,
            last_updated_at = $10
        WHERE user_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Name, m.PasswordHash, m.IsEmailVerified, m.ProviderUserID,
		m.OTP, m.OTPExpiry, m.ResetTokenHash, m.ResetTokenExpiry, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", m.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	return r.findOne(ctx, "ID", query, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1);`
	return r.findOne(ctx, "email", query, email)
}

func (r *PgxUserRepository) FindUserByResetToken(ctx context.Context, token string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE reset_token_hash = $1;`
	return r.findOne(ctx, "reset token", query, token)
}

func (r *PgxUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth_provider = $1 AND provider_user_id = $2;`
	return r.findOne(ctx, "provider", query, string(provider), providerUserID)
}

func (r *PgxUserRepository) findOne(ctx context.Context, by, query string, args ...any) (*domain.User, error) {
	var m models.User
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&m.UserID,
		&m.Email,
		&m.Name,
		&m.PasswordHash,
		&m.IsEmailVerified,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.OTP,
		&m.OTPExpiry,
		&m.ResetTokenHash,
		&m.ResetTokenExpiry,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", by, err)
	}

	user := mapping.ToDomainUser(m)
	return &user, nil
}
