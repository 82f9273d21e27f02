package models

import (
	"database/sql"
)

// User is a row of the users table.
// Local accounts carry a password hash; Google accounts carry a provider user id.
type User struct {
	UserID           string         `db:"user_id"`
	Email            string         `db:"email"`
	Name             string         `db:"name"`
	PasswordHash     sql.NullString `db:"password_hash"`
	IsEmailVerified  bool           `db:"is_email_verified"`
	AuthProvider     string         `db:"auth_provider"`
	ProviderUserID   sql.NullString `db:"provider_user_id"`
	OTP              sql.NullString `db:"otp"`
	OTPExpiry        sql.NullTime   `db:"otp_expiry"`
	ResetTokenHash   sql.NullString `db:"reset_token_hash"` // SHA256 of the mailed token
	ResetTokenExpiry sql.NullTime   `db:"reset_token_expiry"`
	AuditFields
}
