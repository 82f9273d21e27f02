package domain

import "time"

// AuthProvider records how an account was created.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents a user of the application in the domain.
type User struct {
	UserID          string       `json:"userID"`
	Email           string       `json:"email"`
	Name            string       `json:"name"`
	PasswordHash    string       `json:"-"`
	IsEmailVerified bool         `json:"isEmailVerified"`
	AuthProvider    AuthProvider `json:"authProvider"`
	ProviderUserID  *string      `json:"-"`

	OTP              *string    `json:"-"`
	OTPExpiry        *time.Time `json:"-"`
	ResetToken       *string    `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	AuditFields
}

// OTPValid reports whether code matches the stored OTP and has not expired at now.
func (u *User) OTPValid(code string, now time.Time) (matches bool, expired bool) {
	if u.OTP == nil || *u.OTP != code {
		return false, false
	}
	if u.OTPExpiry != nil && now.After(*u.OTPExpiry) {
		return true, true
	}
	return true, false
}
