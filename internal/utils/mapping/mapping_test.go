package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestUserMapping_NullableFields(t *testing.T) {
	otp := "123456"
	expiry := time.Date(2024, 1, 1, 0, 10, 0, 0, time.UTC)
	d := domain.User{
		UserID:       "u-1",
		Email:        "a@b.co",
		PasswordHash: "hash",
		AuthProvider: domain.ProviderLocal,
		OTP:          &otp,
		OTPExpiry:    &expiry,
	}

	m := ToModelUser(d)
	assert.True(t, m.PasswordHash.Valid)
	assert.True(t, m.OTP.Valid)
	assert.False(t, m.ResetTokenHash.Valid)
	assert.False(t, m.ProviderUserID.Valid)

	back := ToDomainUser(m)
	assert.Equal(t, d, back)
}

func TestUserMapping_OAuthUserHasNoPassword(t *testing.T) {
	sub := "google-sub"
	m := ToModelUser(domain.User{UserID: "u-2", AuthProvider: domain.ProviderGoogle, ProviderUserID: &sub})

	assert.False(t, m.PasswordHash.Valid)
	assert.Equal(t, "google", m.AuthProvider)
	assert.Equal(t, "", ToDomainUser(m).PasswordHash)
}
