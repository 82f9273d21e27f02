package mapping

import (
	"database/sql"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:           d.UserID,
		Email:            d.Email,
		Name:             d.Name,
		PasswordHash:     sql.NullString{String: d.PasswordHash, Valid: d.PasswordHash != ""},
		IsEmailVerified:  d.IsEmailVerified,
		AuthProvider:     string(d.AuthProvider),
		ProviderUserID:   toNullString(d.ProviderUserID),
		OTP:              toNullString(d.OTP),
		OTPExpiry:        toNullTime(d.OTPExpiry),
		ResetTokenHash:   toNullString(d.ResetToken),
		ResetTokenExpiry: toNullTime(d.ResetTokenExpiry),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:           m.UserID,
		Email:            m.Email,
		Name:             m.Name,
		PasswordHash:     m.PasswordHash.String,
		IsEmailVerified:  m.IsEmailVerified,
		AuthProvider:     domain.AuthProvider(m.AuthProvider),
		ProviderUserID:   fromNullString(m.ProviderUserID),
		OTP:              fromNullString(m.OTP),
		OTPExpiry:        fromNullTime(m.OTPExpiry),
		ResetToken:       fromNullString(m.ResetTokenHash),
		ResetTokenExpiry: fromNullTime(m.ResetTokenExpiry),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
