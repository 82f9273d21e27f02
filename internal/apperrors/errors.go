package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrEmailNotVerified indicates a login attempt for an account whose email was never verified.
var ErrEmailNotVerified = errors.New("email not verified")

// ErrExpired indicates an OTP or reset token past its expiry.
var ErrExpired = errors.New("token expired")

// ErrUnsupportedCurrency indicates the target currency is absent from a valid rate table.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrUpstreamUnavailable indicates a network failure, timeout or non-2xx status from the rate provider.
var ErrUpstreamUnavailable = errors.New("upstream rate provider unavailable")

// ErrUpstreamFormat indicates the rate provider answered with an unexpected body shape.
var ErrUpstreamFormat = errors.New("upstream rate provider returned an unexpected format")

// AppError carries an HTTP status alongside a client-safe message.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func NewInternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, nil)
}
