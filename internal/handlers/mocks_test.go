package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) (domain.CurrencyInfoTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.CurrencyInfoTable), args.Error(1)
}

func (m *MockCurrencyService) LatestRates(ctx context.Context, base string) (*domain.RatesSnapshot, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatesSnapshot), args.Error(1)
}

func (m *MockCurrencyService) HistoricalRates(ctx context.Context, date, base string) (*domain.RatesSnapshot, error) {
	args := m.Called(ctx, date, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatesSnapshot), args.Error(1)
}

func (m *MockCurrencyService) TimeSeries(ctx context.Context, start, end, base string, currencies []string) (domain.TimeSeries, error) {
	args := m.Called(ctx, start, end, base, currencies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.TimeSeries), args.Error(1)
}

func (m *MockCurrencyService) CurrentQuota() (domain.QuotaSnapshot, bool) {
	args := m.Called()
	return args.Get(0).(domain.QuotaSnapshot), args.Bool(1)
}

func (m *MockCurrencyService) Convert(ctx context.Context, from, to string, amount float64, date string) (*domain.ConversionResult, error) {
	args := m.Called(ctx, from, to, amount, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionResult), args.Error(1)
}

// --- Mock HistoryService ---
type MockHistoryService struct {
	mock.Mock
}

var _ portssvc.HistorySvcFacade = (*MockHistoryService)(nil)

func (m *MockHistoryService) RecordConversion(ctx context.Context, identity domain.Identity, result *domain.ConversionResult) error {
	return m.Called(ctx, identity, result).Error(0)
}

func (m *MockHistoryService) ListHistory(ctx context.Context, identity domain.Identity, page, limit int) (domain.Page[domain.ConversionRecord], error) {
	args := m.Called(ctx, identity, page, limit)
	return args.Get(0).(domain.Page[domain.ConversionRecord]), args.Error(1)
}

func (m *MockHistoryService) ClearHistory(ctx context.Context, identity domain.Identity) (int64, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockAuthService) ResendOTP(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email, name string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*MockGoogleOAuthService)(nil)

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return m.Called(ctx, state).String(0)
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

// --- Mock RequestLogService ---
type MockRequestLogService struct {
	mock.Mock
}

var _ portssvc.RequestLogSvc = (*MockRequestLogService)(nil)

func (m *MockRequestLogService) Record(ctx context.Context, entry domain.RequestLog) {
	m.Called(ctx, entry)
}

func (m *MockRequestLogService) Wait() {}
