package services_test

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/core/ports"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByResetToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock ConversionHistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

var _ portsrepo.ConversionHistoryRepositoryFacade = (*MockHistoryRepository)(nil)

func (m *MockHistoryRepository) ListConversions(ctx context.Context, identity domain.Identity, limit, offset int) (domain.Page[domain.ConversionRecord], error) {
	args := m.Called(ctx, identity, limit, offset)
	return args.Get(0).(domain.Page[domain.ConversionRecord]), args.Error(1)
}

func (m *MockHistoryRepository) SaveConversion(ctx context.Context, record domain.ConversionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHistoryRepository) DeleteConversions(ctx context.Context, identity domain.Identity) (int64, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock RequestLogRepository ---
type MockRequestLogRepository struct {
	mock.Mock
}

var _ portsrepo.RequestLogWriter = (*MockRequestLogRepository)(nil)

func (m *MockRequestLogRepository) SaveRequestLog(ctx context.Context, entry domain.RequestLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock Mailer ---
type MockMailer struct {
	mock.Mock
}

var _ ports.Mailer = (*MockMailer)(nil)

func (m *MockMailer) SendOTP(ctx context.Context, to, name, otp string) error {
	args := m.Called(ctx, to, name, otp)
	return args.Error(0)
}

func (m *MockMailer) SendPasswordReset(ctx context.Context, to, name, resetToken string) error {
	args := m.Called(ctx, to, name, resetToken)
	return args.Error(0)
}

// --- Mock EventSink ---
type MockEventSink struct {
	mock.Mock
}

var _ ports.EventSink = (*MockEventSink)(nil)

func (m *MockEventSink) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

type countingObserver struct {
	kinds []string
}

func (o *countingObserver) ObserveConversion(identityKind string) {
	o.kinds = append(o.kinds, identityKind)
}
