package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestGetUserByID() {
	ctx := context.Background()
	expected := &domain.User{UserID: "user-1"}
	suite.mockRepo.On("FindUserByID", ctx, "user-1").Return(expected, nil).Once()
	suite.mockRepo.On("FindUserByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, "user-1")
	suite.Require().NoError(err)
	suite.Equal(expected, user)

	user, err = suite.service.GetUserByID(ctx, "missing")
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ExistingLink() {
	ctx := context.Background()
	linked := &domain.User{UserID: "user-1"}
	suite.mockRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "g-sub").Return(linked, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, "g-sub", "a@b.co", "A")

	suite.Require().NoError(err)
	suite.Equal(linked, user)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_LinksByEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: "user-1", Email: "a@b.co", AuthProvider: domain.ProviderLocal}
	suite.mockRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "g-sub").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, "a@b.co").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == "user-1" && u.IsEmailVerified && u.ProviderUserID != nil && *u.ProviderUserID == "g-sub"
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, "g-sub", "A@B.co", "A")

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_Creates() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "g-sub").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, "a@b.co").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID != "" && u.IsEmailVerified && u.AuthProvider == domain.ProviderGoogle && u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, "g-sub", "a@b.co", "A")

	suite.Require().NoError(err)
	suite.Equal("A", user.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "g-sub").Return(nil, assert.AnError).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, "g-sub", "a@b.co", "A")

	suite.Nil(user)
	suite.ErrorIs(err, assert.AnError)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
