package services

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func TestTokenService_GenerateAccessToken(t *testing.T) {
	now := time.Now()
	svc := &tokenService{secret: "s3cret", issuer: "currency-converter", ttl: time.Hour, now: func() time.Time { return now }}

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), &domain.User{UserID: "user-1", Email: "a@b.co"})

	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)
	claims, err := utils.ParseAndValidateJWT(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestTokenService_RejectsMissingUser(t *testing.T) {
	svc := NewTokenService(&config.Config{JWTSecret: "s3cret", JWTExpiryDuration: time.Hour})

	_, _, err := svc.GenerateAccessToken(context.Background(), &domain.User{})
	assert.Error(t, err)
	_, _, err = svc.GenerateAccessToken(context.Background(), nil)
	assert.Error(t, err)
}

func newTestGoogleService(validate func(context.Context, string, string) (*idtoken.Payload, error)) *googleOAuthHandlerService {
	svc := NewGoogleOAuthHandlerService(&config.Config{
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		GoogleRedirectURL:  "http://localhost:3000/api/auth/google/callback",
	}).(*googleOAuthHandlerService)
	svc.validate = validate
	return svc
}

func TestGoogleOAuth_LoginURLCarriesState(t *testing.T) {
	svc := newTestGoogleService(nil)
	ctx := context.Background()

	state, err := svc.GenerateStateString(ctx)
	require.NoError(t, err)
	assert.Len(t, state, oauthStateBytes*2)

	raw := svc.GetGoogleLoginURL(ctx, state)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, state, q.Get("state"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "openid email profile", q.Get("scope"))
}

func TestGoogleOAuth_ValidateIDToken(t *testing.T) {
	ctx := context.Background()

	t.Run("verified email passes", func(t *testing.T) {
		svc := newTestGoogleService(func(_ context.Context, tok, aud string) (*idtoken.Payload, error) {
			assert.Equal(t, "id-token", tok)
			assert.Equal(t, "client-id", aud)
			return &idtoken.Payload{Subject: "sub-1", Claims: map[string]any{"email": "a@b.co", "email_verified": true}}, nil
		})
		payload, err := svc.ValidateGoogleIDToken(ctx, "id-token")
		require.NoError(t, err)
		assert.Equal(t, "sub-1", payload.Subject)
	})

	t.Run("unverified email is rejected", func(t *testing.T) {
		svc := newTestGoogleService(func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Subject: "sub-1", Claims: map[string]any{"email_verified": false}}, nil
		})
		_, err := svc.ValidateGoogleIDToken(ctx, "id-token")
		assert.Error(t, err)
	})

	t.Run("validator error is wrapped", func(t *testing.T) {
		boom := errors.New("bad signature")
		svc := newTestGoogleService(func(context.Context, string, string) (*idtoken.Payload, error) {
			return nil, boom
		})
		_, err := svc.ValidateGoogleIDToken(ctx, "id-token")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("unconfigured client", func(t *testing.T) {
		svc := NewGoogleOAuthHandlerService(&config.Config{})
		_, err := svc.ValidateGoogleIDToken(ctx, "id-token")
		assert.ErrorIs(t, err, errGoogleNotConfigured)
	})
}
