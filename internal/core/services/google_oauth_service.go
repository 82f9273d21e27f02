package services

import (
	"context"
	"errors"
	"fmt"

	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/SscSPs/currency_converter/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const oauthStateBytes = 32

var errGoogleNotConfigured = errors.New("google sign-in is not configured")

// googleOAuthHandlerService drives the authorization code flow against Google.
type googleOAuthHandlerService struct {
	clientID     string
	oauth2Config *oauth2.Config
	validate     func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

func NewGoogleOAuthHandlerService(cfg *config.Config) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		clientID: cfg.GoogleClientID,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
}

func (s *googleOAuthHandlerService) GenerateStateString(_ context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(oauthStateBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}
	return state, nil
}

func (s *googleOAuthHandlerService) GetGoogleLoginURL(_ context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline, oauth2.SetAuthURLParam("prompt", "select_account"))
}

func (s *googleOAuthHandlerService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	if s.clientID == "" {
		return nil, errGoogleNotConfigured
	}
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange google authorization code: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken checks the signature and audience of idTokenString and
// rejects accounts whose email Google has not verified.
func (s *googleOAuthHandlerService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.clientID == "" {
		return nil, errGoogleNotConfigured
	}
	payload, err := s.validate(ctx, idTokenString, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("google id token rejected: %w", err)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, errors.New("google account email is not verified")
	}
	return payload, nil
}
