package services

import (
	"github.com/SscSPs/currency_converter/internal/core/ports"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/core/ratecache"
	"github.com/SscSPs/currency_converter/internal/platform/config"
)

// Dependencies are the adapters the services are built on.
type Dependencies struct {
	Repos     portsrepo.RepositoryProvider
	Provider  ports.RateProvider
	RateCache *ratecache.Cache
	Quota     QuotaReader
	Mailer    ports.Mailer
	Events    ports.EventSink
	Observer  ConversionObserver
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, deps Dependencies) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(deps.Provider, deps.RateCache, deps.Quota)

	historyOpts := []HistoryServiceOption{}
	if deps.Events != nil {
		historyOpts = append(historyOpts, WithHistoryEvents(deps.Events))
	}
	if deps.Observer != nil {
		historyOpts = append(historyOpts, WithConversionObserver(deps.Observer))
	}
	container.History = NewHistoryService(deps.Repos.HistoryRepo, historyOpts...)

	container.User = NewUserService(deps.Repos.UserRepo)
	container.TokenService = NewTokenService(cfg)
	container.Auth = NewAuthService(deps.Repos.UserRepo, container.TokenService, deps.Mailer)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)
	container.RequestLog = NewRequestLogService(deps.Repos.RequestLogRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade           = (*currencyService)(nil)
	_ portssvc.HistorySvcFacade            = (*historyService)(nil)
	_ portssvc.AuthSvcFacade               = (*credentialsService)(nil)
	_ portssvc.UserSvcFacade               = (*userService)(nil)
	_ portssvc.TokenSvcFacade              = (*tokenService)(nil)
	_ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)
	_ portssvc.RequestLogSvc               = (*requestLogService)(nil)
)
