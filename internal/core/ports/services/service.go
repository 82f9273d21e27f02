package services

// ServiceContainer holds instances of all the application services.
// It is built once at startup and handed to the handlers.
type ServiceContainer struct {
	Currency           CurrencySvcFacade
	History            HistorySvcFacade
	Auth               AuthSvcFacade
	User               UserSvcFacade
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
	RequestLog         RequestLogSvc
}
