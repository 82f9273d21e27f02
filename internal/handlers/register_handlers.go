package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_converter/cmd/docs"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

const (
	apiBasePath      = "/api"
	defaultLoginRate = "5-M"
	defaultAPIRate   = "120-M"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// metricsHandler serves /metrics when non-nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	metricsHandler http.Handler,
) {
	docsEnabled := !cfg.IsProduction

	r.GET("/", newHomeHandler(docsEnabled))
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	setupAPIRoutes(r, cfg, services)

	if docsEnabled {
		setupSwaggerRoutes(r)
	}
}

// setupAPIRoutes configures the /api group and delegates to specific route registrations.
func setupAPIRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	api := r.Group(apiBasePath, middleware.RateLimit(newLimiter(cfg.APIRateLimit, defaultAPIRate)))

	loginLimit := middleware.RateLimit(newLimiter(cfg.LoginRateLimit, defaultLoginRate))
	registerAuthRoutes(api, cfg.JWTSecret, loginLimit, services)
	registerGoogleOAuthRoutes(api, cfg, services)
	registerCurrencyRoutes(api, cfg.JWTSecret, services.Currency, services.History)
	registerHistoryRoutes(api, cfg.JWTSecret, services.History)
}

// newLimiter builds a limiter from the configured rate, falling back to def when it does not parse.
func newLimiter(formatted, def string) *limiter.Limiter {
	l, err := middleware.NewMemoryLimiter(formatted)
	if err == nil {
		return l
	}
	slog.Warn("Invalid rate limit, using default", slog.String("rate", formatted), slog.String("default", def), slog.String("error", err.Error()))
	l, err = middleware.NewMemoryLimiter(def)
	if err != nil {
		panic(err)
	}
	return l
}

// setupSwaggerRoutes serves the Swagger UI under /api/docs.
func setupSwaggerRoutes(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = apiBasePath
	r.GET(apiBasePath+"/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
