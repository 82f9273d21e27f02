package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/currency_converter/internal/core/ports"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware tracks successful API calls for identified callers.
func PosthogMiddleware(events ports.EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if events == nil || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		identity := GetIdentity(c)
		distinctID := identity.DistinctID()
		if distinctID == "" {
			return
		}

		// "/api/currency/convert" -> "api_currency_convert"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
			"identity":    identity.Kind().String(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		events.Enqueue(distinctID, eventName, props)
	}
}
