package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/currency_converter/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// HTTPMetrics records request counts and latency labelled by route template.
func HTTPMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTP(path, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
