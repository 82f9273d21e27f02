package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const maxLoggedBody = 4 << 10

var redactedFields = map[string]bool{
	"password":    true,
	"newPassword": true,
	"otp":         true,
	"token":       true,
}

var skipLogPrefixes = []string{"/health", "/metrics", "/api/docs"}

// RequestLogger writes an audit row for every API request after the handler ran.
func RequestLogger(svc portssvc.RequestLogSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipRequestLog(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		var body *string
		if c.Request.Method != http.MethodGet {
			body = captureBody(c)
		}

		c.Next()

		identity := GetIdentity(c)
		entry := domain.RequestLog{
			Method:         c.Request.Method,
			URL:            c.Request.URL.RequestURI(),
			IPAddress:      clientIP(c),
			UserAgent:      c.Request.UserAgent(),
			RequestBody:    body,
			StatusCode:     c.Writer.Status(),
			ResponseTimeMs: time.Since(start).Milliseconds(),
		}
		if userID, ok := identity.UserID(); ok {
			entry.UserID = &userID
		}
		if guestID, ok := identity.GuestID(); ok {
			entry.GuestID = &guestID
		}
		svc.Record(c.Request.Context(), entry)
	}
}

func skipRequestLog(path string) bool {
	for _, prefix := range skipLogPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// captureBody reads up to maxLoggedBody bytes and leaves the full body readable for the handler.
func captureBody(c *gin.Context) *string {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}
	head, err := io.ReadAll(io.LimitReader(c.Request.Body, maxLoggedBody+1))
	if err != nil {
		return nil
	}
	c.Request.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(head), c.Request.Body), c.Request.Body}

	if len(head) == 0 {
		return nil
	}
	var logged string
	if len(head) > maxLoggedBody {
		logged = string(head[:maxLoggedBody])
	} else {
		logged = redactBody(head)
	}
	return &logged
}

// redactBody masks credential fields of a JSON object body. Other bodies are kept as sent.
func redactBody(raw []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return string(raw)
	}
	for key := range fields {
		if redactedFields[key] {
			fields[key] = "[REDACTED]"
		}
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return string(raw)
	}
	return string(out)
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP.
func clientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if realIP := strings.TrimSpace(c.GetHeader("X-Real-IP")); realIP != "" {
		return realIP
	}
	return c.ClientIP()
}
