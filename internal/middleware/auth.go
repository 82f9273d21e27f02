package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	guestIDHeader = "X-Guest-ID"
	guestIDQuery  = "guestId"
	maxGuestIDLen = 128
)

// AuthMiddleware creates a Gin middleware handler that requires a valid JWT.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		authenticate(c, claims.Subject)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller's Identity without rejecting anyone.
// A valid bearer token wins; an invalid one falls through to guest resolution.
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c.GetHeader("Authorization")); ok {
			claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
			if err == nil {
				authenticate(c, claims.Subject)
				c.Next()
				return
			}
			GetLoggerFromCtx(c.Request.Context()).Debug("Ignoring invalid optional token", slog.String("error", err.Error()))
		}

		if guestID := guestIDFromRequest(c); guestID != "" {
			setIdentity(c, domain.Guest(guestID))
			setLogger(c, GetLoggerFromCtx(c.Request.Context()).With(slog.String("guest_id", guestID)))
		} else {
			setIdentity(c, domain.Anonymous())
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, userID string) {
	ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
	c.Request = c.Request.WithContext(ctx)
	c.Set(string(userIDKey), userID)
	setIdentity(c, domain.Authenticated(userID))
	setLogger(c, GetLoggerFromCtx(ctx).With(slog.String("user_id", userID)))
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func guestIDFromRequest(c *gin.Context) string {
	guestID := strings.TrimSpace(c.GetHeader(guestIDHeader))
	if guestID == "" {
		guestID = strings.TrimSpace(c.Query(guestIDQuery))
	}
	if len(guestID) > maxGuestIDLen {
		return ""
	}
	return guestID
}
