package middleware

import (
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = contextKey("userID")
	identityKey = contextKey("identity")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}
	if userID, ok := c.Request.Context().Value(userIDKey).(string); ok && userID != "" {
		return userID, true
	}
	return "", false
}

// GetIdentity returns the caller resolved by the auth middlewares.
// Routes without one of them see an authenticated user or Anonymous.
func GetIdentity(c *gin.Context) domain.Identity {
	if val, exists := c.Get(string(identityKey)); exists {
		if identity, ok := val.(domain.Identity); ok {
			return identity
		}
	}
	if userID, ok := GetUserIDFromContext(c); ok {
		return domain.Authenticated(userID)
	}
	return domain.Anonymous()
}

func setIdentity(c *gin.Context, identity domain.Identity) {
	c.Set(string(identityKey), identity)
}
