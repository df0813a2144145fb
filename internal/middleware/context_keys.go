package middleware

import (
	"context"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a private key type to prevent collisions in context values.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	identityKey  = contextKey("identity")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context, falling back to the request context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		if userID, ok := v.(string); ok {
			return userID, true
		}
		return "", false
	}
	if v := c.Request.Context().Value(userIDKey); v != nil {
		if userID, ok := v.(string); ok {
			return userID, true
		}
	}
	return "", false
}

// SetIdentity stores the resolved identity snapshot on the request.
func SetIdentity(c *gin.Context, id domain.Identity) {
	c.Set(string(identityKey), id)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), identityKey, id))
}

// GetIdentityFromContext retrieves the resolved identity snapshot, if the
// identity middleware ran for this request.
func GetIdentityFromContext(c *gin.Context) (domain.Identity, bool) {
	if v, exists := c.Get(string(identityKey)); exists {
		if id, ok := v.(domain.Identity); ok {
			return id, true
		}
	}
	return domain.Identity{}, false
}
