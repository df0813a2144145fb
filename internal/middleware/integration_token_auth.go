package middleware

import (
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// IntegrationTokenAuth authenticates requests carrying an x-api-key header
// (dialer tooling pushing call logs). Requests without the header, or with a
// key that fails validation, fall through to the JWT middleware.
func IntegrationTokenAuth(tokenSvc portssvc.IntegrationTokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawKey := c.GetHeader("x-api-key")
		if rawKey == "" {
			c.Next()
			return
		}

		userID, err := tokenSvc.ValidateToken(c.Request.Context(), rawKey)
		if err != nil {
			c.Next()
			return
		}

		setAuthenticatedUser(c, userID)
		c.Set("authMethod", "integration_token")
		c.Next()
	}
}
