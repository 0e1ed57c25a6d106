package middleware

import (
	"net/http"
	"strings"

	"inkstudio/utils"

	"github.com/gin-gonic/gin"
)

// ClientAuthMiddleware resolves the wizard client token issued at
// wizard start and puts the client ID on the context. Requests without a
// valid token cannot touch drafts.
func ClientAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		clientID, err := utils.ExtractClientIDFromToken(tokenString)
		if err != nil || clientID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("clientID", clientID)
		c.Next()
	}
}

// ClientID reads the authenticated client identifier set by
// ClientAuthMiddleware.
func ClientID(c *gin.Context) string {
	v, _ := c.Get("clientID")
	id, _ := v.(string)
	return id
}
