package middleware

import (
	"net/http"
	"strings"

	"github.com/alazar/finance-backend/internal/core/ports"
	"github.com/gin-gonic/gin"
)

// TokenAuth validates the Authorization bearer token against the active
// token set. Unlike a signed token scheme, the only authorization fact is
// set membership, so logout revokes immediately.
func TokenAuth(tokens ports.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			logger.Warn("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if !tokens.Contains(c.Request.Context(), token) {
			logger.Warn("Invalid bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Next()
	}
}

// BearerToken extracts the bearer token from the request, if present.
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}
