package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/ashish6109/ludo-backend/internal/token"

	"github.com/gin-gonic/gin" // Gin web framework
)

// JWTAuth validates the bearer token and stores the bound user ID in the
// request context. The response is the same 401 for a missing header, a
// malformed token and a bad signature; callers learn nothing about which.
func JWTAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("userID", userID) // Store userID in context
		c.Next()
	}
}
