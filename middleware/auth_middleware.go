package middleware

import (
	"net/http"
	"strings"

	"apuntes-app/apuntes/services"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the context key under which the verified owner id is stored.
const UserIDKey = "userID"

func AuthMiddleware(authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is required"})
			return
		}

		// Extract token from Bearer schema
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header format must be Bearer {token}"})
			return
		}

		userID, err := authService.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		// Bind the verified identity to the request; every store filter
		// downstream uses it as the owner.
		c.Set(UserIDKey, userID)

		c.Next()
	}
}
