package middleware

import (
	"net/http"
	"strings"

	"hireme/database/repository"
	"hireme/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextUserID = "userID"
	ContextEmail  = "userEmail"
)

// JWTAuthMiddleware validates the bearer token and loads the account id
// into the request context.
func JWTAuthMiddleware(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		subject, email, err := utils.SubjectFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		account, err := users.GetByID(subject)
		if err != nil || account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
			return
		}

		c.Set(ContextUserID, subject)
		c.Set(ContextEmail, email)
		c.Next()
	}
}

// UserID reads the authenticated account id from the request context.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
