package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// InternalTokenAuth protects the diagnostics endpoints with a static bearer
// token. An empty configured token disables the surface entirely.
func InternalTokenAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			logAuthFailure(c, http.StatusNotFound, "disabled")
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logAuthFailure(c, http.StatusUnauthorized, "missing_auth")
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logAuthFailure(c, http.StatusUnauthorized, "invalid_auth_format")
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header must be 'Bearer <token>'"})
			c.Abort()
			return
		}

		if parts[1] != token {
			logAuthFailure(c, http.StatusForbidden, "invalid_token")
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Invalid internal token"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func logAuthFailure(c *gin.Context, status int, reason string) {
	log.Printf("internal_auth status=%d request_id=%s reason=%s", status, requestID(c), reason)
}
