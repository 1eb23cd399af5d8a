package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware interface {
	RequireSecret() gin.HandlerFunc
}

type authMiddleware struct {
	secret string
}

// RequireSecret checks the Authorization header for "Bearer <shared secret>".
func (a *authMiddleware) RequireSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Missing bearer token",
			})
			return
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(a.secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid token",
			})
			return
		}
		c.Next()
	}
}

func NewAuthMiddleware(secret string) AuthMiddleware {
	return &authMiddleware{
		secret: secret,
	}
}
