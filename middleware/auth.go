// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by the auth middlewares.
const (
	EmailKey     = "email"
	PrincipalKey = "principal"
)

// TokenVerifier extracts the user email from a valid access token.
type TokenVerifier interface {
	ExtractEmail(tokenString string) (string, error)
}

// JWTAuthMiddleware rejects requests without a bearer token (401) or with an
// invalid one (403), and stores the token email in the context.
func JWTAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "UNauthorized access"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		email, err := verifier.ExtractEmail(tokenString)
		if err != nil {
			zap.L().Debug("token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(EmailKey, email)
		c.Next()
	}
}
