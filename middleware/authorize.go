package middleware

import (
	"context"
	"net/http"

	"dentalcare/services/policy"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoleResolver looks up the stored role of an email.
type RoleResolver interface {
	GetRole(ctx context.Context, email string) (string, error)
}

// Authorize builds the caller principal and enforces policy.Authorize for
// action. It must run after JWTAuthMiddleware.
func Authorize(action policy.Action, roles RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(EmailKey)
		principal := policy.Principal{Email: email}
		if email != "" {
			role, err := roles.GetRole(c.Request.Context(), email)
			if err != nil {
				zap.L().Error("role lookup failed", zap.String("email", email), zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "failed to resolve role"})
				return
			}
			principal.Role = role
		}

		if policy.Authorize(principal, action) != policy.Allow {
			zap.L().Info("access denied", zap.String("email", email), zap.String("action", string(action)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// GetPrincipal returns the principal stored by Authorize.
func GetPrincipal(c *gin.Context) policy.Principal {
	if v, ok := c.Get(PrincipalKey); ok {
		if p, ok := v.(policy.Principal); ok {
			return p
		}
	}
	return policy.Principal{Email: c.GetString(EmailKey)}
}
