package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"barber-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the admin surface. Tokens are issued by the login
// endpoint; validation goes through the TokenValidator port so the
// credential scheme can change without touching routes.
type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxRoleKey = "role"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	r, ok := role.(string)
	return r, ok
}
