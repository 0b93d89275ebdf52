package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"smartlux-backend/internal/auth/domain"
	"smartlux-backend/internal/auth/usecase"
)

const identityKey = "identity"

// AuthMiddleware verifies the Authorization bearer token and stores the
// resolved identity in the gin context.
func AuthMiddleware(verifier usecase.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "authentication is not configured"})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFromContext returns the identity stored by AuthMiddleware.
func IdentityFromContext(c *gin.Context) *domain.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(*domain.Identity); ok {
			return identity
		}
	}
	return nil
}
