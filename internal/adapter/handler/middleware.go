package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/core/domain"
	"storefront/internal/core/service"
)

const identityKey = "identity"

// AuthRequired resolves the bearer token into an identity and stores it in
// the request context. Cart operations must never run without a user id, so
// a missing or unknown token ends the request with 401.
func AuthRequired(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin gates a route on the ADMIN role. It must run after
// AuthRequired.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity == nil || !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity set by AuthRequired, or nil on
// unauthenticated routes.
func CurrentIdentity(c *gin.Context) *domain.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, ok := v.(*domain.Identity)
	if !ok {
		return nil
	}
	return identity
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
