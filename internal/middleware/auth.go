package middleware

import (
	"net/http"
	"strings"

	"backend/internal/auth"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Authenticate extracts the bearer token from the Authorization header,
// verifies it and binds the resulting claims into the request context.
// A missing header, malformed scheme or failed verification aborts with 401.
func Authenticate(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authentication required"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authorization format. Expected 'Bearer <token>'"))
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid or expired token"))
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// RequireAdmin allows only admin identities through. It must run after
// Authenticate; a missing identity fails safe with 403 rather than
// being treated as a verification step.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Identity(c)
		if !ok || !claims.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Admin privileges required"))
			return
		}
		c.Next()
	}
}

// Identity returns the claims bound by Authenticate, if any.
func Identity(c *gin.Context) (*auth.Claims, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
