package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/auth"
)

// IdentityKey is where the verified claims live in the gin context.
const IdentityKey = "identity"

// Auth verifies the bearer token and stores the decoded claims for the
// handlers downstream. Missing, malformed and expired tokens all abort
// with 401.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		claims, err := auth.Parse(parts[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			return
		}

		c.Set(IdentityKey, claims)
		c.Next()
	}
}

// Identity pulls the verified claims set by Auth.
func Identity(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// RequireRole only lets identities with the given role through. Must
// run after Auth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Identity(c)
		if !ok || claims.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden"})
			return
		}
		c.Next()
	}
}
