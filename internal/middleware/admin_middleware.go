package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminSecret guards the admin endpoints with a static shared secret in
// the x-admin-secret header.
func AdminSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader("x-admin-secret")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden"})
			return
		}
		c.Next()
	}
}
