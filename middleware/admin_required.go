// Package middleware file: middleware/admin_required.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"marketing-planner/logger"
)

// AdminRequired is a middleware that checks if the logged-in user has the
// admin role. Unauthenticated callers get 401, authenticated non-admins 403.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		if session.Get("userID") == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No autenticado"})
			c.Abort()
			return
		}

		role, _ := session.Get("userRole").(string)
		if role != "admin" {
			logger.Warn.Printf("AdminRequired: blocked %s (role=%q) on %s", session.Get("userEmail"), role, c.Request.URL.Path)
			c.JSON(http.StatusForbidden, gin.H{"error": "No autorizado (admin requerido)"})
			c.Abort()
			return
		}

		c.Next()
	}
}
