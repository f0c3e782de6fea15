// Package middleware provides request filters and security checks for the application.
// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"marketing-planner/logger"
)

// -------------- authentication middleware --------------

// AuthRequired is a middleware that ensures the caller is logged in.
// How it works:
// - Retrieves the session from the request context.
// - Checks that the "userID" session variable is set.
// - If not, responds 401 and aborts execution.
// Usage:
//
//	router.Group("/api/events", middleware.AuthRequired)
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)

	// block request if user session is missing
	if session.Get("userID") == nil {
		logger.Warn.Printf("AuthRequired: no user in session for %s %s", c.Request.Method, c.Request.URL.Path)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No autenticado"})
		c.Abort()
		return
	}

	c.Next()
}
