// Package controllers handles user authentication and session management.
// File: controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"marketing-planner/logger"
	"marketing-planner/models"
	"marketing-planner/services"
)

var dataService services.DataService

// SetDataService injects the gateway used by all handlers.
func SetDataService(ds services.DataService) {
	dataService = ds
}

// ------------------ authentication utilities ------------------

// checkPasswordHash verifies the plain-text password against the stored bcrypt hash.
func checkPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ------------------ login handling ------------------

// Login authenticates the user against the marketing_users table and stores
// {id, email, role} in the session. Unknown email, inactive account and wrong
// password all produce the same 401 body so callers can't probe for accounts.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		logger.Warn.Println("Login: missing email or password")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email y contraseña son requeridos"})
		return
	}

	user, err := dataService.FindUserByEmail(req.Email)
	if err != nil {
		logger.Error.Println("Login: user lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}

	if user == nil || !user.Active || !checkPasswordHash(req.Password, user.Password) {
		logger.Warn.Printf("Login: rejected attempt for %s", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		return
	}

	session := sessions.Default(c)
	session.Set("userID", user.ID)
	session.Set("userEmail", user.Email)
	session.Set("userRole", user.Role)
	if err := session.Save(); err != nil {
		logger.Error.Println("Login: failed to save session:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}

	logger.Info.Printf("Login: user %s authenticated (role=%s)", user.Email, user.Role)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    models.SessionUser{ID: user.ID, Email: user.Email, Role: user.Role},
	})
}

// Logout clears the session unconditionally.
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	if email := session.Get("userEmail"); email != nil {
		logger.Info.Printf("Logout: logging out user %s", email)
	}

	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		logger.Error.Printf("Logout: error saving session during logout: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
