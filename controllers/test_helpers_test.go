// file: controllers/test_helpers_test.go
package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"marketing-planner/middleware"
	"marketing-planner/models"
	"marketing-planner/services"
)

// setupTestRouter creates a Gin engine with session middleware and the same
// route layout as main, backed by the given mock gateway.
func setupTestRouter(ds services.DataService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetDataService(ds)

	router := gin.Default()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	router.POST("/api/login", Login)
	router.POST("/api/logout", Logout)

	events := router.Group("/api/events", middleware.AuthRequired)
	events.GET("", ListEvents)
	events.POST("", CreateEvent)
	events.PUT("/:id", UpdateEvent)
	events.POST("/:id/toggle-posted", TogglePosted)
	events.DELETE("/:id", middleware.AdminRequired(), DeleteEvent)

	return router
}

// testUser builds an active user whose password is "secret".
func testUser(t *testing.T, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	return &models.User{
		ID:       7,
		Email:    "user@example.com",
		Password: string(hash),
		Role:     role,
		Active:   true,
	}
}

// loginAs performs a real login through the handler and returns the session
// cookies for subsequent requests.
func loginAs(t *testing.T, router *gin.Engine, m *services.MockDataService, role string) []*http.Cookie {
	t.Helper()
	m.On("FindUserByEmail", "user@example.com").Return(testUser(t, role), nil).Once()

	w := doJSON(router, "POST", "/api/login", `{"email":"user@example.com","password":"secret"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}
	return w.Result().Cookies()
}

// doJSON sends a request with an optional JSON body and session cookies.
func doJSON(router *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
