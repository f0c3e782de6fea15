// file: middleware/admin_required_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test: Unauthenticated users hit the 401 path, not the 403 one
func TestAdminRequired_Unauthenticated(t *testing.T) {
	router := setupAuthTestRouter()

	req, _ := http.NewRequest("DELETE", "/admin-only", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"No autenticado"}`, w.Body.String())
}

// Test: Authenticated non-admin users are blocked with 403
func TestAdminRequired_NonAdmin(t *testing.T) {
	router := setupAuthTestRouter()
	cookies := loginCookies(t, router, "editor")

	req, _ := http.NewRequest("DELETE", "/admin-only", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"No autorizado (admin requerido)"}`, w.Body.String())
}

// Test: Admin users pass through
func TestAdminRequired_Admin(t *testing.T) {
	router := setupAuthTestRouter()
	cookies := loginCookies(t, router, "admin")

	req, _ := http.NewRequest("DELETE", "/admin-only", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin action done")
}
