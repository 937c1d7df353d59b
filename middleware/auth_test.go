package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func adminTestRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AdminAuthMiddleware(token))
	router.GET("/guarded", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestAdminAuthMiddleware(t *testing.T) {
	router := adminTestRouter("super-secret")

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{"Missing header", "", http.StatusUnauthorized},
		{"Missing bearer prefix", "super-secret", http.StatusUnauthorized},
		{"Wrong scheme", "Basic super-secret", http.StatusUnauthorized},
		{"Wrong token", "Bearer nope", http.StatusForbidden},
		{"Valid token", "Bearer super-secret", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedCode {
				t.Errorf("Expected status %d, got %d", tt.expectedCode, w.Code)
			}
		})
	}
}
