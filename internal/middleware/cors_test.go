package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		origins        []string
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{
			name:           "preflight from configured origin",
			origins:        []string{"https://app.example.com"},
			method:         http.MethodOptions,
			origin:         "https://app.example.com",
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "https://app.example.com",
		},
		{
			name:           "simple request from configured origin",
			origins:        []string{"https://app.example.com"},
			method:         http.MethodGet,
			origin:         "https://app.example.com",
			expectedStatus: http.StatusOK,
			expectedOrigin: "https://app.example.com",
		},
		{
			name:           "unknown origin is rejected",
			origins:        []string{"https://app.example.com"},
			method:         http.MethodGet,
			origin:         "https://evil.example.com",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "defaults allow localhost",
			method:         http.MethodGet,
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusOK,
			expectedOrigin: "http://localhost:3000",
		},
		{
			name:           "same-origin request without Origin header",
			origins:        []string{"https://app.example.com"},
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.origins))
			router.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
