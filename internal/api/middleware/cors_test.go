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
		name          string
		method        string
		origin        string
		expectedCode  int
		expectHandler bool
	}{
		{
			name:          "Request without origin",
			method:        http.MethodGet,
			expectedCode:  http.StatusOK,
			expectHandler: true,
		},
		{
			name:          "Cross-origin request",
			method:        http.MethodGet,
			origin:        "https://dashboard.example.com",
			expectedCode:  http.StatusOK,
			expectHandler: true,
		},
		{
			name:          "Preflight request",
			method:        http.MethodOptions,
			origin:        "https://dashboard.example.com",
			expectedCode:  http.StatusNoContent,
			expectHandler: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false

			r := gin.New()
			r.Use(CORS())
			r.Handle(tt.method, "/test", func(c *gin.Context) {
				called = true
				c.String(http.StatusOK, "ok")
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.expectHandler, called)

			if tt.method == http.MethodOptions {
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "GET")
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
			}
		})
	}
}
