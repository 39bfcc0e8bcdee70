package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyParser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		contentType  string
		body         string
		limit        int64
		expectedCode int
		expectParsed any
	}{
		{
			name:         "JSON object",
			contentType:  "application/json",
			body:         `{"name":"demo","replicas":3}`,
			limit:        1024,
			expectedCode: http.StatusOK,
			expectParsed: map[string]any{"name": "demo", "replicas": float64(3)},
		},
		{
			name:         "JSON array with charset",
			contentType:  "application/json; charset=utf-8",
			body:         `[1,2]`,
			limit:        1024,
			expectedCode: http.StatusOK,
			expectParsed: []any{float64(1), float64(2)},
		},
		{
			name:         "Vendor JSON type",
			contentType:  "application/merge-patch+json",
			body:         `{"a":null}`,
			limit:        1024,
			expectedCode: http.StatusOK,
			expectParsed: map[string]any{"a": nil},
		},
		{
			name:         "Empty JSON body passes through",
			contentType:  "application/json",
			body:         "",
			limit:        1024,
			expectedCode: http.StatusOK,
		},
		{
			name:         "Non-JSON body passes through",
			contentType:  "text/plain",
			body:         "{not json",
			limit:        1024,
			expectedCode: http.StatusOK,
		},
		{
			name:         "Malformed JSON",
			contentType:  "application/json",
			body:         `{"name":`,
			limit:        1024,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Primitive rejected",
			contentType:  "application/json",
			body:         `"just a string"`,
			limit:        1024,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Body over limit",
			contentType:  "application/json",
			body:         `{"data":"` + strings.Repeat("a", 64) + `"}`,
			limit:        32,
			expectedCode: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var parsed any
			var raw string
			reached := false

			r := gin.New()
			r.Use(BodyParser(tt.limit))
			r.POST("/test", func(c *gin.Context) {
				reached = true
				parsed, _ = c.Get(BodyKey)
				b, err := io.ReadAll(c.Request.Body)
				require.NoError(t, err)
				raw = string(b)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/test", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode != http.StatusOK {
				assert.False(t, reached)
				assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
				return
			}

			assert.True(t, reached)
			assert.Equal(t, tt.expectParsed, parsed)
			// Downstream handlers still see the original bytes
			assert.Equal(t, tt.body, raw)
		})
	}
}

func TestBodyParser_NoBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(BodyParser(1024))
	r.GET("/test", func(c *gin.Context) {
		_, exists := c.Get(BodyKey)
		assert.False(t, exists)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
