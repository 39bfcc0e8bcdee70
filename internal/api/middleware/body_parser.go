package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"k8s-azure-app/internal/models"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BodyKey is the context key holding the decoded JSON request body
const BodyKey = "body"

// isJSON reports whether a media type carries JSON
func isJSON(contentType string) bool {
	return contentType == "application/json" || strings.HasSuffix(contentType, "+json")
}

// BodyParser returns a middleware that decodes JSON request bodies up to limit bytes.
// The decoded object or array is stored under BodyKey and the raw body is
// restored for downstream readers. Only objects and arrays are accepted.
func BodyParser(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Body == http.NoBody || !isJSON(c.ContentType()) {
			c.Next()
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, limit+1))
		c.Request.Body.Close()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read request body"})
			return
		}
		if int64(len(body)) > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "request body too large"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		trimmed := bytes.TrimSpace(body)
		if len(trimmed) == 0 {
			c.Next()
			return
		}
		if trimmed[0] != '{' && trimmed[0] != '[' {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "request body must be a JSON object or array"})
			return
		}

		var parsed any
		if err := json.Unmarshal(trimmed, &parsed); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "malformed JSON body"})
			return
		}

		c.Set(BodyKey, parsed)
		c.Next()
	}
}
