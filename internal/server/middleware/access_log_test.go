// file: internal/server/middleware/access_log_test.go
// version: 1.0.0
// guid: 93e1b6d4-2a7f-4c58-b0e9-6d4a8f2c1b75

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jdfalk/book-lookup/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger.Setup(logger.Config{Level: "info", Format: logger.FormatJSON, Output: &buf})
	t.Cleanup(func() { logger.Setup(logger.Config{}) })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), AccessLog())
	router.GET("/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "nope"})
	})

	req := httptest.NewRequest(http.MethodGet, "/missing?q=x", nil)
	req.Header.Set(RequestIDHeader, "rid-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "http", entry["component"])
	assert.Equal(t, "/missing", entry["path"])
	assert.Equal(t, "q=x", entry["query"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, "rid-1", entry["request_id"])
}
