// file: internal/server/middleware/request_id_test.go
// version: 1.0.0
// guid: 0f5d8b2a-6c4e-4a17-9e83-b2d7c1f05a96

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	ulid "github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	return router
}

func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	router := newRequestIDRouter()
	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	id := resp.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, resp.Body.String())
	_, err := ulid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestID_ReusesInbound(t *testing.T) {
	t.Parallel()

	router := newRequestIDRouter()
	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, "upstream-123")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, "upstream-123", resp.Header().Get(RequestIDHeader))
	assert.Equal(t, "upstream-123", resp.Body.String())
}

func TestRequestID_RejectsOversizedInbound(t *testing.T) {
	t.Parallel()

	router := newRequestIDRouter()
	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLen+1))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Len(t, resp.Header().Get(RequestIDHeader), 26)
}

func TestGetRequestID_Nil(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", GetRequestID(nil))
}
