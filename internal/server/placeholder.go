// file: internal/server/placeholder.go
// version: 2.0.0
// guid: 2b3c4d5e-6f7a-8b9c-0d1e-2f3a4b5c6d7e

package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const placeholderHTML = `
<!DOCTYPE html>
<html>
<head>
    <title>Book Lookup</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; background-color: #f5f5f5; }
        .container { max-width: 800px; margin: 0 auto; background: white; padding: 40px; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        h1 { color: #333; }
        .api-list { background: #f8f9fa; padding: 20px; border-radius: 4px; margin: 20px 0; }
        .api-endpoint { font-family: 'Courier New', monospace; background: #e9ecef; padding: 4px 8px; margin: 2px 0; border-radius: 3px; display: block; }
        .method { color: #007bff; font-weight: bold; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Book Lookup API Server</h1>

        <h2>Available API Endpoints:</h2>
        <div class="api-list">
            <code class="api-endpoint"><span class="method">GET</span> /api/books/search?q=&amp;maxResults=&amp;startIndex=&amp;author=&amp;category=&amp;sortBy=</code>
            <code class="api-endpoint"><span class="method">GET</span> /api/books/:id</code>
            <code class="api-endpoint"><span class="method">GET</span> /api/health</code>
            <code class="api-endpoint"><span class="method">GET</span> /metrics</code>
        </div>

        <p>
            <a href="/api/books/search?q=javascript" target="_blank">Try a search</a> |
            <a href="/api/health" target="_blank">Health Check</a>
        </p>
    </div>
</body>
</html>
`

// setupPlaceholder serves the API landing page and the 404 fallbacks.
func (s *Server) setupPlaceholder() {
	s.router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(placeholderHTML))
	})

	s.router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			RespondWithError(c, http.StatusNotFound, "endpoint not found", "NOT_FOUND")
			return
		}
		c.Redirect(http.StatusFound, "/")
	})
}
