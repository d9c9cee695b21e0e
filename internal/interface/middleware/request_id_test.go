package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestIDRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		*captured = c.GetString(CtxRequestIDKey)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequestIDMiddleware_IssuesID(t *testing.T) {
	var got string
	r := newRequestIDRouter(&got)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, got)
	assert.Equal(t, got, w.Header().Get("X-Request-ID"), "context id and response header must match")
}

func TestRequestIDMiddleware_KeepsUpstreamID(t *testing.T) {
	var got string
	r := newRequestIDRouter(&got)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "upstream-42", got)
	assert.Equal(t, "upstream-42", w.Header().Get("X-Request-ID"))
}
