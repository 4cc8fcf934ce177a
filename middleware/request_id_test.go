package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRequestIDRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		seen = c.GetString("requestId")
		c.String(http.StatusOK, "pong")
	})
	return router, &seen
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	router, seen := newRequestIDRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	header := w.Header().Get("X-Request-ID")
	if header == "" {
		t.Fatalf("expected generated X-Request-ID header")
	}
	if *seen != header {
		t.Fatalf("context requestId %q does not match header %q", *seen, header)
	}
}

func TestRequestIDEchoedWhenProvided(t *testing.T) {
	router, seen := newRequestIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-test-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-test-123" {
		t.Fatalf("incoming request id not echoed, got %q", got)
	}
	if *seen != "req-test-123" {
		t.Fatalf("context requestId %q, want req-test-123", *seen)
	}
}
