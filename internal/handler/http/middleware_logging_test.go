package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apryandito/user-directory/internal/logger"
	"github.com/stretchr/testify/assert"
)

// TestWithLogging_PassesResponseThrough verifies that the logging decorator
// does not alter the response produced by the downstream handler.
func TestWithLogging_PassesResponseThrough(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	h.withLogging(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}
