package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"shoplist-backend/pkg/observability"
)

func TestRequestMetrics_PassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("ok"))
	})

	t.Run("publishing disabled", func(t *testing.T) {
		handler := RequestMetrics(observability.NewMetrics("Shoplist/test", nil))(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/list/list", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("nil metrics", func(t *testing.T) {
		handler := RequestMetrics(nil)(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/list/list", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}
