package requestid

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzcatalog/pkg/requestcontext"
)

func TestRequestID(t *testing.T) {
	var seen string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.RequestID(r.Context())
	}))

	t.Run("generates a uuid", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get(Header))
	})

	t.Run("keeps an incoming id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(Header, "abc-123")
		h.ServeHTTP(httptest.NewRecorder(), r)
		assert.Equal(t, "abc-123", seen)
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(Header, strings.Repeat("x", 200))
		h.ServeHTTP(httptest.NewRecorder(), r)
		assert.Len(t, seen, 36)
	})
}
