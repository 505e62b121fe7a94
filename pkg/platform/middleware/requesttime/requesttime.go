// Package requesttime stamps each request with a single "now" so everything
// logged for it shares one timestamp.
package requesttime

import (
	"net/http"
	"time"

	"tzcatalog/pkg/requestcontext"
)

// Middleware stores the request start time in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
