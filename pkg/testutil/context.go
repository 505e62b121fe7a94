package testutil

import (
	"net/http"

	"tzcatalog/pkg/requestcontext"
)

// WithRequestID sets the request ID the requestid middleware would.
func WithRequestID(req *http.Request, id string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), id))
}
