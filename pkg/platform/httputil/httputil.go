// Package httputil holds the JSON response helpers shared by handlers.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"tzcatalog/pkg/platform/sentinel"
)

// Error codes returned in the "error" field.
const (
	CodeBadRequest  = "bad_request"
	CodeNotFound    = "not_found"
	CodeUnavailable = "unavailable"
	CodeInternal    = "internal_error"
)

// WriteJSON writes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err to a status and a JSON error envelope. Internal
// errors never expose their description.
func WriteError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	body := map[string]string{"error": code}
	if status != http.StatusInternalServerError {
		body["error_description"] = err.Error()
	}
	WriteJSON(w, status, body)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, sentinel.ErrInvalidInput):
		return http.StatusBadRequest, CodeBadRequest
	case errors.Is(err, sentinel.ErrUnavailable):
		return http.StatusServiceUnavailable, CodeUnavailable
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// Validatable request bodies check and normalize themselves after decoding.
type Validatable interface {
	Validate() error
}

// DecodeAndPrepare reads a JSON body into T and validates it when *T is
// Validatable. On failure it writes the error response and returns false;
// the caller just returns.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		logger.WarnContext(ctx, "failed to decode request",
			"request_id", requestID,
			"error", err,
		)
		WriteError(w, fmt.Errorf("%w: invalid JSON body", sentinel.ErrInvalidInput))
		return nil, false
	}

	if v, ok := any(&req).(Validatable); ok {
		if err := v.Validate(); err != nil {
			logger.WarnContext(ctx, "invalid request",
				"request_id", requestID,
				"error", err,
			)
			WriteError(w, err)
			return nil, false
		}
	}
	return &req, true
}
