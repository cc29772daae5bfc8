// Package httpapi adapts unary request/response handlers to JSON HTTP
// endpoints.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Error carries an HTTP status for a handler failure. Handlers return
// plain errors for internal failures; wrapping with NewError sets the
// user-facing status.
type Error struct {
	Status int
	Err    error
}

func NewError(status int, err error) *Error {
	return &Error{
		Status: status,
		Err:    err,
	}
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HandleJSON registers a unary handler at path. Requests are POSTs with
// an optional JSON body; responses are JSON-encoded.
func HandleJSON[Req any, Res any](mux chi.Router, path string, handle func(context.Context, *Req) (*Res, error)) {
	mux.Post(path, func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req Req
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(ctx, w, NewError(http.StatusBadRequest, fmt.Errorf("httpapi: decoding request: %w", err)))
			return
		}

		res, err := handle(ctx, &req)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(res); err != nil {
			slog.ErrorContext(ctx, "httpapi: encoding response", "path", path, "error", err)
		}
	})
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var httpErr *Error
	if errors.As(err, &httpErr) {
		status = httpErr.Status
	}
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "httpapi: handler failed", "error", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: err.Error()})
}

// WriteJSON encodes a response for handlers that serve HTTP directly,
// such as multipart uploads.
func WriteJSON(ctx context.Context, w http.ResponseWriter, res any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		slog.ErrorContext(ctx, "httpapi: encoding response", "error", err)
	}
}

// WriteError reports a handler failure for handlers that serve HTTP
// directly.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	writeError(ctx, w, err)
}
