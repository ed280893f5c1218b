// Package middleware provides HTTP middleware for the API server.
package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wealthmap/wealthmap/internal/database"
)

// ErrorResponse is the JSON error envelope returned to API clients. A
// missing entity surfaces as a structured not-found body, never a stack
// trace.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an error as a JSON response, mapping known sentinels to
// status codes.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := http.StatusInternalServerError
	message := "internal server error"

	if errors.Is(err, database.ErrNotFound) {
		status = http.StatusNotFound
		message = "not found"
	}

	if logger != nil {
		logger.Error("request error",
			"status", status,
			"path", r.URL.Path,
			"error", err.Error(),
		)
	}

	WriteJSON(w, status, ErrorResponse{Error: message})
}
