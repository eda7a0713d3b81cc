// Package http is the transaction API gateway: it parses requests,
// applies the core value rules, dispatches to the services and writes
// the uniform {status: ...} JSON envelope.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"wallet/internal/core"
	"wallet/internal/log"
	"wallet/internal/middleware/trace"
)

type envelope map[string]any

func writeJSON(w http.ResponseWriter, statusCode int, payload envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeSuccess merges extra fields into a success envelope.
func writeSuccess(w http.ResponseWriter, statusCode int, extra envelope) {
	payload := envelope{"status": "success"}
	for k, v := range extra {
		payload[k] = v
	}
	writeJSON(w, statusCode, payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, envelope{"status": "error", "message": message})
}

func writeFieldError(w http.ResponseWriter, statusCode int, ve *core.ValidationError) {
	writeJSON(w, statusCode, envelope{
		"status":  "error",
		"message": ve.Reason,
		"field":   ve.Field,
	})
}

// respondError maps a service error onto the envelope and status code.
// Validation and category errors are the caller's fault (400), missing
// records are 404, anything else is a 500 with a short message and the
// detail only in the log.
func respondError(ctx context.Context, w http.ResponseWriter, err error, notFoundMsg, fallback string) {
	if ve, ok := core.AsValidation(err); ok {
		writeFieldError(w, http.StatusBadRequest, ve)
		return
	}
	if errors.Is(err, core.ErrCategoryNotFound) {
		writeError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}
	if errors.Is(err, core.ErrNotFound) {
		writeError(w, http.StatusNotFound, notFoundMsg)
		return
	}

	log.FromContext(ctx).ErrorContext(ctx, "Request failed",
		"request_id", trace.GetRequestID(ctx), "error", err)
	writeError(w, http.StatusInternalServerError, fallback)
}

func writeMethodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
