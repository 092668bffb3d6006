package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/aaronwr/promptdeck/internal/store"
)

// ErrorResponse is the standard error body for all API endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeError writes a JSON error response with the given HTTP status code.
func writeError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Code: code})
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeStoreError maps store errors onto the API error taxonomy. Anything
// that is not a validation, duplicate, schema, or position error is treated
// as storage being unavailable.
func writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, store.ErrTitleRequired),
		errors.Is(err, store.ErrContentRequired):
		writeError(w, http.StatusBadRequest, err.Error(), "VALIDATION")
	case errors.Is(err, store.ErrInvalidType):
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_TYPE")
	case errors.Is(err, store.ErrDuplicateElement):
		writeError(w, http.StatusConflict, err.Error(), "DUPLICATE")
	case errors.Is(err, store.ErrMissingColumns):
		writeError(w, http.StatusBadRequest, err.Error(), "SCHEMA")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
	default:
		log.Printf("api: %s: %v", op, err)
		writeError(w, http.StatusInternalServerError, "storage unavailable", "STORAGE_ERROR")
	}
}
