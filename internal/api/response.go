package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// apiError is the body of every error response.
type apiError struct {
	Error string `json:"error"`
}

// jsonResponse writes data as JSON with the given status. A nil data
// produces a bare status line.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// jsonError writes message in the standard error shape.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, apiError{Error: message})
}

// decodeJSON decodes a JSON request body into target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}
