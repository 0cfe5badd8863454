package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// envelope mirrors the api.Response shape for transport-level failures
// (bad JSON, missing auth) that never reach an API operation.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// writeJSON writes data as JSON with the given status code.
func writeJSON(log zerolog.Logger, w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// writeError writes a transport-level error envelope.
func writeError(log zerolog.Logger, w http.ResponseWriter, statusCode int, message string) {
	writeJSON(log, w, statusCode, envelope{Success: false, Error: message})
}
