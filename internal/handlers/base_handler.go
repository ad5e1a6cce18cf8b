package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// APIResponse is the envelope every JSON endpoint uses
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondData sends a success envelope with the given payload
func (h *BaseHandler) RespondData(w http.ResponseWriter, status int, data any) {
	h.RespondJSON(w, status, APIResponse{Success: true, Data: data})
}

// RespondError sends an error envelope
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, APIResponse{Success: false, Error: message})
}
