package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/Homestead_Go/internal/domain"
	"github.com/osse101/Homestead_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// UnknownCropResponse is returned when a crop name cannot be resolved
type UnknownCropResponse struct {
	Error       string   `json:"error"`
	Crop        string   `json:"crop"`
	Suggestions []string `json:"suggestions"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error(LogMsgEncodeFailed, "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteBufferFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and maps it to a status code
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgActionFailed, "op", op, "error", err)
	} else {
		log.Info(LogMsgActionFailed, "op", op, "error", err)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// user-facing messages. Anything unrecognised is a 500 with a generic message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFound
	case errors.Is(err, domain.ErrPlotNotFound):
		return http.StatusNotFound, ErrMsgPlotNotFound
	case errors.Is(err, domain.ErrUnknownCrop):
		return http.StatusBadRequest, ErrMsgUnknownCrop
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
