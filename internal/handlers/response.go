package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/grocify/internal/service"
	"github.com/Lixing-Zhang/grocify/internal/shopping"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("failed to encode error response", "error", err)
	}
}

// writeServiceError maps service and domain errors to HTTP responses
func writeServiceError(w http.ResponseWriter, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		logger.Info("session not found", "error", err)
		WriteError(w, http.StatusNotFound, "Session not found", logger)
	case errors.Is(err, service.ErrListNotFound):
		logger.Info("list not found", "error", err)
		WriteError(w, http.StatusNotFound, "List not found", logger)
	case errors.Is(err, service.ErrInvalidProduct):
		logger.Warn("invalid product", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid product", logger)
	case errors.Is(err, shopping.ErrBlankListName):
		logger.Warn("blank list name", "error", err)
		WriteError(w, http.StatusBadRequest, service.MsgBlankListName, logger)
	case errors.Is(err, shopping.ErrEmptyCart):
		logger.Warn("save with empty cart", "error", err)
		WriteError(w, http.StatusBadRequest, service.MsgNothingToSave, logger)
	default:
		logger.Error("request failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
	}
}
