package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/grocify/internal/models"
	"github.com/Lixing-Zhang/grocify/internal/service"
)

// ListHandler handles saved shopping lists
type ListHandler struct {
	sessions *service.SessionService
	log      *slog.Logger
}

// NewListHandler creates a new list handler
func NewListHandler(sessions *service.SessionService, log *slog.Logger) *ListHandler {
	return &ListHandler{
		sessions: sessions,
		log:      log,
	}
}

// SaveList handles POST /api/sessions/{sessionId}/lists
func (h *ListHandler) SaveList(w http.ResponseWriter, r *http.Request) {
	var req models.SaveListRequest

	if err := decodeJSON(r, &req); err != nil {
		h.log.Error("failed to decode save list request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if err := validateRequest(&req); err != nil {
		h.log.Warn("invalid save list request", "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	view, err := h.sessions.SaveList(r.Context(), pathParam(r, "sessionId"), req.Name)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusCreated, view, h.log)
}

// ListLists handles GET /api/sessions/{sessionId}/lists
func (h *ListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.Lists(r.Context(), pathParam(r, "sessionId"))
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// GetList handles GET /api/sessions/{sessionId}/lists/{listId}
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.GetList(r.Context(), pathParam(r, "sessionId"), pathParam(r, "listId"))
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// DeleteList handles DELETE /api/sessions/{sessionId}/lists/{listId}
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.DeleteList(r.Context(), pathParam(r, "sessionId"), pathParam(r, "listId"))
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// ToggleItem handles POST /api/sessions/{sessionId}/lists/{listId}/items/{item}/toggle
func (h *ListHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.ToggleListItem(r.Context(), pathParam(r, "sessionId"), pathParam(r, "listId"), pathParam(r, "item"))
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// UpdateItem handles PUT /api/sessions/{sessionId}/lists/{listId}/items/{item}
func (h *ListHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req models.QuantityRequest

	if err := decodeJSON(r, &req); err != nil {
		h.log.Error("failed to decode quantity request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	view, err := h.sessions.UpdateListItemQuantity(r.Context(), pathParam(r, "sessionId"), pathParam(r, "listId"), pathParam(r, "item"), req.Quantity)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}
