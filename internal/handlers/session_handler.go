package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/grocify/internal/service"
	"github.com/Lixing-Zhang/grocify/internal/shopping"
)

// SessionHandler handles session lifecycle and category filtering
type SessionHandler struct {
	sessions *service.SessionService
	log      *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *service.SessionService, log *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		log:      log,
	}
}

// CreateSession handles POST /api/sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.CreateSession(r.Context())
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusCreated, view, h.log)
}

// GetSession handles GET /api/sessions/{sessionId}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.GetSession(r.Context(), pathParam(r, "sessionId"))
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// EndSession handles DELETE /api/sessions/{sessionId}
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.EndSession(r.Context(), pathParam(r, "sessionId")); err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// VisibleProducts handles GET /api/sessions/{sessionId}/products
func (h *SessionHandler) VisibleProducts(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.VisibleProducts(r.Context(), pathParam(r, "sessionId"))
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// ToggleCategory handles POST /api/sessions/{sessionId}/categories/{category}/toggle
func (h *SessionHandler) ToggleCategory(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "category")

	category, ok := shopping.ParseCategory(name)
	if !ok {
		h.log.Warn("unknown category", "category", name)
		WriteError(w, http.StatusBadRequest, "Unknown category", h.log)
		return
	}

	view, err := h.sessions.ToggleCategory(r.Context(), pathParam(r, "sessionId"), category)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}
