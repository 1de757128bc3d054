package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/grocify/internal/models"
	"github.com/Lixing-Zhang/grocify/internal/service"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	sessions *service.SessionService
	log      *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessions *service.SessionService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		log:      log,
	}
}

// GetCart handles GET /api/sessions/{sessionId}/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.Cart(r.Context(), pathParam(r, "sessionId"))
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// AddItem handles POST /api/sessions/{sessionId}/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddItemRequest

	if err := decodeJSON(r, &req); err != nil {
		h.log.Error("failed to decode add item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if err := validateRequest(&req); err != nil {
		h.log.Warn("invalid add item request", "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	view, err := h.sessions.AddToCart(r.Context(), pathParam(r, "sessionId"), req.Product, req.Quantity)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// UpdateItem handles PUT /api/sessions/{sessionId}/cart/items/{product}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req models.QuantityRequest

	if err := decodeJSON(r, &req); err != nil {
		h.log.Error("failed to decode quantity request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	view, err := h.sessions.UpdateCartQuantity(r.Context(), pathParam(r, "sessionId"), pathParam(r, "product"), req.Quantity)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// RemoveItem handles DELETE /api/sessions/{sessionId}/cart/items/{product}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.RemoveFromCart(r.Context(), pathParam(r, "sessionId"), pathParam(r, "product"))
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// ClearCart handles DELETE /api/sessions/{sessionId}/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.ClearCart(r.Context(), pathParam(r, "sessionId"))
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}
