package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/grocify/internal/repository"
	"github.com/Lixing-Zhang/grocify/internal/shopping"
)

// CatalogHandler serves the static product catalog
type CatalogHandler struct {
	catalog repository.CatalogRepository
	log     *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog repository.CatalogRepository, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		log:     log,
	}
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		h.log.Error("failed to list categories", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, categories, h.log)
}

// GetCategory handles GET /api/categories/{category}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "category")

	category, ok := shopping.ParseCategory(name)
	if !ok {
		h.log.Warn("unknown category", "category", name)
		WriteError(w, http.StatusNotFound, "Category not found", h.log)
		return
	}

	result, err := h.catalog.GetCategory(r.Context(), category)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			WriteError(w, http.StatusNotFound, "Category not found", h.log)
			return
		}
		h.log.Error("failed to get category", "error", err, "category", name)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, result, h.log)
}
