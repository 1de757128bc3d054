package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/grocify/internal/models"
	"github.com/Lixing-Zhang/grocify/internal/repository"
	"github.com/Lixing-Zhang/grocify/internal/service"
	"github.com/Lixing-Zhang/grocify/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// newTestRouter wires every handler onto a chi router the same way the server does
func newTestRouter(t *testing.T) (*chi.Mux, *service.SessionService) {
	t.Helper()

	log := logger.NewWithWriter(io.Discard, "error")
	repo := repository.NewInMemoryCatalogRepository()

	n := 0
	svc := service.NewSessionService(repo, log, service.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))

	catalogHandler := NewCatalogHandler(repo, log)
	sessionHandler := NewSessionHandler(svc, log)
	cartHandler := NewCartHandler(svc, log)
	listHandler := NewListHandler(svc, log)

	r := chi.NewRouter()
	r.Get("/health", NewHealthHandler(svc, log).ServeHTTP)
	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", catalogHandler.ListCategories)
		r.Get("/categories/{category}", catalogHandler.GetCategory)

		r.Post("/sessions", sessionHandler.CreateSession)
		r.Route("/sessions/{sessionId}", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Delete("/", sessionHandler.EndSession)
			r.Get("/products", sessionHandler.VisibleProducts)
			r.Post("/categories/{category}/toggle", sessionHandler.ToggleCategory)

			r.Get("/cart", cartHandler.GetCart)
			r.Delete("/cart", cartHandler.ClearCart)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Put("/cart/items/{product}", cartHandler.UpdateItem)
			r.Delete("/cart/items/{product}", cartHandler.RemoveItem)

			r.Post("/lists", listHandler.SaveList)
			r.Get("/lists", listHandler.ListLists)
			r.Get("/lists/{listId}", listHandler.GetList)
			r.Delete("/lists/{listId}", listHandler.DeleteList)
			r.Post("/lists/{listId}/items/{item}/toggle", listHandler.ToggleItem)
			r.Put("/lists/{listId}/items/{item}", listHandler.UpdateItem)
		})
	})

	return r, svc
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var response map[string]string
	decodeBody(t, w, &response)
	return response["error"]
}

// createSession starts a session through the API and returns its id
func createSession(t *testing.T, h http.Handler) string {
	t.Helper()
	w := doRequest(t, h, http.MethodPost, "/api/sessions", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: expected status 201, got %d", w.Code)
	}
	var view models.SessionView
	decodeBody(t, w, &view)
	return view.ID
}
