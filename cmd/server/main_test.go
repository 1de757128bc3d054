package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Lixing-Zhang/grocify/internal/config"
	"github.com/Lixing-Zhang/grocify/internal/metrics"
	"github.com/Lixing-Zhang/grocify/internal/models"
	"github.com/Lixing-Zhang/grocify/internal/repository"
	"github.com/Lixing-Zhang/grocify/internal/service"
	"github.com/Lixing-Zhang/grocify/pkg/logger"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	log := logger.NewWithWriter(io.Discard, "error")
	collector := metrics.NewCollector("grocify")
	repo := repository.NewInMemoryCatalogRepository()
	svc := service.NewSessionService(repo, log, service.WithRecorder(collector))
	return newRouter(config.Default(), log, repo, svc, collector)
}

func send(t *testing.T, h http.Handler, method, path, body string, withKey bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if withKey {
		req.Header.Set("api_key", "apitest")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	h := newTestServer(t)

	if w := send(t, h, http.MethodGet, "/api/categories", "", false); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if w := send(t, h, http.MethodGet, "/api/categories", "", true); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if w := send(t, h, http.MethodGet, "/health", "", false); w.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200 without key", w.Code)
	}
}

func TestRouter_ShoppingFlowUpdatesMetrics(t *testing.T) {
	h := newTestServer(t)

	w := send(t, h, http.MethodPost, "/api/sessions", "", true)
	if w.Code != http.StatusCreated {
		t.Fatalf("create session status = %d, want 201", w.Code)
	}
	var session models.SessionView
	if err := json.NewDecoder(w.Body).Decode(&session); err != nil {
		t.Fatalf("failed to decode session: %v", err)
	}
	base := "/api/sessions/" + session.ID

	send(t, h, http.MethodPost, base+"/cart/items", `{"product":"Milk","quantity":"2"}`, true)
	send(t, h, http.MethodPost, base+"/cart/items", `{"product":"Bread"}`, true)

	w = send(t, h, http.MethodPost, base+"/lists", `{"name":"Weekly"}`, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("save list status = %d, want 201", w.Code)
	}

	w = send(t, h, http.MethodGet, "/metrics", "", false)
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status = %d, want 200", w.Code)
	}
	body := w.Body.String()

	for _, want := range []string{
		"grocify_sessions_created_total 1",
		"grocify_cart_units_added_total 3",
		"grocify_lists_saved_total 1",
		`route="/api/sessions/{sessionId}/cart/items"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
