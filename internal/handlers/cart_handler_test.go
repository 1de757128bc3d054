package handlers

import (
	"net/http"
	"testing"

	"github.com/Lixing-Zhang/grocify/internal/models"
	"github.com/Lixing-Zhang/grocify/internal/service"
)

func TestAddItem(t *testing.T) {
	r, _ := newTestRouter(t)
	id := createSession(t, r)
	path := "/api/sessions/" + id + "/cart/items"

	tests := []struct {
		name             string
		body             string
		expectedCode     int
		expectedQuantity int
		expectedMessage  string
	}{
		{
			name:             "add with quantity",
			body:             `{"product":"Milk","quantity":"2"}`,
			expectedCode:     http.StatusOK,
			expectedQuantity: 2,
			expectedMessage:  "Added 2 x Milk to shopping list",
		},
		{
			name:             "merge with existing line",
			body:             `{"product":"milk","quantity":"3"}`,
			expectedCode:     http.StatusOK,
			expectedQuantity: 5,
			expectedMessage:  "Updated Milk quantity to 5",
		},
		{
			name:             "unparseable quantity counts as one",
			body:             `{"product":"Milk","quantity":"lots"}`,
			expectedCode:     http.StatusOK,
			expectedQuantity: 6,
			expectedMessage:  "Updated Milk quantity to 6",
		},
		{
			name:         "missing product",
			body:         `{"quantity":"2"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "blank product",
			body:         `{"product":"   "}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown product",
			body:         `{"product":"Caviar"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         `{"product":`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodPost, path, tt.body)

			if w.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, w.Code)
			}
			if tt.expectedCode != http.StatusOK {
				if msg := errorMessage(t, w); msg == "" {
					t.Error("expected error message")
				}
				return
			}

			var view models.CartView
			decodeBody(t, w, &view)
			if len(view.Lines) != 1 || view.Lines[0].Quantity != tt.expectedQuantity {
				t.Errorf("expected single Milk line with quantity %d, got %+v", tt.expectedQuantity, view.Lines)
			}
			if view.Message != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, view.Message)
			}
		})
	}
}

func TestAddItem_UnknownSession(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/sessions/missing/cart/items", `{"product":"Milk"}`)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestUpdateItem(t *testing.T) {
	r, _ := newTestRouter(t)
	id := createSession(t, r)
	base := "/api/sessions/" + id + "/cart"

	doRequest(t, r, http.MethodPost, base+"/items", `{"product":"Carrot","quantity":"2"}`)
	doRequest(t, r, http.MethodPost, base+"/items", `{"product":"Ice Cream"}`)

	w := doRequest(t, r, http.MethodPut, base+"/items/Carrot", `{"quantity":"5"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var view models.CartView
	decodeBody(t, w, &view)
	if view.Lines[0].Product != "Carrot" || view.Lines[0].Quantity != 5 {
		t.Errorf("expected Carrot overwritten to 5, got %+v", view.Lines[0])
	}
	if view.TotalItems != 6 || view.LineCount != 2 {
		t.Errorf("expected 6 items in 2 lines, got %d in %d", view.TotalItems, view.LineCount)
	}

	w = doRequest(t, r, http.MethodPut, base+"/items/Ice%20Cream", `{"quantity":"0"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	view = models.CartView{}
	decodeBody(t, w, &view)
	if view.LineCount != 1 {
		t.Errorf("expected zero quantity to remove Ice Cream, got %+v", view.Lines)
	}
	if view.Message != "Ice Cream removed." {
		t.Errorf("expected removal message, got %q", view.Message)
	}

	w = doRequest(t, r, http.MethodPut, base+"/items/Caviar", `{"quantity":"2"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for unknown product, got %d", w.Code)
	}
}

func TestRemoveAndClear(t *testing.T) {
	r, _ := newTestRouter(t)
	id := createSession(t, r)
	base := "/api/sessions/" + id + "/cart"

	doRequest(t, r, http.MethodPost, base+"/items", `{"product":"Milk"}`)
	doRequest(t, r, http.MethodPost, base+"/items", `{"product":"Bread"}`)

	w := doRequest(t, r, http.MethodDelete, base+"/items/Milk", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var view models.CartView
	decodeBody(t, w, &view)
	if view.LineCount != 1 || view.Lines[0].Product != "Bread" {
		t.Errorf("expected only Bread left, got %+v", view.Lines)
	}

	w = doRequest(t, r, http.MethodDelete, base+"/items/Milk", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected removing an absent product to succeed, got %d", w.Code)
	}

	w = doRequest(t, r, http.MethodDelete, base, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	view = models.CartView{}
	decodeBody(t, w, &view)
	if view.LineCount != 0 || view.Message != service.MsgCartCleared {
		t.Errorf("expected cleared cart, got %+v", view)
	}

	w = doRequest(t, r, http.MethodGet, base, "")
	view = models.CartView{}
	decodeBody(t, w, &view)
	if view.Message != service.MsgCartEmpty {
		t.Errorf("expected %q, got %q", service.MsgCartEmpty, view.Message)
	}
	if view.Summary != "Total: 0 items (0 products)" {
		t.Errorf("unexpected summary %q", view.Summary)
	}
}
