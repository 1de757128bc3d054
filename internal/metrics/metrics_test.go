package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ShoppingCounters(t *testing.T) {
	c := NewCollector("grocify")

	c.SessionCreated()
	c.SessionCreated()
	c.SessionEnded(true)
	c.CartAdded(3)
	c.CartAdded(2)
	c.CartCleared()
	c.ListSaved()
	c.ListDeleted()
	c.ItemToggled()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.SessionsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SessionsExpired))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ActiveSessions))
	assert.Equal(t, 5.0, testutil.ToFloat64(c.CartUnitsAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.CartsCleared))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ListsSaved))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ListsDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ItemsToggled))
}

func TestCollector_SessionEndedWithoutExpiry(t *testing.T) {
	c := NewCollector("grocify")

	c.SessionCreated()
	c.SessionEnded(false)

	assert.Equal(t, 0.0, testutil.ToFloat64(c.SessionsExpired))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.ActiveSessions))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector("grocify")
	c.ObserveRequest(http.MethodGet, "/api/categories", http.StatusOK, 20*time.Millisecond)

	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `grocify_http_requests_total{method="GET",route="/api/categories",status="200"} 1`), body)
	assert.Contains(t, body, "grocify_http_request_duration_seconds")
}
