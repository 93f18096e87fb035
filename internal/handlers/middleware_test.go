package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	h, _ := setupTestHandler(t)
	r := setupTestRouter(h)

	t.Run("Generated When Absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Proxy Id Honored", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		req.Header.Set("X-Request-ID", "proxy-id-42")
		r.ServeHTTP(w, req)

		assert.Equal(t, "proxy-id-42", w.Header().Get("X-Request-ID"))
	})
}

func TestAuthRequired(t *testing.T) {
	h, _ := setupTestHandler(t)
	r := setupTestRouter(h)

	adminEndpoints := []struct {
		method string
		path   string
	}{
		{"GET", "/api/admin/stats"},
		{"POST", "/api/admin/links"},
		{"PUT", "/api/admin/links/1"},
		{"DELETE", "/api/admin/links/1"},
		{"GET", "/api/admin/promo-events"},
		{"GET", "/api/admin/promo-events/active"},
		{"POST", "/api/admin/promo-events"},
		{"PUT", "/api/admin/promo-events/1"},
		{"DELETE", "/api/admin/promo-events/1"},
		{"GET", "/api/admin/export/telegram"},
	}

	for _, ep := range adminEndpoints {
		t.Run(ep.method+" "+ep.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(ep.method, ep.path, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
		})
	}
}

func TestHealth(t *testing.T) {
	h, _ := setupTestHandler(t)
	r := setupTestRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}
