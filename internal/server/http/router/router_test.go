package router

import (
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/polkiloo/webshop/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/webshop/internal/test"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)
	return Setup(testhelpers.WebShopFacadeStub{}, logger, metrics, registry)
}

func performRequest(t *testing.T, engine *gin.Engine, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestSetupRoutes(t *testing.T) {
	engine := newTestRouter(t)

	tests := []struct {
		method string
		target string
		status int
	}{
		{http.MethodGet, "/api/orders", http.StatusOK},
		{http.MethodGet, "/api/customers", http.StatusOK},
		{http.MethodGet, "/api/clothes-items", http.StatusOK},
		{http.MethodGet, "/api/clothes-types", http.StatusOK},
		{http.MethodPost, "/api/customers/sync", http.StatusOK},
		{http.MethodDelete, "/api/orders/not-a-uuid", http.StatusBadRequest},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tc := range tests {
		resp := performRequest(t, engine, tc.method, tc.target, nil)
		if resp.Code != tc.status {
			t.Fatalf("%s %s: expected status %d, got %d", tc.method, tc.target, tc.status, resp.Code)
		}
	}
}

func TestResponsesAreCompressed(t *testing.T) {
	engine := newTestRouter(t)

	resp := performRequest(t, engine, http.MethodGet, "/api/orders", map[string]string{"Accept-Encoding": "gzip"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoded response, got %q", resp.Header().Get("Content-Encoding"))
	}

	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("failed to create gzip reader: %v", err)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if !strings.Contains(string(body), "totalPrice") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	performRequest(t, engine, http.MethodGet, "/api/orders", nil)

	resp := performRequest(t, engine, http.MethodGet, "/metrics", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "webshop_http_requests_total") {
		t.Fatalf("expected request counter in metrics output")
	}
}
