package router

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/lusunpay/internal/server/http/middleware"
	"github.com/polkiloo/lusunpay/internal/test/httpstub"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(httpstub.PaymentFacadeStub{}, httpstub.MetricsStub{}, logger)
}

func TestSetupRoutes(t *testing.T) {
	engine := newEngine()

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/api/orders", "", http.StatusOK},
		{http.MethodPost, "/api/orders", `{"projectName":"Design","details":"Logo","amount":"1000"}`, http.StatusCreated},
		{http.MethodGet, "/api/orders/LS-20240101-001", "", http.StatusOK},
		{http.MethodPost, "/api/orders/LS-20240101-001/invoice", `{"type":"GENERAL","companyName":"Acme","taxId":"1","email":"a@b"}`, http.StatusOK},
		{http.MethodGet, "/api/orders/LS-20240101-001/invoice/document", "", http.StatusOK},
		{http.MethodGet, "/api/balance", "", http.StatusOK},
		{http.MethodGet, "/api/withdrawal/quote", "", http.StatusOK},
		{http.MethodPost, "/api/withdrawal", `{"name":"Li Lei","idNumber":"1234"}`, http.StatusOK},
		{http.MethodGet, "/api/billing", "", http.StatusOK},
		{http.MethodGet, "/api/receiving-account", "", http.StatusOK},
		{http.MethodGet, "/api/admin/orders?q=LS", "", http.StatusOK},
		{http.MethodPost, "/api/admin/orders/LS-20240101-001/confirm-payment", "", http.StatusOK},
		{http.MethodPost, "/api/admin/orders/LS-20240101-001/send-invoice", "", http.StatusOK},
		{http.MethodPost, "/api/debug/reset", "", http.StatusNoContent},
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = bytes.NewBufferString(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			resp := httptest.NewRecorder()
			engine.ServeHTTP(resp, req)
			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, resp.Code, resp.Body.String())
			}
			if resp.Header().Get(middleware.RequestIDHeader) == "" {
				t.Fatalf("expected request id header")
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	engine := newEngine()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "lusunpay_stub_total 1") {
		t.Fatalf("metrics must be served uncompressed, got %q", resp.Body.String())
	}
}

func TestResponsesAreCompressed(t *testing.T) {
	engine := newEngine()

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, got headers %v", resp.Header())
	}
}
