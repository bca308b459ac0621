package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/VPLOPES/brasil-macro-data/internal/domain/models"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &mockIndicatorService{list: []models.IndicatorDefinition{{Code: "IPCA", Name: "IPCA"}}}
	r := NewRouter(NewHandler(svc, &mockFocusService{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/indicators", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// RequestID middleware must stamp every response.
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var out []models.IndicatorDefinition
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(out) != 1 || out[0].Code != "IPCA" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestNewRouter_StaticAndParamRoutesCoexist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &mockIndicatorService{
		summaries: []models.IndicatorSummary{{IndicatorDefinition: models.IndicatorDefinition{Code: "SELIC"}}},
		summary:   &models.IndicatorSummary{IndicatorDefinition: models.IndicatorDefinition{Code: "IPCA"}},
	}
	r := NewRouter(NewHandler(svc, &mockFocusService{}))

	// /indicators/summary must reach the batch handler, not the :code one.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/indicators/summary", nil))
	var batch []models.IndicatorSummary
	if err := json.Unmarshal(w.Body.Bytes(), &batch); err != nil || len(batch) != 1 {
		t.Fatalf("batch route: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/indicators/IPCA/summary", nil))
	var single models.IndicatorSummary
	if err := json.Unmarshal(w.Body.Bytes(), &single); err != nil || single.Code != "IPCA" {
		t.Fatalf("param route: %d %s", w.Code, w.Body.String())
	}
}

func TestNewRouter_MetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := NewRouter(NewHandler(&mockIndicatorService{}, &mockFocusService{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", w.Code)
	}
}
