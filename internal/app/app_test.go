package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VPLOPES/brasil-macro-data/config"
)

func overrideConfig(t *testing.T, bcbURL string) {
	t.Helper()
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })

	config.AppConfig = config.Config{
		Server: config.ServerConfig{Port: "0"},
		Upstream: config.UpstreamConfig{
			BCBBaseURL:   bcbURL + "/dados/serie/bcdata.sgs",
			SidraBaseURL: bcbURL,
			FocusBaseURL: bcbURL,
			BCBTimeout:   2 * time.Second,
			SidraTimeout: 2 * time.Second,
			FocusTimeout: 2 * time.Second,
		},
	}
}

func TestInitializeApp_HappyPath(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"data":"01/01/2024","valor":"11.25"}]`))
	}))
	defer upstream.Close()
	overrideConfig(t, upstream.URL)

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}
	defer cleanup()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", w.Code)
	}

	// Catalog endpoints need no upstream at all.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/indicators", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("indicators status=%d", w.Code)
	}
}

func TestInitializeApp_ReadyzDegradedWhenUpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()
	overrideConfig(t, upstream.URL)

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}
	defer cleanup()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 from readyz, got %d", w.Code)
	}
}
