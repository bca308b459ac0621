package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newSidraTestClient(handler http.HandlerFunc) (*SidraClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewSidraClient(srv.URL, 2*time.Second)
	return c, srv
}

func TestSidraFetchSeries_Monthly(t *testing.T) {
	var gotPath string
	c, srv := newSidraTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`[
			{"V":"Valor","D3C":"Mês (Código)","D3N":"Mês"},
			{"V":"0.53","D3C":"202401","D3N":"janeiro 2024"},
			{"V":"0.83","D3C":"202402","D3N":"fevereiro 2024"},
			{"V":"...","D3C":"202403","D3N":"março 2024"}
		]`))
	})
	defer srv.Close()

	points := c.FetchSeries(context.Background(), "1737", "63", 12)
	if !strings.Contains(gotPath, "/t/1737/n1/all/v/63/p/last%2012/d/v63%202") {
		t.Fatalf("unexpected path %q", gotPath)
	}
	// Header row skipped, suppressed "..." value dropped.
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	p := points[0]
	if p.PeriodCode != "202401" || p.Year != 2024 || p.Month != 1 || p.Value != 0.53 {
		t.Fatalf("unexpected first point: %+v", p)
	}
	if !p.Date.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", p.Date)
	}
}

func TestSidraFetchSeries_Quarterly(t *testing.T) {
	c, srv := newSidraTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"V":"Valor","D3C":"Trimestre (Código)","D3N":"Trimestre"},
			{"V":"7.8","D3C":"20241","D3N":"1º trimestre 2024"},
			{"V":"6.9","D3C":"20242","D3N":"2º trimestre 2024"}
		]`))
	})
	defer srv.Close()

	points := c.FetchSeries(context.Background(), "6381", "4099", 8)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	// A quarter lands on its closing month.
	if points[0].Month != 3 || points[0].PeriodCode != "20241" {
		t.Fatalf("unexpected quarterly mapping: %+v", points[0])
	}
	if points[1].Month != 6 || points[1].Year != 2024 {
		t.Fatalf("unexpected quarterly mapping: %+v", points[1])
	}
}

func TestSidraFetchSeries_DegradesToEmpty(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name:    "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) },
		},
		{
			name: "non-json payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`Parâmetros incorretos`))
			},
		},
		{
			name: "header row only",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"V":"Valor","D3C":"Mês (Código)","D3N":"Mês"}]`))
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, srv := newSidraTestClient(tc.handler)
			defer srv.Close()
			if points := c.FetchSeries(context.Background(), "1737", "63", 12); len(points) != 0 {
				t.Fatalf("expected empty result, got %d points", len(points))
			}
		})
	}
}

func TestProcessSidraData_DropsUnknownPeriodShapes(t *testing.T) {
	points := processSidraData([]sidraRow{
		{Value: "1.0", PeriodCode: "2024"},    // too short
		{Value: "1.0", PeriodCode: "2024013"}, // too long
		{Value: "1.0", PeriodCode: "202413"},  // month out of range
		{Value: "1.0", PeriodCode: "20245"},   // quarter out of range
		{Value: "1.0", PeriodCode: "202412"},
	})
	if len(points) != 1 || points[0].Month != 12 {
		t.Fatalf("expected only the valid December row, got %+v", points)
	}
}
