package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newFocusTestClient(handler http.HandlerFunc) (*FocusClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewFocusClient(srv.URL, 2*time.Second)
	return c, srv
}

func TestFocusFetchExpectations(t *testing.T) {
	var gotQuery map[string][]string
	c, srv := newFocusTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value":[
			{"Indicador":"IPCA","Data":"2024-06-14","DataReferencia":"2024","Mediana":3.96,"Media":3.98,"Minimo":3.5,"Maximo":4.5,"numeroRespondentes":90},
			{"Indicador":"IPCA","Data":"2024-06-14","DataReferencia":"2025","Mediana":3.80,"Media":3.82,"Minimo":3.2,"Maximo":4.4,"numeroRespondentes":88}
		]}`))
	})
	defer srv.Close()

	rows := c.FetchExpectations(context.Background(), "IPCA")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if got := gotQuery["$filter"]; len(got) != 1 || got[0] != "Indicador eq 'IPCA'" {
		t.Fatalf("unexpected $filter: %v", got)
	}
	if got := gotQuery["$orderby"]; len(got) != 1 || got[0] != "Data desc" {
		t.Fatalf("unexpected $orderby: %v", got)
	}
	if rows[0].ReferenceYear != "2024" || rows[0].Median != 3.96 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
}

func TestFocusFetchExpectations_NoFilterWhenUnset(t *testing.T) {
	var hasFilter bool
	c, srv := newFocusTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, hasFilter = r.URL.Query()["$filter"]
		_, _ = w.Write([]byte(`{"value":[]}`))
	})
	defer srv.Close()

	if rows := c.FetchExpectations(context.Background(), ""); rows != nil {
		t.Fatalf("expected nil for empty envelope, got %v", rows)
	}
	if hasFilter {
		t.Fatalf("empty indicator must not produce a $filter clause")
	}
}

func TestFocusFetchExpectations_DegradesToEmpty(t *testing.T) {
	c, srv := newFocusTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	if rows := c.FetchExpectations(context.Background(), "Selic"); len(rows) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(rows))
	}
}
