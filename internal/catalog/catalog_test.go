package catalog

import "testing"

func TestResolve(t *testing.T) {
	c := New()

	def, ok := c.Resolve("IPCA")
	if !ok {
		t.Fatalf("IPCA should resolve")
	}
	if def.Code != "IPCA" || def.Source != "ibge" || def.Category != "inflation" || !def.Compoundable {
		t.Fatalf("unexpected definition: %+v", def)
	}

	if _, ok := c.Resolve("UNKNOWN_CODE"); ok {
		t.Fatalf("unknown code must not resolve")
	}
}

// Every cataloged indicator must have exactly one usable route: either a
// BCB series code or a SIDRA table+variable pair, matching its source tag.
func TestRoutingIsTotal(t *testing.T) {
	c := New()

	for _, def := range c.List() {
		route, ok := c.Route(def.Code)
		if !ok {
			t.Fatalf("%s: no route", def.Code)
		}
		switch route.Source {
		case SourceBCB:
			if def.Source != "bcb" || route.BCBSeries == "" || route.SidraTable != "" {
				t.Fatalf("%s: inconsistent BCB route %+v", def.Code, route)
			}
		case SourceIBGE:
			if def.Source != "ibge" || route.SidraTable == "" || route.SidraVariable == "" || route.BCBSeries != "" {
				t.Fatalf("%s: inconsistent SIDRA route %+v", def.Code, route)
			}
		default:
			t.Fatalf("%s: unknown source %q", def.Code, route.Source)
		}
	}
}

func TestCorrectionIndices(t *testing.T) {
	c := New()

	want := map[string]bool{"IPCA": true, "INPC": true, "IGP_M": true, "SELIC": true, "CDI": true}
	got := c.CorrectionIndices()
	if len(got) != len(want) {
		t.Fatalf("expected %d correction indices, got %d", len(want), len(got))
	}
	for _, def := range got {
		if !want[def.Code] {
			t.Fatalf("unexpected correction index %s", def.Code)
		}
		if !def.Compoundable {
			t.Fatalf("%s returned as correction index but not compoundable", def.Code)
		}
	}

	// Level-valued indicators must never be compoundable.
	for _, code := range []string{"USD_BRL", "EUR_BRL", "IBC_BR", "UNEMPLOYMENT"} {
		def, _ := c.Resolve(code)
		if def.Compoundable {
			t.Fatalf("%s must not be compoundable", code)
		}
	}
}

func TestMainCodesAreCataloged(t *testing.T) {
	c := New()
	for _, code := range c.MainCodes() {
		if _, ok := c.Resolve(code); !ok {
			t.Fatalf("main code %s missing from catalog", code)
		}
	}
}

func TestListOrderStable(t *testing.T) {
	c := New()
	list := c.List()
	if len(list) == 0 {
		t.Fatalf("empty catalog")
	}
	if list[0].Code != "IPCA" {
		t.Fatalf("expected IPCA first, got %s", list[0].Code)
	}
	seen := make(map[string]bool, len(list))
	for _, def := range list {
		if seen[def.Code] {
			t.Fatalf("duplicate code %s", def.Code)
		}
		seen[def.Code] = true
	}
}
