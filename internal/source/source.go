// Package source contains the upstream adapters: one client per public
// API the dashboard aggregates (BCB SGS, IBGE SIDRA, BCB Olinda/Focus).
//
// Every adapter translates its source-specific wire format (local date
// strings, string-encoded decimals, period codes) into the canonical
// models.ObservationPoint and degrades to an empty result on any network
// or format failure. The dashboard must never fail a whole view because
// one upstream is down: callers treat "no data" and "fetch error"
// identically, and failures are only visible through logs and metrics.
package source

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/VPLOPES/brasil-macro-data/internal/domain/models"
)

const userAgent = "BrasilMacroData/1.0"

const (
	outcomeOK    = "ok"
	outcomeError = "error"
	outcomeEmpty = "empty"
)

var fetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "upstream_fetches_total",
		Help: "Total number of upstream API fetches by source and outcome",
	},
	[]string{"source", "outcome"},
)

func recordFetch(src, outcome string) {
	fetchesTotal.WithLabelValues(src, outcome).Inc()
}

// BCBSource fetches one BCB SGS series. Implementations never return an
// error: upstream failure yields an empty slice.
type BCBSource interface {
	FetchSeries(ctx context.Context, seriesCode string, periods int) []models.ObservationPoint
}

// SidraSource fetches one IBGE SIDRA table variable.
type SidraSource interface {
	FetchSeries(ctx context.Context, table, variable string, periods int) []models.ObservationPoint
}

// FocusSource fetches BCB Focus market expectations, optionally filtered
// by surveyed indicator name.
type FocusSource interface {
	FetchExpectations(ctx context.Context, indicator string) []models.FocusExpectation
}
