// Package service contains the aggregation and calculation core: series
// aggregation, summary derivation, and compound monetary correction.
package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/VPLOPES/brasil-macro-data/internal/catalog"
	"github.com/VPLOPES/brasil-macro-data/internal/domain/models"
	"github.com/VPLOPES/brasil-macro-data/internal/logger"
	"github.com/VPLOPES/brasil-macro-data/internal/source"
)

// Fetch depths. Summaries deliberately use two windows: a short one for
// current/previous/change and a deep one for the accumulations, whose
// correctness depends on having a true 12-month / calendar-year window
// rather than whatever the display requested.
const (
	displayWindow      = 24
	accumulationWindow = 120
	correctionWindow   = 360

	minPeriods = 1
	maxPeriods = 360

	trailingMonths = 12
)

// Expected request-level failures. Handlers branch on these with
// errors.Is; anything else is an internal error.
var (
	ErrIndicatorNotFound = errors.New("indicator not found")
	ErrNoData            = errors.New("no data available for the requested period")
	ErrInvalidPeriods    = fmt.Errorf("periods must be between %d and %d", minPeriods, maxPeriods)
	ErrInvalidValue      = errors.New("value must be positive")
	ErrInvalidPeriodCode = errors.New("period must be a 6-digit YYYYMM code")
)

var periodCodeRe = regexp.MustCompile(`^\d{6}$`)

// IndicatorService exposes the aggregation and calculation operations
// consumed by the HTTP layer.
type IndicatorService interface {
	// List returns the full indicator catalog.
	List() []models.IndicatorDefinition

	// CorrectionIndices returns the indicators usable as correction indices.
	CorrectionIndices() []models.IndicatorDefinition

	// GetSeries returns the canonical series for a code, ascending by
	// date. An unknown code yields ErrIndicatorNotFound; a known code
	// with an unreachable upstream yields an empty series, not an error.
	GetSeries(ctx context.Context, code string, periods int) (*models.Series, error)

	// GetMultiple fetches several series concurrently, skipping unknown
	// codes rather than failing the batch.
	GetMultiple(ctx context.Context, codes []string, periods int) []models.Series

	// GetSummary derives the point-in-time summary for one indicator.
	GetSummary(ctx context.Context, code string) (*models.IndicatorSummary, error)

	// GetAllSummaries derives summaries for the headline dashboard
	// indicators, fetched concurrently.
	GetAllSummaries(ctx context.Context) []models.IndicatorSummary

	// Correct applies compound monetary correction of value between two
	// YYYYMM periods, de-compounding when the range is reversed.
	Correct(ctx context.Context, code string, value float64, startPeriod, endPeriod string) (*models.CorrectionResult, error)

	// ExportCSV renders one series as a downloadable CSV file.
	ExportCSV(ctx context.Context, code string, periods int) (*models.CSVExport, error)
}

type indicatorService struct {
	cat   *catalog.Catalog
	bcb   source.BCBSource
	sidra source.SidraSource

	// now is injectable so year-to-date math is testable.
	now func() time.Time
}

// NewIndicatorService wires the catalog and the upstream adapters into
// the calculation core.
func NewIndicatorService(cat *catalog.Catalog, bcb source.BCBSource, sidra source.SidraSource) IndicatorService {
	return &indicatorService{cat: cat, bcb: bcb, sidra: sidra, now: time.Now}
}

func (s *indicatorService) List() []models.IndicatorDefinition {
	return s.cat.List()
}

func (s *indicatorService) CorrectionIndices() []models.IndicatorDefinition {
	return s.cat.CorrectionIndices()
}

// fetchPoints dispatches to the routed adapter and re-sorts the result.
// Sorting here is mandatory: adapters are not trusted to preserve order.
func (s *indicatorService) fetchPoints(ctx context.Context, route catalog.SeriesRef, periods int) []models.ObservationPoint {
	var points []models.ObservationPoint
	switch route.Source {
	case catalog.SourceBCB:
		points = s.bcb.FetchSeries(ctx, route.BCBSeries, periods)
	case catalog.SourceIBGE:
		points = s.sidra.FetchSeries(ctx, route.SidraTable, route.SidraVariable, periods)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

func (s *indicatorService) GetSeries(ctx context.Context, code string, periods int) (*models.Series, error) {
	if periods < minPeriods || periods > maxPeriods {
		return nil, ErrInvalidPeriods
	}

	def, ok := s.cat.Resolve(code)
	if !ok {
		return nil, ErrIndicatorNotFound
	}
	route, _ := s.cat.Route(code)

	return &models.Series{
		Code:   def.Code,
		Name:   def.Name,
		Unit:   def.Unit,
		Points: s.fetchPoints(ctx, route, periods),
	}, nil
}

func (s *indicatorService) GetMultiple(ctx context.Context, codes []string, periods int) []models.Series {
	results := make([]*models.Series, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	for i, code := range codes {
		g.Go(func() error {
			series, err := s.GetSeries(gctx, code, periods)
			if err != nil {
				// Unknown codes are skipped, not fatal to the batch.
				logger.L().Debug().Str("code", code).Err(err).Msg("series skipped")
				return nil
			}
			results[i] = series
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.Series, 0, len(codes))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

func (s *indicatorService) GetSummary(ctx context.Context, code string) (*models.IndicatorSummary, error) {
	def, ok := s.cat.Resolve(code)
	if !ok {
		return nil, ErrIndicatorNotFound
	}
	route, _ := s.cat.Route(code)

	summary := &models.IndicatorSummary{IndicatorDefinition: def}

	points := s.fetchPoints(ctx, route, displayWindow)
	if len(points) == 0 {
		// Known indicator, no usable data: all derived fields stay nil.
		return summary, nil
	}

	current := points[len(points)-1]
	summary.CurrentValue = &current.Value
	summary.LastUpdate = &current.Date

	if len(points) > 1 {
		previous := points[len(points)-2]
		summary.PreviousValue = &previous.Value
		change := current.Value - previous.Value
		summary.Change = &change
	}

	if def.Compoundable {
		deep := s.fetchPoints(ctx, route, accumulationWindow)
		summary.Accumulated12M = accumulated(deep, trailingMonths)
		summary.AccumulatedYTD = accumulatedYTD(deep, s.now().Year())
	}

	return summary, nil
}

func (s *indicatorService) GetAllSummaries(ctx context.Context) []models.IndicatorSummary {
	codes := s.cat.MainCodes()
	results := make([]*models.IndicatorSummary, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	for i, code := range codes {
		g.Go(func() error {
			summary, err := s.GetSummary(gctx, code)
			if err != nil {
				logger.L().Warn().Str("code", code).Err(err).Msg("summary skipped")
				return nil
			}
			results[i] = summary
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.IndicatorSummary, 0, len(codes))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// accumulated compounds the trailing `months` points into a percentage:
// (Π(1 + v/100) − 1) × 100. Returns nil when the series is too short for
// a true trailing window.
func accumulated(points []models.ObservationPoint, months int) *float64 {
	if len(points) < months {
		return nil
	}

	factor := 1.0
	for _, p := range points[len(points)-months:] {
		factor *= 1 + p.Value/100
	}
	acc := (factor - 1) * 100
	return &acc
}

// accumulatedYTD compounds the points belonging to the given calendar
// year. Returns nil when the year has no observations yet.
func accumulatedYTD(points []models.ObservationPoint, year int) *float64 {
	factor := 1.0
	n := 0
	for _, p := range points {
		if p.Year == year {
			factor *= 1 + p.Value/100
			n++
		}
	}
	if n == 0 {
		return nil
	}
	acc := (factor - 1) * 100
	return &acc
}

func (s *indicatorService) Correct(ctx context.Context, code string, value float64, startPeriod, endPeriod string) (*models.CorrectionResult, error) {
	// Validation happens before any fetch is attempted.
	if value <= 0 {
		return nil, ErrInvalidValue
	}
	if !periodCodeRe.MatchString(startPeriod) || !periodCodeRe.MatchString(endPeriod) {
		return nil, ErrInvalidPeriodCode
	}
	if _, ok := s.cat.Resolve(code); !ok {
		return nil, ErrIndicatorNotFound
	}
	route, _ := s.cat.Route(code)

	// Lexical comparison is chronological comparison for YYYYMM codes.
	isReverse := startPeriod > endPeriod
	lo, hi := startPeriod, endPeriod
	if isReverse {
		lo, hi = endPeriod, startPeriod
	}

	points := s.fetchPoints(ctx, route, correctionWindow)

	window := points[:0:0]
	for _, p := range points {
		if p.PeriodCode >= lo && p.PeriodCode <= hi {
			window = append(window, p)
		}
	}
	if len(window) == 0 {
		// A correction over a window with zero data is meaningless; it
		// must fail explicitly, never default to an identity factor.
		return nil, ErrNoData
	}

	one := decimal.NewFromInt(1)
	hundred := decimal.NewFromInt(100)

	factor := one
	for _, p := range window {
		rate := decimal.NewFromFloat(p.Value).Div(hundred)
		factor = factor.Mul(one.Add(rate))
	}

	amount := decimal.NewFromFloat(value)
	var corrected decimal.Decimal
	if isReverse {
		// De-capitalization: how much would `value` today have been
		// worth back then.
		corrected = amount.Div(factor)
	} else {
		corrected = amount.Mul(factor)
	}

	return &models.CorrectionResult{
		OriginalValue:  value,
		CorrectedValue: corrected.InexactFloat64(),
		Factor:         factor.InexactFloat64(),
		PercentChange:  factor.Sub(one).Mul(hundred).InexactFloat64(),
		Months:         len(window),
		IsReverse:      isReverse,
	}, nil
}

func (s *indicatorService) ExportCSV(ctx context.Context, code string, periods int) (*models.CSVExport, error) {
	series, err := s.GetSeries(ctx, code, periods)
	if err != nil {
		return nil, err
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Data", fmt.Sprintf("%s (%s)", series.Name, series.Unit)})
	for _, p := range series.Points {
		_ = w.Write([]string{p.Date.Format("2006-01-02"), fmt.Sprintf("%g", p.Value)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}

	return &models.CSVExport{
		Filename: fmt.Sprintf("%s_%s.csv", series.Code, s.now().Format("2006-01-02")),
		Content:  buf.String(),
		MimeType: "text/csv",
	}, nil
}
