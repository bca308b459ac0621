package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/VPLOPES/brasil-macro-data/internal/domain/models"
	"github.com/VPLOPES/brasil-macro-data/internal/source"
)

// surveyedIndicators are the Focus survey names shown on the dashboard.
// These are upstream display names, not catalog codes.
var surveyedIndicators = []string{"IPCA", "PIB Total", "Selic", "Câmbio", "IGP-M"}

// focusHorizonYears limits projections to the current year plus three.
const focusHorizonYears = 3

// FocusService exposes Focus market expectation summaries.
type FocusService interface {
	// Summary returns, per surveyed indicator, the newest projection for
	// each reference year within the horizon. Indicators with no usable
	// rows are omitted.
	Summary(ctx context.Context) []models.FocusSummary

	// Expectations returns the raw survey rows for one indicator.
	Expectations(ctx context.Context, indicator string) []models.FocusExpectation
}

type focusService struct {
	src source.FocusSource
	now func() time.Time
}

// NewFocusService wires the Olinda adapter into the Focus summary logic.
func NewFocusService(src source.FocusSource) FocusService {
	return &focusService{src: src, now: time.Now}
}

func (s *focusService) Expectations(ctx context.Context, indicator string) []models.FocusExpectation {
	return s.src.FetchExpectations(ctx, indicator)
}

func (s *focusService) Summary(ctx context.Context) []models.FocusSummary {
	currentYear := s.now().Year()

	var out []models.FocusSummary
	for _, indicator := range surveyedIndicators {
		rows := s.src.FetchExpectations(ctx, indicator)
		if len(rows) == 0 {
			continue
		}

		// Rows arrive newest first, so the first row seen per reference
		// year is the latest survey round for that year.
		latest := make(map[int]models.YearProjection)
		for _, row := range rows {
			year, err := strconv.Atoi(row.ReferenceYear)
			if err != nil || year < currentYear || year > currentYear+focusHorizonYears {
				continue
			}
			if _, seen := latest[year]; seen {
				continue
			}
			latest[year] = models.YearProjection{
				Year:   year,
				Median: row.Median,
				Mean:   row.Mean,
				Min:    row.Min,
				Max:    row.Max,
			}
		}
		if len(latest) == 0 {
			continue
		}

		projections := make([]models.YearProjection, 0, len(latest))
		for _, p := range latest {
			projections = append(projections, p)
		}
		sort.Slice(projections, func(i, j int) bool { return projections[i].Year < projections[j].Year })

		out = append(out, models.FocusSummary{
			Indicator:   indicator,
			CurrentYear: currentYear,
			NextYear:    currentYear + 1,
			Projections: projections,
		})
	}
	return out
}
