package source

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/VPLOPES/brasil-macro-data/internal/domain/models"
	"github.com/VPLOPES/brasil-macro-data/internal/logger"
)

const sidraDefaultPeriods = 120

// sidraRow is one row of the SIDRA /values payload. The API returns an
// array of string maps; only the value, period code, and period name
// columns matter here.
type sidraRow struct {
	Value      string `json:"V"`
	PeriodCode string `json:"D3C"`
	PeriodName string `json:"D3N"`
}

// SidraClient fetches time series from the IBGE SIDRA aggregation API.
type SidraClient struct {
	client  *resty.Client
	baseURL string
}

// NewSidraClient builds a client for the SIDRA /values base URL with a
// bounded per-request timeout.
func NewSidraClient(baseURL string, timeout time.Duration) *SidraClient {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", userAgent)
	client.SetHeader("Accept", "application/json")

	return &SidraClient{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// FetchSeries returns the last `periods` observations of one SIDRA table
// variable at national level, ascending by date. The first payload row is
// a header and is skipped; malformed rows are dropped; any failure
// degrades to an empty slice.
func (c *SidraClient) FetchSeries(ctx context.Context, table, variable string, periods int) []models.ObservationPoint {
	if periods <= 0 {
		periods = sidraDefaultPeriods
	}

	// /d/v{var} 2 keeps two decimal places in the value column.
	url := fmt.Sprintf("%s/t/%s/n1/all/v/%s/p/last%%20%d/d/v%s%%202",
		c.baseURL, table, variable, periods, variable)

	resp, err := c.client.R().SetContext(ctx).Get(url)
	if err != nil {
		logger.L().Warn().Str("table", table).Err(err).Msg("sidra fetch failed")
		recordFetch("sidra", outcomeError)
		return nil
	}
	if resp.IsError() {
		logger.L().Warn().Str("table", table).Int("status", resp.StatusCode()).Msg("sidra fetch returned error status")
		recordFetch("sidra", outcomeError)
		return nil
	}

	var raw []sidraRow
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		logger.L().Warn().Str("table", table).Err(err).Msg("sidra returned non-array payload")
		recordFetch("sidra", outcomeError)
		return nil
	}
	if len(raw) <= 1 {
		recordFetch("sidra", outcomeEmpty)
		return nil
	}

	// Row 0 carries column titles, not data.
	points := processSidraData(raw[1:])
	if len(points) == 0 {
		recordFetch("sidra", outcomeEmpty)
	} else {
		recordFetch("sidra", outcomeOK)
	}
	return points
}

// processSidraData converts SIDRA rows into canonical observation points.
// Period codes come in two shapes: "YYYYMM" for monthly tables and
// "YYYYQ" for quarterly ones, where the quarter maps to its closing
// month. Anything else is dropped.
func processSidraData(raw []sidraRow) []models.ObservationPoint {
	points := make([]models.ObservationPoint, 0, len(raw))
	for _, item := range raw {
		value, err := strconv.ParseFloat(strings.TrimSpace(item.Value), 64)
		if err != nil {
			continue
		}

		var year, month int
		switch len(item.PeriodCode) {
		case 6: // monthly: YYYYMM
			year, err = strconv.Atoi(item.PeriodCode[:4])
			if err != nil {
				continue
			}
			month, err = strconv.Atoi(item.PeriodCode[4:])
			if err != nil || month < 1 || month > 12 {
				continue
			}
		case 5: // quarterly: YYYYQ
			year, err = strconv.Atoi(item.PeriodCode[:4])
			if err != nil {
				continue
			}
			quarter, qerr := strconv.Atoi(item.PeriodCode[4:])
			if qerr != nil || quarter < 1 || quarter > 4 {
				continue
			}
			month = quarter * 3
		default:
			continue
		}

		points = append(points, models.ObservationPoint{
			Date:       time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
			Value:      value,
			PeriodCode: item.PeriodCode,
			Year:       year,
			Month:      month,
		})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}
