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

const (
	bcbDateLayout = "02/01/2006" // DD/MM/YYYY
	bcbLastNMax   = 20           // hard upstream cap on the /ultimos endpoint
)

// dailySeries lists SGS series observed per business day rather than per
// month. The /ultimos endpoint is useless for them (20 daily points cover
// less than a month), so they are fetched by explicit date range instead.
var dailySeries = map[string]bool{
	"1":     true, // Dólar comercial (antiga)
	"11":    true, // Taxa SELIC diária
	"10813": true, // Dólar comercial venda (PTAX)
	"10814": true, // Dólar comercial compra (PTAX)
	"21619": true, // Euro
}

// bcbObservation is one row of the SGS JSON payload. Both fields arrive
// as strings; parsing and validation happen here, the upstream is not
// trusted to pre-validate.
type bcbObservation struct {
	Date  string `json:"data"`
	Value string `json:"valor"`
}

// BCBClient fetches time series from the Banco Central do Brasil SGS API.
type BCBClient struct {
	client  *resty.Client
	baseURL string
}

// NewBCBClient builds a client for the given SGS base URL (up to and
// including "bcdata.sgs") with a bounded per-request timeout.
func NewBCBClient(baseURL string, timeout time.Duration) *BCBClient {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", userAgent)
	client.SetHeader("Accept", "application/json")

	return &BCBClient{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// FetchSeries returns up to the last `periods` observations of one SGS
// series, ascending by date. Malformed rows are dropped; any network or
// format failure degrades to an empty slice.
//
// Monthly series go through /ultimos/{n}, which the upstream caps at 20
// items. Daily series are fetched over a fixed two-year date range and
// then trimmed to the requested count.
func (c *BCBClient) FetchSeries(ctx context.Context, seriesCode string, periods int) []models.ObservationPoint {
	var url string
	if dailySeries[seriesCode] {
		end := time.Now()
		start := end.AddDate(-2, 0, 0)
		url = fmt.Sprintf("%s.%s/dados?formato=json&dataInicial=%s&dataFinal=%s",
			c.baseURL, seriesCode, start.Format(bcbDateLayout), end.Format(bcbDateLayout))
	} else {
		limit := periods
		if limit <= 0 || limit > bcbLastNMax {
			limit = bcbLastNMax
		}
		url = fmt.Sprintf("%s.%s/dados/ultimos/%d?formato=json", c.baseURL, seriesCode, limit)
	}

	resp, err := c.client.R().SetContext(ctx).Get(url)
	if err != nil {
		logger.L().Warn().Str("series", seriesCode).Err(err).Msg("bcb fetch failed")
		recordFetch("bcb", outcomeError)
		return nil
	}
	if resp.IsError() {
		logger.L().Warn().Str("series", seriesCode).Int("status", resp.StatusCode()).Msg("bcb fetch returned error status")
		recordFetch("bcb", outcomeError)
		return nil
	}

	var raw []bcbObservation
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		// SGS answers some errors with an HTML page and status 200.
		logger.L().Warn().Str("series", seriesCode).Err(err).Msg("bcb returned non-array payload")
		recordFetch("bcb", outcomeError)
		return nil
	}

	if periods > 0 && len(raw) > periods {
		raw = raw[len(raw)-periods:]
	}

	points := processBCBData(raw)
	if len(points) == 0 {
		recordFetch("bcb", outcomeEmpty)
	} else {
		recordFetch("bcb", outcomeOK)
	}
	return points
}

// processBCBData converts raw SGS rows into canonical observation points,
// dropping rows whose date or value does not parse.
func processBCBData(raw []bcbObservation) []models.ObservationPoint {
	points := make([]models.ObservationPoint, 0, len(raw))
	for _, item := range raw {
		date, err := time.Parse(bcbDateLayout, item.Date)
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(item.Value), 64)
		if err != nil {
			continue
		}
		points = append(points, models.ObservationPoint{
			Date:       date,
			Value:      value,
			PeriodCode: fmt.Sprintf("%04d%02d", date.Year(), int(date.Month())),
			Year:       date.Year(),
			Month:      int(date.Month()),
		})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// Ping checks upstream reachability for the readiness probe by fetching
// the latest observation of the SELIC target series.
func (c *BCBClient) Ping(ctx context.Context) error {
	url := fmt.Sprintf("%s.432/dados/ultimos/1?formato=json", c.baseURL)
	resp, err := c.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("bcb ping: status %d", resp.StatusCode())
	}
	return nil
}
