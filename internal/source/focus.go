package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/VPLOPES/brasil-macro-data/internal/domain/models"
	"github.com/VPLOPES/brasil-macro-data/internal/logger"
)

// focusEnvelope is the OData response wrapper.
type focusEnvelope struct {
	Value []models.FocusExpectation `json:"value"`
}

// FocusClient fetches market expectations from the BCB Olinda OData
// service (Focus survey, annual expectations).
type FocusClient struct {
	client  *resty.Client
	baseURL string
}

// NewFocusClient builds a client for the Olinda Expectativas base URL
// with a bounded per-request timeout.
func NewFocusClient(baseURL string, timeout time.Duration) *FocusClient {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", userAgent)
	client.SetHeader("Accept", "application/json")

	return &FocusClient{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// FetchExpectations returns the newest 1000 annual Focus survey rows,
// newest first, optionally filtered by surveyed indicator name (e.g.
// "IPCA", "Selic", "Câmbio"). Any failure degrades to an empty slice.
func (c *FocusClient) FetchExpectations(ctx context.Context, indicator string) []models.FocusExpectation {
	req := c.client.R().
		SetContext(ctx).
		SetQueryParam("$top", "1000").
		SetQueryParam("$orderby", "Data desc").
		SetQueryParam("$format", "json")
	if indicator != "" {
		req.SetQueryParam("$filter", fmt.Sprintf("Indicador eq '%s'", indicator))
	}

	var envelope focusEnvelope
	resp, err := req.SetResult(&envelope).Get(c.baseURL + "/ExpectativasMercadoAnuais")
	if err != nil {
		logger.L().Warn().Str("indicator", indicator).Err(err).Msg("focus fetch failed")
		recordFetch("focus", outcomeError)
		return nil
	}
	if resp.IsError() {
		logger.L().Warn().Str("indicator", indicator).Int("status", resp.StatusCode()).Msg("focus fetch returned error status")
		recordFetch("focus", outcomeError)
		return nil
	}

	if len(envelope.Value) == 0 {
		recordFetch("focus", outcomeEmpty)
		return nil
	}
	recordFetch("focus", outcomeOK)
	return envelope.Value
}
