package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VPLOPES/brasil-macro-data/internal/domain/dto"
	"github.com/VPLOPES/brasil-macro-data/internal/service"
)

const (
	defaultSeriesPeriods   = 120
	defaultMultiplePeriods = 60
)

// Handler provides HTTP handlers for the indicator, calculator, export,
// and Focus endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters and request bodies
//   - Invoke the service layer
//   - Map expected service errors to HTTP status codes
//   - Return structured JSON responses
type Handler struct {
	indicators service.IndicatorService
	focus      service.FocusService
}

// NewHandler constructs a new Handler instance.
func NewHandler(indicators service.IndicatorService, focus service.FocusService) *Handler {
	return &Handler{indicators: indicators, focus: focus}
}

// ListIndicators godoc
// @Summary      List indicator catalog
// @Description  Returns metadata for every supported indicator
// @Tags         indicators
// @Produce      json
// @Success      200  {array}  models.IndicatorDefinition
// @Router       /api/v1/indicators [get]
func (h *Handler) ListIndicators(c *gin.Context) {
	c.JSON(http.StatusOK, h.indicators.List())
}

// GetAllSummaries godoc
// @Summary      Headline dashboard summaries
// @Description  Returns summaries for the main indicators, fetched concurrently
// @Tags         indicators
// @Produce      json
// @Success      200  {array}  models.IndicatorSummary
// @Router       /api/v1/indicators/summary [get]
func (h *Handler) GetAllSummaries(c *gin.Context) {
	c.JSON(http.StatusOK, h.indicators.GetAllSummaries(c.Request.Context()))
}

// GetSummary godoc
// @Summary      Single indicator summary
// @Description  Returns current value, change, and compound accumulations for one indicator
// @Tags         indicators
// @Produce      json
// @Param        code  path      string  true  "Indicator code"  example(IPCA)
// @Success      200   {object}  models.IndicatorSummary
// @Failure      404   {object}  dto.ErrorResponse  "Unknown indicator"
// @Router       /api/v1/indicators/{code}/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	summary, err := h.indicators.GetSummary(c.Request.Context(), code)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetSeries godoc
// @Summary      Indicator time series
// @Description  Returns the canonical series for one indicator, ascending by date
// @Tags         indicators
// @Produce      json
// @Param        code     path      string  true   "Indicator code"  example(IPCA)
// @Param        periods  query     int     false  "Number of periods (1-360)"  default(120)
// @Success      200      {object}  models.Series
// @Failure      400      {object}  dto.ErrorResponse  "Invalid periods"
// @Failure      404      {object}  dto.ErrorResponse  "Unknown indicator"
// @Router       /api/v1/indicators/{code}/series [get]
func (h *Handler) GetSeries(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	periods, ok := h.parsePeriods(c, defaultSeriesPeriods)
	if !ok {
		return
	}

	series, err := h.indicators.GetSeries(c.Request.Context(), code, periods)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetMultipleSeries godoc
// @Summary      Multiple indicator series
// @Description  Returns several series at once; unknown codes are skipped
// @Tags         indicators
// @Produce      json
// @Param        codes    query     string  true   "Comma-separated indicator codes"  example(IPCA,SELIC)
// @Param        periods  query     int     false  "Number of periods (1-360)"  default(60)
// @Success      200      {array}   models.Series
// @Failure      400      {object}  dto.ErrorResponse  "Missing codes or invalid periods"
// @Router       /api/v1/indicators/series [get]
func (h *Handler) GetMultipleSeries(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("codes"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("codes is required", nil))
		return
	}

	var codes []string
	for _, code := range strings.Split(raw, ",") {
		if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
			codes = append(codes, code)
		}
	}

	periods, ok := h.parsePeriods(c, defaultMultiplePeriods)
	if !ok {
		return
	}
	if periods < 1 || periods > 360 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid periods", service.ErrInvalidPeriods))
		return
	}

	c.JSON(http.StatusOK, h.indicators.GetMultiple(c.Request.Context(), codes, periods))
}

// Correct godoc
// @Summary      Monetary correction
// @Description  Applies compound correction of a value between two YYYYMM periods
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CorrectionRequest  true  "Correction parameters"
// @Success      200      {object}  models.CorrectionResult
// @Failure      400      {object}  dto.ErrorResponse  "Validation error"
// @Failure      404      {object}  dto.ErrorResponse  "Unknown indicator"
// @Failure      422      {object}  dto.ErrorResponse  "No data in the requested window"
// @Router       /api/v1/calculator/correct [post]
func (h *Handler) Correct(c *gin.Context) {
	var req dto.CorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	result, err := h.indicators.Correct(
		c.Request.Context(),
		strings.ToUpper(strings.TrimSpace(req.IndicatorCode)),
		req.Value,
		req.StartPeriod,
		req.EndPeriod,
	)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CorrectionIndices godoc
// @Summary      Available correction indices
// @Description  Returns the indicators usable as monetary correction indices
// @Tags         calculator
// @Produce      json
// @Success      200  {array}  models.IndicatorDefinition
// @Router       /api/v1/calculator/indices [get]
func (h *Handler) CorrectionIndices(c *gin.Context) {
	c.JSON(http.StatusOK, h.indicators.CorrectionIndices())
}

// ExportCSV godoc
// @Summary      Export series as CSV
// @Description  Renders one indicator series as a downloadable CSV file
// @Tags         export
// @Produce      text/csv
// @Param        code     query     string  true   "Indicator code"  example(IPCA)
// @Param        periods  query     int     false  "Number of periods (1-360)"  default(120)
// @Success      200      {string}  string  "CSV content"
// @Failure      400      {object}  dto.ErrorResponse  "Validation error"
// @Failure      404      {object}  dto.ErrorResponse  "Unknown indicator"
// @Router       /api/v1/export/csv [get]
func (h *Handler) ExportCSV(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Query("code")))
	if code == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("code is required", nil))
		return
	}

	periods, ok := h.parsePeriods(c, defaultSeriesPeriods)
	if !ok {
		return
	}

	export, err := h.indicators.ExportCSV(c.Request.Context(), code, periods)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, export.MimeType, []byte(export.Content))
}

// FocusSummary godoc
// @Summary      Focus expectations summary
// @Description  Returns the newest Focus projections per reference year for the surveyed indicators
// @Tags         focus
// @Produce      json
// @Success      200  {array}  models.FocusSummary
// @Router       /api/v1/focus/summary [get]
func (h *Handler) FocusSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.focus.Summary(c.Request.Context()))
}

// FocusIndicator godoc
// @Summary      Raw Focus expectations
// @Description  Returns the raw Focus survey rows for one indicator
// @Tags         focus
// @Produce      json
// @Param        indicator  path     string  true  "Surveyed indicator name"  example(IPCA)
// @Success      200        {array}  models.FocusExpectation
// @Router       /api/v1/focus/{indicator} [get]
func (h *Handler) FocusIndicator(c *gin.Context) {
	indicator := strings.TrimSpace(c.Param("indicator"))
	c.JSON(http.StatusOK, h.focus.Expectations(c.Request.Context(), indicator))
}

// parsePeriods reads the optional "periods" query parameter. A malformed
// value is rejected here; range validation belongs to the service.
func (h *Handler) parsePeriods(c *gin.Context, def int) (int, bool) {
	raw := c.Query("periods")
	if raw == "" {
		return def, true
	}
	periods, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid periods, expected an integer", err))
		return 0, false
	}
	return periods, true
}

// renderError maps expected service errors to status codes. Upstream
// outages never reach this path: adapters degrade to empty data instead
// of returning errors.
func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrIndicatorNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("indicator not found", err))
	case errors.Is(err, service.ErrInvalidPeriods),
		errors.Is(err, service.ErrInvalidValue),
		errors.Is(err, service.ErrInvalidPeriodCode):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request", err))
	case errors.Is(err, service.ErrNoData):
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse("no data for the requested period", err))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal error", err))
	}
}
