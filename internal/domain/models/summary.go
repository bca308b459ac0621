package models

import "time"

// IndicatorSummary is the point-in-time view of one indicator: latest
// value, previous value, change, and (for compoundable indicators) the
// trailing 12-month and year-to-date compound accumulations.
//
// Pointer fields are nil when the underlying data does not support the
// derivation: an empty series yields all-nil derived fields, fewer than
// two points yields a nil PreviousValue and Change, fewer than twelve
// points in the deep window yields a nil Accumulated12M, and a year with
// no observations yet yields a nil AccumulatedYTD.
type IndicatorSummary struct {
	IndicatorDefinition

	CurrentValue   *float64   `json:"current_value" example:"0.53"`
	PreviousValue  *float64   `json:"previous_value" example:"0.42"`
	Change         *float64   `json:"change" example:"0.11"`
	Accumulated12M *float64   `json:"accumulated_12m" example:"4.62"`
	AccumulatedYTD *float64   `json:"accumulated_ytd" example:"2.48"`
	LastUpdate     *time.Time `json:"last_update"`
}

// CorrectionResult is the outcome of a monetary correction between two
// periods. Factor is the compound multiplier Π(1 + v/100) over the
// observations inside the requested window; IsReverse records that the
// caller asked to go from a later period to an earlier one, in which case
// CorrectedValue was obtained by dividing instead of multiplying.
type CorrectionResult struct {
	OriginalValue  float64 `json:"original_value" example:"1000"`
	CorrectedValue float64 `json:"corrected_value" example:"1016.15"`
	Factor         float64 `json:"factor" example:"1.016156"`
	PercentChange  float64 `json:"percent_change" example:"1.6156"`
	Months         int     `json:"months" example:"3"`
	IsReverse      bool    `json:"is_reverse" example:"false"`
}

// CSVExport is a rendered CSV file for one indicator series.
type CSVExport struct {
	Filename string `json:"filename" example:"IPCA_2024-03-01.csv"`
	Content  string `json:"content"`
	MimeType string `json:"mime_type" example:"text/csv"`
}
