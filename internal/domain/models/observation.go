package models

import "time"

// ObservationPoint is one observed value of an indicator at one reporting
// period, normalized from whatever wire format the upstream uses.
//
// Fields:
//   - Date: first day of the reporting period.
//   - Value: decimal value; semantics depend on the indicator (percentage
//     for rates and inflation, absolute price for exchange rates, index
//     points for activity indices).
//   - PeriodCode: canonical "YYYYMM" key. Lexical order matches
//     chronological order, which is what range filtering relies on.
//   - Year, Month: derived from Date for convenience filtering.
type ObservationPoint struct {
	Date       time.Time `json:"date"`
	Value      float64   `json:"value" example:"0.53"`
	PeriodCode string    `json:"period_code" example:"202403"`
	Year       int       `json:"year" example:"2024"`
	Month      int       `json:"month" example:"3"`
}

// Series is an indicator code plus its observations, ascending by date.
// It is built fresh on every request and never mutated afterwards.
type Series struct {
	Code   string             `json:"code" example:"IPCA"`
	Name   string             `json:"name" example:"IPCA"`
	Unit   string             `json:"unit" example:"%"`
	Points []ObservationPoint `json:"data"`
}
