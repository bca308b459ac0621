package models

// FocusExpectation is one row of the BCB Focus market expectations survey
// (Olinda OData "ExpectativasMercadoAnuais"). Field names follow the
// upstream payload.
type FocusExpectation struct {
	Indicator     string  `json:"Indicador"`
	Date          string  `json:"Data"`
	ReferenceYear string  `json:"DataReferencia"`
	Median        float64 `json:"Mediana"`
	Mean          float64 `json:"Media"`
	Min           float64 `json:"Minimo"`
	Max           float64 `json:"Maximo"`
	Respondents   int     `json:"numeroRespondentes"`
}

// YearProjection is the newest Focus projection for one reference year.
type YearProjection struct {
	Year   int     `json:"year" example:"2025"`
	Median float64 `json:"median" example:"4.10"`
	Mean   float64 `json:"mean" example:"4.15"`
	Min    float64 `json:"min" example:"3.50"`
	Max    float64 `json:"max" example:"5.00"`
}

// FocusSummary groups the newest Focus projections per reference year for
// one surveyed indicator.
type FocusSummary struct {
	Indicator   string           `json:"indicator" example:"IPCA"`
	CurrentYear int              `json:"current_year" example:"2024"`
	NextYear    int              `json:"next_year" example:"2025"`
	Projections []YearProjection `json:"projections"`
}
