package dto

// CorrectionRequest is the JSON body for POST /api/v1/calculator/correct.
//
// StartPeriod and EndPeriod are canonical "YYYYMM" period codes. A start
// period later than the end period is a valid request and means reverse
// correction (de-capitalization): the service divides by the compound
// factor instead of multiplying.
type CorrectionRequest struct {
	IndicatorCode string  `json:"indicator_code" binding:"required" example:"IPCA"`
	Value         float64 `json:"value" binding:"required" example:"1000"`
	StartPeriod   string  `json:"start_period" binding:"required" example:"202301"`
	EndPeriod     string  `json:"end_period" binding:"required" example:"202312"`
}
