package models

// IndicatorDefinition is the static metadata for one macroeconomic
// indicator. Definitions are loaded once at startup into the catalog and
// are immutable afterwards; Code is the only key used to address a series
// anywhere in the system.
//
// Compoundable marks indicators whose values are period-over-period
// percentage rates, i.e. the only ones for which compound accumulation
// (12-month, YTD) and monetary correction are meaningful. Exchange rates
// and level-valued indices are not compoundable.
type IndicatorDefinition struct {
	Code         string `json:"code" example:"IPCA"`
	Name         string `json:"name" example:"IPCA"`
	Description  string `json:"description" example:"Índice de Preços ao Consumidor Amplo"`
	Unit         string `json:"unit" example:"%"`
	Source       string `json:"source" example:"ibge"`
	Category     string `json:"category" example:"inflation"`
	Compoundable bool   `json:"compoundable" example:"true"`
}
