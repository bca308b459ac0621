// Package catalog holds the static indicator catalog: metadata for every
// supported macroeconomic indicator and the routing table that maps an
// indicator code to the upstream source and series identifier to query.
//
// The catalog is built once at startup with New() and injected into the
// service layer; it is read-only afterwards and safe for concurrent use
// without synchronization.
package catalog

import "github.com/VPLOPES/brasil-macro-data/internal/domain/models"

// SourceKind identifies which upstream adapter serves a series.
type SourceKind string

const (
	// SourceBCB routes to the Banco Central do Brasil SGS API.
	SourceBCB SourceKind = "bcb"
	// SourceIBGE routes to the IBGE SIDRA API.
	SourceIBGE SourceKind = "ibge"
)

// SeriesRef tells an adapter exactly what to fetch. For BCB series only
// BCBSeries is set; for SIDRA series SidraTable and SidraVariable are set.
type SeriesRef struct {
	Source        SourceKind
	BCBSeries     string
	SidraTable    string
	SidraVariable string
}

// entry pairs a definition with its routing so the two can never drift:
// every cataloged indicator has exactly one route by construction.
type entry struct {
	def   models.IndicatorDefinition
	route SeriesRef
}

// Catalog is the immutable indicator registry.
type Catalog struct {
	entries map[string]entry
	order   []string
}

// BCB SGS series codes.
const (
	bcbIGPM           = "189"   // IGP-M mensal
	bcbSelicMonthly   = "4390"  // SELIC acumulada no mês
	bcbCDIMonthly     = "4391"  // CDI acumulado no mês
	bcbUSDBRLSell     = "10813" // Dólar comercial venda (PTAX)
	bcbEURBRL         = "21619" // Euro
	bcbIBCBr          = "24363" // IBC-Br
	bcbDebtGDP        = "4513"  // Dívida líquida % PIB
	bcbPrimaryResult  = "5793"  // Resultado primário % PIB
	bcbTradeBalance   = "22707" // Balança comercial
	bcbCurrentAccount = "22724" // Transações correntes
)

// New builds the default catalog. The order of registration is the order
// exposed by List().
func New() *Catalog {
	c := &Catalog{entries: make(map[string]entry)}

	// Inflation
	c.add(models.IndicatorDefinition{
		Code: "IPCA", Name: "IPCA",
		Description: "Índice de Preços ao Consumidor Amplo",
		Unit:        "%", Source: "ibge", Category: "inflation", Compoundable: true,
	}, SeriesRef{Source: SourceIBGE, SidraTable: "1737", SidraVariable: "63"})
	c.add(models.IndicatorDefinition{
		Code: "INPC", Name: "INPC",
		Description: "Índice Nacional de Preços ao Consumidor",
		Unit:        "%", Source: "ibge", Category: "inflation", Compoundable: true,
	}, SeriesRef{Source: SourceIBGE, SidraTable: "1736", SidraVariable: "44"})
	c.add(models.IndicatorDefinition{
		Code: "IGP_M", Name: "IGP-M",
		Description: "Índice Geral de Preços - Mercado",
		Unit:        "%", Source: "bcb", Category: "inflation", Compoundable: true,
	}, SeriesRef{Source: SourceBCB, BCBSeries: bcbIGPM})

	// Interest rates
	c.add(models.IndicatorDefinition{
		Code: "SELIC", Name: "SELIC",
		Description: "Taxa básica de juros",
		Unit:        "% a.a.", Source: "bcb", Category: "interest", Compoundable: true,
	}, SeriesRef{Source: SourceBCB, BCBSeries: bcbSelicMonthly})
	c.add(models.IndicatorDefinition{
		Code: "CDI", Name: "CDI",
		Description: "Certificado de Depósito Interbancário",
		Unit:        "% a.a.", Source: "bcb", Category: "interest", Compoundable: true,
	}, SeriesRef{Source: SourceBCB, BCBSeries: bcbCDIMonthly})

	// Exchange rates
	c.add(models.IndicatorDefinition{
		Code: "USD_BRL", Name: "Dólar",
		Description: "Cotação do dólar comercial",
		Unit:        "R$", Source: "bcb", Category: "exchange",
	}, SeriesRef{Source: SourceBCB, BCBSeries: bcbUSDBRLSell})
	c.add(models.IndicatorDefinition{
		Code: "EUR_BRL", Name: "Euro",
		Description: "Cotação do euro",
		Unit:        "R$", Source: "bcb", Category: "exchange",
	}, SeriesRef{Source: SourceBCB, BCBSeries: bcbEURBRL})

	// Economic activity
	c.add(models.IndicatorDefinition{
		Code: "IBC_BR", Name: "IBC-Br",
		Description: "Índice de Atividade Econômica do BC",
		Unit:        "índice", Source: "bcb", Category: "activity",
	}, SeriesRef{Source: SourceBCB, BCBSeries: bcbIBCBr})
	c.add(models.IndicatorDefinition{
		Code: "INDUSTRIAL", Name: "Produção Industrial",
		Description: "Variação da produção industrial",
		Unit:        "%", Source: "ibge", Category: "activity",
	}, SeriesRef{Source: SourceIBGE, SidraTable: "8159", SidraVariable: "11599"})
	c.add(models.IndicatorDefinition{
		Code: "RETAIL", Name: "Vendas Varejo",
		Description: "Variação das vendas do varejo",
		Unit:        "%", Source: "ibge", Category: "activity",
	}, SeriesRef{Source: SourceIBGE, SidraTable: "8880", SidraVariable: "11706"})

	// Employment
	c.add(models.IndicatorDefinition{
		Code: "UNEMPLOYMENT", Name: "Desemprego",
		Description: "Taxa de desocupação",
		Unit:        "%", Source: "ibge", Category: "employment",
	}, SeriesRef{Source: SourceIBGE, SidraTable: "6381", SidraVariable: "4099"})

	// Fiscal
	c.add(models.IndicatorDefinition{
		Code: "DEBT_GDP", Name: "Dívida/PIB",
		Description: "Dívida líquida do setor público",
		Unit:        "% PIB", Source: "bcb", Category: "fiscal",
	}, SeriesRef{Source: SourceBCB, BCBSeries: bcbDebtGDP})
	c.add(models.IndicatorDefinition{
		Code: "PRIMARY_RESULT", Name: "Resultado Primário",
		Description: "Resultado primário do setor público",
		Unit:        "% PIB", Source: "bcb", Category: "fiscal",
	}, SeriesRef{Source: SourceBCB, BCBSeries: bcbPrimaryResult})

	// External sector
	c.add(models.IndicatorDefinition{
		Code: "TRADE_BALANCE", Name: "Balança Comercial",
		Description: "Saldo da balança comercial",
		Unit:        "US$ Mi", Source: "bcb", Category: "external",
	}, SeriesRef{Source: SourceBCB, BCBSeries: bcbTradeBalance})
	c.add(models.IndicatorDefinition{
		Code: "CURRENT_ACCOUNT", Name: "Trans. Correntes",
		Description: "Saldo em transações correntes",
		Unit:        "US$ Mi", Source: "bcb", Category: "external",
	}, SeriesRef{Source: SourceBCB, BCBSeries: bcbCurrentAccount})

	return c
}

func (c *Catalog) add(def models.IndicatorDefinition, route SeriesRef) {
	c.entries[def.Code] = entry{def: def, route: route}
	c.order = append(c.order, def.Code)
}

// Resolve returns the definition for a code. A missing code is a normal,
// expected outcome (many UI-level codes have no server-side series) and
// is reported through the boolean, never as an error.
func (c *Catalog) Resolve(code string) (models.IndicatorDefinition, bool) {
	e, ok := c.entries[code]
	return e.def, ok
}

// Route returns the upstream routing for a code.
func (c *Catalog) Route(code string) (SeriesRef, bool) {
	e, ok := c.entries[code]
	return e.route, ok
}

// List returns all definitions in registration order.
func (c *Catalog) List() []models.IndicatorDefinition {
	out := make([]models.IndicatorDefinition, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.entries[code].def)
	}
	return out
}

// CorrectionIndices returns the indicators eligible for compound
// accumulation and monetary correction.
func (c *Catalog) CorrectionIndices() []models.IndicatorDefinition {
	var out []models.IndicatorDefinition
	for _, code := range c.order {
		if e := c.entries[code]; e.def.Compoundable {
			out = append(out, e.def)
		}
	}
	return out
}

// MainCodes returns the headline indicators shown on the dashboard
// summary view, in display order.
func (c *Catalog) MainCodes() []string {
	return []string{"IPCA", "SELIC", "CDI", "USD_BRL", "UNEMPLOYMENT", "IBC_BR", "IGP_M", "DEBT_GDP"}
}
