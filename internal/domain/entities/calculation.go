package entities

// Default markup percentages applied when CalculationOptions leaves them
// unset, and the fixed price-band multipliers around the likely price.
const (
	DefaultOverheadPercent = 10.0
	DefaultProfitPercent   = 15.0
	DefaultTaxPercent      = 0.0

	PriceBandLowFactor  = 0.90
	PriceBandHighFactor = 1.15
)

// CalculationOptions tunes a single estimate calculation. Nil fields take
// the defaults above.
type CalculationOptions struct {
	OverheadPercent *float64 `json:"overhead_percent,omitempty"`
	ProfitPercent   *float64 `json:"profit_percent,omitempty"`
	TaxPercent      *float64 `json:"tax_percent,omitempty"`

	// Geographic, when set, overrides the engine's multipliers for this
	// calculation only. Use it instead of SetGeographicPricing when an
	// engine instance is shared across requests.
	Geographic *GeographicPricing `json:"geographic,omitempty"`
}

// EstimateCalculation is the full aggregation result: every calculated line
// item (included or not, sorted by catalog sort order) plus totals, markups,
// tax and the three-point price band.
//
// Totals sum only items with IsIncluded set; excluded and optional items
// remain in LineItems for display but contribute nothing.
type EstimateCalculation struct {
	LineItems []CalculatedLineItem `json:"line_items"`

	TotalMaterial  float64 `json:"total_material"`
	TotalLabor     float64 `json:"total_labor"`
	TotalEquipment float64 `json:"total_equipment"`
	Subtotal       float64 `json:"subtotal"`

	OverheadPercent float64 `json:"overhead_percent"`
	OverheadAmount  float64 `json:"overhead_amount"`
	ProfitPercent   float64 `json:"profit_percent"`
	ProfitAmount    float64 `json:"profit_amount"`

	TaxPercent    float64 `json:"tax_percent"`
	TaxableAmount float64 `json:"taxable_amount"`
	TaxAmount     float64 `json:"tax_amount"`

	PriceLow    float64 `json:"price_low"`
	PriceLikely float64 `json:"price_likely"`
	PriceHigh   float64 `json:"price_high"`
}
