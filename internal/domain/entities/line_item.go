package entities

// LineItemCategory groups catalog entries by the kind of work they price.
type LineItemCategory string

const (
	CategoryTearOff      LineItemCategory = "tear_off"
	CategoryUnderlayment LineItemCategory = "underlayment"
	CategoryShingles     LineItemCategory = "shingles"
	CategoryFlashing     LineItemCategory = "flashing"
	CategoryVentilation  LineItemCategory = "ventilation"
	CategoryGutters      LineItemCategory = "gutters"
	CategorySkylights    LineItemCategory = "skylights"
	CategoryChimneys     LineItemCategory = "chimneys"
	CategoryAccessories  LineItemCategory = "accessories"
	CategoryLabor        LineItemCategory = "labor"
	CategoryDisposal     LineItemCategory = "disposal"
)

// UnitType is the unit a line item is quantified in.
type UnitType string

const (
	UnitSquare   UnitType = "SQ"
	UnitSquareFt UnitType = "SF"
	UnitLinearFt UnitType = "LF"
	UnitEach     UnitType = "EA"
	UnitHour     UnitType = "HR"
	UnitDay      UnitType = "DAY"
	UnitTon      UnitType = "TON"
	UnitGallon   UnitType = "GAL"
	UnitBundle   UnitType = "BDL"
	UnitRoll     UnitType = "RL"
)

// LineItemDefinition is an immutable catalog entry. The catalog owns these;
// the pricing engine takes a snapshot at construction.
type LineItemDefinition struct {
	ID                 string           `json:"id"`
	ItemCode           string           `json:"item_code"`
	Name               string           `json:"name"`
	Category           LineItemCategory `json:"category"`
	Unit               UnitType         `json:"unit"`
	MaterialCost       float64          `json:"material_cost"`
	LaborCost          float64          `json:"labor_cost"`
	EquipmentCost      float64          `json:"equipment_cost"`
	DefaultWasteFactor float64          `json:"default_waste_factor"`
	QuantityFormula    string           `json:"quantity_formula,omitempty"`
	IsTaxable          bool             `json:"is_taxable"`
	SortOrder          int              `json:"sort_order"`
}

// LineItemInput is one selection going into an estimate calculation. Pointer
// fields are overrides; nil means "use the catalog definition's value".
//
// A manual Quantity always wins over QuantityFormula.
type LineItemInput struct {
	LineItemID      string   `json:"line_item_id"`
	Quantity        *float64 `json:"quantity,omitempty"`
	QuantityFormula *string  `json:"quantity_formula,omitempty"`
	WasteFactor     *float64 `json:"waste_factor,omitempty"`

	MaterialCostOverride  *float64 `json:"material_cost_override,omitempty"`
	LaborCostOverride     *float64 `json:"labor_cost_override,omitempty"`
	EquipmentCostOverride *float64 `json:"equipment_cost_override,omitempty"`

	// IsIncluded defaults to true when nil.
	IsIncluded *bool  `json:"is_included,omitempty"`
	IsOptional bool   `json:"is_optional,omitempty"`
	Group      string `json:"group,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Included reports the effective inclusion flag.
func (in LineItemInput) Included() bool {
	return in.IsIncluded == nil || *in.IsIncluded
}

// CalculatedLineItem is the costing result for a single line item. The unit
// costs are the ones actually used: post geographic multiplier and post
// override. LineTotal is always the exact sum of the three category totals.
type CalculatedLineItem struct {
	LineItemID string           `json:"line_item_id"`
	ItemCode   string           `json:"item_code"`
	Name       string           `json:"name"`
	Category   LineItemCategory `json:"category"`
	Unit       UnitType         `json:"unit"`
	SortOrder  int              `json:"sort_order"`

	Quantity          float64 `json:"quantity"`
	QuantityWithWaste float64 `json:"quantity_with_waste"`
	WasteFactor       float64 `json:"waste_factor"`
	// FormulaUsed is nil when the quantity came from a manual value or a
	// fallback rather than a successfully evaluated formula.
	FormulaUsed *string `json:"formula_used,omitempty"`

	MaterialUnitCost  float64 `json:"material_unit_cost"`
	LaborUnitCost     float64 `json:"labor_unit_cost"`
	EquipmentUnitCost float64 `json:"equipment_unit_cost"`

	MaterialTotal  float64 `json:"material_total"`
	LaborTotal     float64 `json:"labor_total"`
	EquipmentTotal float64 `json:"equipment_total"`
	LineTotal      float64 `json:"line_total"`

	IsIncluded bool   `json:"is_included"`
	IsOptional bool   `json:"is_optional"`
	IsTaxable  bool   `json:"is_taxable"`
	Group      string `json:"group,omitempty"`
	Notes      string `json:"notes,omitempty"`
}
