package entities

// Macro is a named bundle of line-item templates for a roof/job type, e.g.
// "Asphalt Tear-Off + Re-Shingle". Applying a macro yields the LineItemInput
// list the pricing engine consumes.
type Macro struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	RoofType  string          `json:"roof_type,omitempty"`
	JobType   string          `json:"job_type,omitempty"`
	LineItems []MacroLineItem `json:"line_items"`
}

// MacroLineItem binds a catalog line item to a preset formula and overrides.
// Catalogs and macros are edited independently, so a reference to a line item
// that no longer exists is dropped during expansion rather than treated as an
// error.
type MacroLineItem struct {
	LineItemID      string   `json:"line_item_id"`
	QuantityFormula *string  `json:"quantity_formula,omitempty"`
	WasteFactor     *float64 `json:"waste_factor,omitempty"`

	MaterialCostOverride  *float64 `json:"material_cost_override,omitempty"`
	LaborCostOverride     *float64 `json:"labor_cost_override,omitempty"`
	EquipmentCostOverride *float64 `json:"equipment_cost_override,omitempty"`

	IsDefaultSelected bool   `json:"is_default_selected"`
	IsOptional        bool   `json:"is_optional"`
	Group             string `json:"group,omitempty"`
	SortOrder         int    `json:"sort_order"`
	Notes             string `json:"notes,omitempty"`
}
