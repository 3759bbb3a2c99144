package response

import "roofpro/internal/domain/entities"

type CalculatedLineItemResponse struct {
	LineItemID string `json:"line_item_id"`
	ItemCode   string `json:"item_code"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Unit       string `json:"unit"`

	Quantity          float64 `json:"quantity"`
	QuantityWithWaste float64 `json:"quantity_with_waste"`
	WasteFactor       float64 `json:"waste_factor"`
	FormulaUsed       *string `json:"formula_used,omitempty"`

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

// CalculationResponse is the preview payload: the full calculation including
// markup percentages, which the persisted estimate does not carry.
type CalculationResponse struct {
	LineItems []CalculatedLineItemResponse `json:"line_items"`

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

func FromCalculation(calc entities.EstimateCalculation) CalculationResponse {
	items := make([]CalculatedLineItemResponse, 0, len(calc.LineItems))
	for _, li := range calc.LineItems {
		items = append(items, fromCalculatedLineItem(li))
	}
	return CalculationResponse{
		LineItems:       items,
		TotalMaterial:   calc.TotalMaterial,
		TotalLabor:      calc.TotalLabor,
		TotalEquipment:  calc.TotalEquipment,
		Subtotal:        calc.Subtotal,
		OverheadPercent: calc.OverheadPercent,
		OverheadAmount:  calc.OverheadAmount,
		ProfitPercent:   calc.ProfitPercent,
		ProfitAmount:    calc.ProfitAmount,
		TaxPercent:      calc.TaxPercent,
		TaxableAmount:   calc.TaxableAmount,
		TaxAmount:       calc.TaxAmount,
		PriceLow:        calc.PriceLow,
		PriceLikely:     calc.PriceLikely,
		PriceHigh:       calc.PriceHigh,
	}
}

func fromCalculatedLineItem(li entities.CalculatedLineItem) CalculatedLineItemResponse {
	return CalculatedLineItemResponse{
		LineItemID:        li.LineItemID,
		ItemCode:          li.ItemCode,
		Name:              li.Name,
		Category:          string(li.Category),
		Unit:              string(li.Unit),
		Quantity:          li.Quantity,
		QuantityWithWaste: li.QuantityWithWaste,
		WasteFactor:       li.WasteFactor,
		FormulaUsed:       li.FormulaUsed,
		MaterialUnitCost:  li.MaterialUnitCost,
		LaborUnitCost:     li.LaborUnitCost,
		EquipmentUnitCost: li.EquipmentUnitCost,
		MaterialTotal:     li.MaterialTotal,
		LaborTotal:        li.LaborTotal,
		EquipmentTotal:    li.EquipmentTotal,
		LineTotal:         li.LineTotal,
		IsIncluded:        li.IsIncluded,
		IsOptional:        li.IsOptional,
		IsTaxable:         li.IsTaxable,
		Group:             li.Group,
		Notes:             li.Notes,
	}
}

// MacroExpansionResponse is the result of expanding a macro into editable
// line item inputs.
type MacroExpansionResponse struct {
	MacroID   string                   `json:"macro_id"`
	LineItems []entities.LineItemInput `json:"line_items"`
}
