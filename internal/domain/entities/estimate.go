package entities

import "time"

// EstimateStatus represents the lifecycle of a persisted estimate.
//
// Domain notes:
//   - The estimating service is the source of truth for estimate state.
//   - An estimate is created pending; the sales flow moves it to approved,
//     declined or canceled.
type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "pending"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusDeclined EstimateStatus = "declined"
	EstimateStatusCanceled EstimateStatus = "canceled"
)

// Estimate is the persisted estimate record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI: lead_id-index (PK: lead_id), one active estimate per lead.
type Estimate struct {
	ID     string         `json:"id"`
	LeadID string         `json:"lead_id"`
	Status EstimateStatus `json:"status"`

	LineItems []EstimateLineItem `json:"line_items"`

	TotalMaterial  float64 `json:"total_material"`
	TotalLabor     float64 `json:"total_labor"`
	TotalEquipment float64 `json:"total_equipment"`
	Subtotal       float64 `json:"subtotal"`
	OverheadAmount float64 `json:"overhead_amount"`
	ProfitAmount   float64 `json:"profit_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	PriceLow       float64 `json:"price_low"`
	PriceLikely    float64 `json:"price_likely"`
	PriceHigh      float64 `json:"price_high"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EstimateLineItem is the persisted shape of one calculated line item.
type EstimateLineItem struct {
	LineItemID        string  `json:"line_item_id"`
	ItemCode          string  `json:"item_code"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Unit              string  `json:"unit"`
	Quantity          float64 `json:"quantity"`
	QuantityWithWaste float64 `json:"quantity_with_waste"`
	FormulaUsed       string  `json:"formula_used,omitempty"`
	MaterialUnitCost  float64 `json:"material_unit_cost"`
	LaborUnitCost     float64 `json:"labor_unit_cost"`
	EquipmentUnitCost float64 `json:"equipment_unit_cost"`
	MaterialTotal     float64 `json:"material_total"`
	LaborTotal        float64 `json:"labor_total"`
	EquipmentTotal    float64 `json:"equipment_total"`
	LineTotal         float64 `json:"line_total"`
	IsIncluded        bool    `json:"is_included"`
	IsOptional        bool    `json:"is_optional"`
	Group             string  `json:"group,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}

// CalculationToEstimate maps an EstimateCalculation onto the persisted
// record shape. ID, LeadID, Status and timestamps are the caller's concern.
func CalculationToEstimate(calc EstimateCalculation) Estimate {
	items := make([]EstimateLineItem, 0, len(calc.LineItems))
	for _, li := range calc.LineItems {
		items = append(items, CalculatedToEstimateLineItem(li))
	}
	return Estimate{
		LineItems:      items,
		TotalMaterial:  calc.TotalMaterial,
		TotalLabor:     calc.TotalLabor,
		TotalEquipment: calc.TotalEquipment,
		Subtotal:       calc.Subtotal,
		OverheadAmount: calc.OverheadAmount,
		ProfitAmount:   calc.ProfitAmount,
		TaxAmount:      calc.TaxAmount,
		PriceLow:       calc.PriceLow,
		PriceLikely:    calc.PriceLikely,
		PriceHigh:      calc.PriceHigh,
	}
}

// CalculatedToEstimateLineItem maps a single calculated line item to its
// persisted shape.
func CalculatedToEstimateLineItem(li CalculatedLineItem) EstimateLineItem {
	formula := ""
	if li.FormulaUsed != nil {
		formula = *li.FormulaUsed
	}
	return EstimateLineItem{
		LineItemID:        li.LineItemID,
		ItemCode:          li.ItemCode,
		Name:              li.Name,
		Category:          string(li.Category),
		Unit:              string(li.Unit),
		Quantity:          li.Quantity,
		QuantityWithWaste: li.QuantityWithWaste,
		FormulaUsed:       formula,
		MaterialUnitCost:  li.MaterialUnitCost,
		LaborUnitCost:     li.LaborUnitCost,
		EquipmentUnitCost: li.EquipmentUnitCost,
		MaterialTotal:     li.MaterialTotal,
		LaborTotal:        li.LaborTotal,
		EquipmentTotal:    li.EquipmentTotal,
		LineTotal:         li.LineTotal,
		IsIncluded:        li.IsIncluded,
		IsOptional:        li.IsOptional,
		Group:             li.Group,
		Notes:             li.Notes,
	}
}
