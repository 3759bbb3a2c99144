package response

import (
	"time"

	"roofpro/internal/domain/entities"
)

type EstimateLineItemResponse struct {
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

type EstimateResponse struct {
	ID     string `json:"id"`
	LeadID string `json:"lead_id"`
	Status string `json:"status"`

	LineItems []EstimateLineItemResponse `json:"line_items"`

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

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]EstimateLineItemResponse, 0, len(e.LineItems))
	for _, li := range e.LineItems {
		items = append(items, EstimateLineItemResponse(li))
	}
	return EstimateResponse{
		ID:             e.ID,
		LeadID:         e.LeadID,
		Status:         string(e.Status),
		LineItems:      items,
		TotalMaterial:  e.TotalMaterial,
		TotalLabor:     e.TotalLabor,
		TotalEquipment: e.TotalEquipment,
		Subtotal:       e.Subtotal,
		OverheadAmount: e.OverheadAmount,
		ProfitAmount:   e.ProfitAmount,
		TaxAmount:      e.TaxAmount,
		PriceLow:       e.PriceLow,
		PriceLikely:    e.PriceLikely,
		PriceHigh:      e.PriceHigh,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
