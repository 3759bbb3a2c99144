package entities

// GeographicPricing is the regional cost adjustment applied to catalog base
// costs. Multipliers default to 1.0 when unset; explicit per-input cost
// overrides are never adjusted.
type GeographicPricing struct {
	Region              string  `json:"region,omitempty"`
	MaterialMultiplier  float64 `json:"material_multiplier"`
	LaborMultiplier     float64 `json:"labor_multiplier"`
	EquipmentMultiplier float64 `json:"equipment_multiplier"`
}

// Normalized returns a copy with non-positive multipliers replaced by 1.0.
func (g GeographicPricing) Normalized() GeographicPricing {
	if g.MaterialMultiplier <= 0 {
		g.MaterialMultiplier = 1.0
	}
	if g.LaborMultiplier <= 0 {
		g.LaborMultiplier = 1.0
	}
	if g.EquipmentMultiplier <= 0 {
		g.EquipmentMultiplier = 1.0
	}
	return g
}
