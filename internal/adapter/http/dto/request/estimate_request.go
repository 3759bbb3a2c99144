package request

import (
	"strings"

	"roofpro/internal/domain/entities"
)

// EstimatePreviewRequest calculates an estimate without persisting it.
// The line item inputs and options reuse the domain JSON contracts.
type EstimatePreviewRequest struct {
	Variables entities.RoofVariables       `json:"variables"`
	LineItems []entities.LineItemInput     `json:"line_items" binding:"required"`
	Options   *entities.CalculationOptions `json:"options"`
}

// EstimateCreateRequest calculates and persists an estimate for a lead.
// Either an explicit line item selection or a macro id must be given; when
// `macro_id` is set the macro's default selection seeds the estimate and
// `line_items` is ignored.
type EstimateCreateRequest struct {
	LeadID    string                       `json:"lead_id" binding:"required"`
	MacroID   string                       `json:"macro_id"`
	Variables entities.RoofVariables       `json:"variables"`
	LineItems []entities.LineItemInput     `json:"line_items"`
	Options   *entities.CalculationOptions `json:"options"`
}

// EstimateLifecycleRequest targets the estimate of a lead for a status
// transition (approve, decline, cancel).
type EstimateLifecycleRequest struct {
	LeadID string `json:"lead_id" binding:"required"`
}

func (r EstimateCreateRequest) ResolveLeadID() string {
	return strings.TrimSpace(r.LeadID)
}

func (r EstimateCreateRequest) ResolveMacroID() string {
	return strings.TrimSpace(r.MacroID)
}

func (r EstimateLifecycleRequest) ResolveLeadID() string {
	return strings.TrimSpace(r.LeadID)
}
