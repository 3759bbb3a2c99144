// Package pricing implements the detailed pricing engine: quantity
// resolution, per-line-item costing and multi-line-item estimate
// aggregation with overhead, profit, tax and the low/likely/high price band.
package pricing

import (
	"errors"
	"math"
	"sort"

	"roofpro/internal/domain/entities"
	"roofpro/internal/domain/formula"
)

var (
	ErrLineItemNotFound = errors.New("line item not found")
	ErrMacroNotFound    = errors.New("macro not found")
)

// Engine holds indexed line-item and macro catalogs plus the current
// geographic multipliers. Catalogs are snapshotted at construction and
// read-only afterwards.
type Engine struct {
	items  map[string]entities.LineItemDefinition
	macros map[string]entities.Macro
	geo    entities.GeographicPricing
}

// NewEngine indexes the catalog snapshot. A nil geographic record means all
// multipliers default to 1.0.
func NewEngine(items []entities.LineItemDefinition, geo *entities.GeographicPricing, macros []entities.Macro) *Engine {
	e := &Engine{
		items:  make(map[string]entities.LineItemDefinition, len(items)),
		macros: make(map[string]entities.Macro, len(macros)),
	}
	for _, it := range items {
		e.items[it.ID] = it
	}
	for _, m := range macros {
		e.macros[m.ID] = m
	}
	if geo != nil {
		e.geo = geo.Normalized()
	} else {
		e.geo = entities.GeographicPricing{}.Normalized()
	}
	return e
}

// SetGeographicPricing replaces the engine's multipliers for every
// subsequent calculation. It is a plain assignment with no synchronization:
// callers sharing one engine across concurrent requests must either build an
// engine per request or pass CalculationOptions.Geographic instead.
func (e *Engine) SetGeographicPricing(geo entities.GeographicPricing) {
	e.geo = geo.Normalized()
}

// GeographicPricing returns the engine's current multipliers.
func (e *Engine) GeographicPricing() entities.GeographicPricing {
	return e.geo
}

// LineItem returns the catalog definition for an id.
func (e *Engine) LineItem(id string) (entities.LineItemDefinition, bool) {
	def, ok := e.items[id]
	return def, ok
}

// ResolvedQuantity is the outcome of quantity resolution. FormulaUsed is nil
// when no formula was available or its evaluation failed.
type ResolvedQuantity struct {
	Quantity          float64
	QuantityWithWaste float64
	FormulaUsed       *string
}

// ResolveQuantity evaluates a quantity formula with forgiving semantics: any
// evaluation failure (unknown variable, syntax error, division by zero)
// falls back to fallbackQuantity rather than surfacing, so one malformed
// formula never aborts a whole estimate. The resolved quantity is clamped at
// zero before the waste factor is applied.
func ResolveQuantity(quantityFormula *string, vars formula.VariableSource, wasteFactor, fallbackQuantity float64) ResolvedQuantity {
	quantity := fallbackQuantity
	var used *string

	if quantityFormula != nil {
		if v, err := formula.Evaluate(*quantityFormula, vars); err == nil {
			quantity = v
			used = quantityFormula
		}
	}

	if quantity < 0 {
		quantity = 0
	}
	return ResolvedQuantity{
		Quantity:          quantity,
		QuantityWithWaste: quantity * wasteFactor,
		FormulaUsed:       used,
	}
}

// CalculateLineItem resolves one selection into its costed result using the
// engine's current geographic multipliers. It returns ErrLineItemNotFound
// when the referenced catalog definition does not exist; CalculateEstimate
// treats that as a skip.
func (e *Engine) CalculateLineItem(input entities.LineItemInput, vars entities.RoofVariables) (entities.CalculatedLineItem, error) {
	return e.calculateLineItem(input, vars, e.geo)
}

func (e *Engine) calculateLineItem(input entities.LineItemInput, vars entities.RoofVariables, geo entities.GeographicPricing) (entities.CalculatedLineItem, error) {
	def, ok := e.items[input.LineItemID]
	if !ok {
		return entities.CalculatedLineItem{}, ErrLineItemNotFound
	}

	wasteFactor := def.DefaultWasteFactor
	if input.WasteFactor != nil {
		wasteFactor = *input.WasteFactor
	}
	if wasteFactor <= 0 {
		wasteFactor = 1.0
	}

	// Waste always applies after the quantity is determined, whether the
	// quantity came from a manual value or a formula.
	var resolved ResolvedQuantity
	if input.Quantity != nil {
		resolved = ResolvedQuantity{
			Quantity:          *input.Quantity,
			QuantityWithWaste: *input.Quantity * wasteFactor,
		}
	} else {
		quantityFormula := input.QuantityFormula
		if quantityFormula == nil && def.QuantityFormula != "" {
			f := def.QuantityFormula
			quantityFormula = &f
		}
		resolved = ResolveQuantity(quantityFormula, vars, wasteFactor, 0)
	}

	// Geographic multipliers apply only to catalog-derived costs, never to
	// explicit per-input overrides.
	materialUnit := def.MaterialCost * geo.MaterialMultiplier
	if input.MaterialCostOverride != nil {
		materialUnit = *input.MaterialCostOverride
	}
	laborUnit := def.LaborCost * geo.LaborMultiplier
	if input.LaborCostOverride != nil {
		laborUnit = *input.LaborCostOverride
	}
	equipmentUnit := def.EquipmentCost * geo.EquipmentMultiplier
	if input.EquipmentCostOverride != nil {
		equipmentUnit = *input.EquipmentCostOverride
	}

	materialTotal := roundCents(resolved.QuantityWithWaste * materialUnit)
	laborTotal := roundCents(resolved.QuantityWithWaste * laborUnit)
	equipmentTotal := roundCents(resolved.QuantityWithWaste * equipmentUnit)

	return entities.CalculatedLineItem{
		LineItemID:        def.ID,
		ItemCode:          def.ItemCode,
		Name:              def.Name,
		Category:          def.Category,
		Unit:              def.Unit,
		SortOrder:         def.SortOrder,
		Quantity:          resolved.Quantity,
		QuantityWithWaste: resolved.QuantityWithWaste,
		WasteFactor:       wasteFactor,
		FormulaUsed:       resolved.FormulaUsed,
		MaterialUnitCost:  materialUnit,
		LaborUnitCost:     laborUnit,
		EquipmentUnitCost: equipmentUnit,
		MaterialTotal:     materialTotal,
		LaborTotal:        laborTotal,
		EquipmentTotal:    equipmentTotal,
		// LineTotal is the exact sum of the already-rounded category
		// totals, never rounded independently.
		LineTotal:  materialTotal + laborTotal + equipmentTotal,
		IsIncluded: input.Included(),
		IsOptional: input.IsOptional,
		IsTaxable:  def.IsTaxable,
		Group:      input.Group,
		Notes:      input.Notes,
	}, nil
}

// CalculateEstimate costs every input (inputs referencing missing catalog
// entries are skipped), sorts by catalog sort order and aggregates totals
// over the included items only. Excluded and optional items stay in the
// result list for display.
func (e *Engine) CalculateEstimate(inputs []entities.LineItemInput, vars entities.RoofVariables, opts *entities.CalculationOptions) entities.EstimateCalculation {
	overheadPercent := entities.DefaultOverheadPercent
	profitPercent := entities.DefaultProfitPercent
	taxPercent := entities.DefaultTaxPercent
	geo := e.geo
	if opts != nil {
		if opts.OverheadPercent != nil {
			overheadPercent = *opts.OverheadPercent
		}
		if opts.ProfitPercent != nil {
			profitPercent = *opts.ProfitPercent
		}
		if opts.TaxPercent != nil {
			taxPercent = *opts.TaxPercent
		}
		if opts.Geographic != nil {
			geo = opts.Geographic.Normalized()
		}
	}

	lineItems := make([]entities.CalculatedLineItem, 0, len(inputs))
	for _, input := range inputs {
		li, err := e.calculateLineItem(input, vars, geo)
		if err != nil {
			continue
		}
		lineItems = append(lineItems, li)
	}

	sortLineItems(lineItems)

	calc := entities.EstimateCalculation{
		LineItems:       lineItems,
		OverheadPercent: overheadPercent,
		ProfitPercent:   profitPercent,
		TaxPercent:      taxPercent,
	}

	for _, li := range lineItems {
		if !li.IsIncluded {
			continue
		}
		calc.TotalMaterial += li.MaterialTotal
		calc.TotalLabor += li.LaborTotal
		calc.TotalEquipment += li.EquipmentTotal
		if li.IsTaxable {
			calc.TaxableAmount += li.LineTotal
		}
	}
	calc.Subtotal = calc.TotalMaterial + calc.TotalLabor + calc.TotalEquipment

	calc.OverheadAmount = roundCents(calc.Subtotal * overheadPercent / 100)
	// Profit is computed on cost plus overhead, not on the subtotal alone.
	calc.ProfitAmount = roundCents((calc.Subtotal + calc.OverheadAmount) * profitPercent / 100)
	calc.TaxAmount = roundCents(calc.TaxableAmount * taxPercent / 100)

	calc.PriceLikely = calc.Subtotal + calc.OverheadAmount + calc.ProfitAmount + calc.TaxAmount
	calc.PriceLow = roundCents(calc.PriceLikely * entities.PriceBandLowFactor)
	calc.PriceHigh = roundCents(calc.PriceLikely * entities.PriceBandHighFactor)
	return calc
}

// ApplyMacro expands a macro into the line-item inputs the estimate
// calculation consumes. Macro entries whose catalog definition no longer
// exists are dropped: catalog edits shrink a macro's effective output, they
// do not break it.
func (e *Engine) ApplyMacro(macroID string) ([]entities.LineItemInput, error) {
	macro, ok := e.macros[macroID]
	if !ok {
		return nil, ErrMacroNotFound
	}

	inputs := make([]entities.LineItemInput, 0, len(macro.LineItems))
	for _, mli := range macro.LineItems {
		if _, ok := e.items[mli.LineItemID]; !ok {
			continue
		}
		included := mli.IsDefaultSelected
		inputs = append(inputs, entities.LineItemInput{
			LineItemID:            mli.LineItemID,
			QuantityFormula:       mli.QuantityFormula,
			WasteFactor:           mli.WasteFactor,
			MaterialCostOverride:  mli.MaterialCostOverride,
			LaborCostOverride:     mli.LaborCostOverride,
			EquipmentCostOverride: mli.EquipmentCostOverride,
			IsIncluded:            &included,
			IsOptional:            mli.IsOptional,
			Group:                 mli.Group,
			Notes:                 mli.Notes,
		})
	}
	return inputs, nil
}

// Macro returns a macro by id.
func (e *Engine) Macro(id string) (entities.Macro, bool) {
	m, ok := e.macros[id]
	return m, ok
}

// sortLineItems orders ascending by catalog sort order; the sort is stable
// so ties keep input order.
func sortLineItems(items []entities.CalculatedLineItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortOrder < items[j].SortOrder
	})
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
