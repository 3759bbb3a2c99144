package pricing

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"roofpro/internal/domain/entities"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }
func bptr(v bool) *bool       { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testVars() entities.RoofVariables {
	return entities.RoofVariables{SQ: 25, SF: 2500, Eave: 100, Rake: 80, Valley: 20, Hip: 0}
}

func testCatalog() []entities.LineItemDefinition {
	return []entities.LineItemDefinition{
		{
			ID: "li-shingles", ItemCode: "SHNG-30", Name: "Architectural shingles",
			Category: entities.CategoryShingles, Unit: entities.UnitSquare,
			MaterialCost: 125, LaborCost: 95, EquipmentCost: 10,
			DefaultWasteFactor: 1.0, QuantityFormula: "SQ*1.10",
			IsTaxable: true, SortOrder: 30,
		},
		{
			ID: "li-tearoff", ItemCode: "TEAR-1", Name: "Tear off existing roof",
			Category: entities.CategoryTearOff, Unit: entities.UnitSquare,
			MaterialCost: 0, LaborCost: 55, EquipmentCost: 12,
			DefaultWasteFactor: 1.0, QuantityFormula: "SQ",
			IsTaxable: false, SortOrder: 10,
		},
		{
			ID: "li-drip", ItemCode: "DRIP-1", Name: "Drip edge",
			Category: entities.CategoryFlashing, Unit: entities.UnitLinearFt,
			MaterialCost: 2.5, LaborCost: 1.5, EquipmentCost: 0,
			DefaultWasteFactor: 1.05, QuantityFormula: "EAVE + RAKE",
			IsTaxable: true, SortOrder: 20,
		},
		{
			ID: "li-flat", ItemCode: "FLAT-100", Name: "Flat fee item",
			Category: entities.CategoryAccessories, Unit: entities.UnitEach,
			MaterialCost: 100, LaborCost: 0, EquipmentCost: 0,
			DefaultWasteFactor: 1.0,
			IsTaxable: false, SortOrder: 40,
		},
	}
}

func TestResolveQuantity(t *testing.T) {
	vars := testVars()

	t.Run("nil formula uses fallback", func(t *testing.T) {
		res := ResolveQuantity(nil, vars, 1.1, 5)
		if res.Quantity != 5 || !almostEqual(res.QuantityWithWaste, 5.5) {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.FormulaUsed != nil {
			t.Fatalf("expected nil FormulaUsed")
		}
	})

	t.Run("formula evaluates", func(t *testing.T) {
		res := ResolveQuantity(sptr("SQ*1.10"), vars, 1.0, 0)
		if !almostEqual(res.Quantity, 27.5) {
			t.Fatalf("expected 27.5, got %v", res.Quantity)
		}
		if res.FormulaUsed == nil || *res.FormulaUsed != "SQ*1.10" {
			t.Fatalf("expected FormulaUsed to carry the formula")
		}
	})

	t.Run("failure falls back silently", func(t *testing.T) {
		for _, f := range []string{"BOGUS_VAR*2", "SQ+", "10/HIP"} {
			res := ResolveQuantity(sptr(f), vars, 1.0, 3)
			if res.Quantity != 3 {
				t.Fatalf("expected fallback for %q, got %v", f, res.Quantity)
			}
			if res.FormulaUsed != nil {
				t.Fatalf("expected nil FormulaUsed for %q", f)
			}
		}
	})

	t.Run("negative quantity clamps to zero", func(t *testing.T) {
		res := ResolveQuantity(sptr("10 - SQ"), vars, 1.2, 0)
		if res.Quantity != 0 || res.QuantityWithWaste != 0 {
			t.Fatalf("expected clamp at zero, got %+v", res)
		}
		if res.FormulaUsed == nil {
			t.Fatalf("clamped formula still counts as used")
		}
	})

	t.Run("never negative", func(t *testing.T) {
		for _, f := range []string{"-SQ", "HIP-100", "0-0.0001"} {
			res := ResolveQuantity(sptr(f), vars, 1.5, 0)
			if res.Quantity < 0 || res.QuantityWithWaste < 0 {
				t.Fatalf("negative quantity leaked for %q: %+v", f, res)
			}
		}
	})
}

func TestEngine_CalculateLineItem(t *testing.T) {
	vars := testVars()

	t.Run("formula quantity with unit costs", func(t *testing.T) {
		e := NewEngine(testCatalog(), nil, nil)
		li, err := e.CalculateLineItem(entities.LineItemInput{LineItemID: "li-shingles"}, vars)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(li.Quantity, 27.5) || !almostEqual(li.QuantityWithWaste, 27.5) {
			t.Fatalf("unexpected quantities: %+v", li)
		}
		if !almostEqual(li.MaterialTotal, 3437.50) {
			t.Fatalf("expected material 3437.50, got %v", li.MaterialTotal)
		}
		if !almostEqual(li.LaborTotal, 2612.50) {
			t.Fatalf("expected labor 2612.50, got %v", li.LaborTotal)
		}
		if !almostEqual(li.EquipmentTotal, 275) {
			t.Fatalf("expected equipment 275, got %v", li.EquipmentTotal)
		}
		if !almostEqual(li.LineTotal, 6325) {
			t.Fatalf("expected line total 6325, got %v", li.LineTotal)
		}
		if li.LineTotal != li.MaterialTotal+li.LaborTotal+li.EquipmentTotal {
			t.Fatalf("line total must be the exact sum of category totals")
		}
	})

	t.Run("manual quantity wins over formula", func(t *testing.T) {
		e := NewEngine(testCatalog(), nil, nil)
		li, err := e.CalculateLineItem(entities.LineItemInput{
			LineItemID: "li-shingles",
			Quantity:   fptr(30),
		}, vars)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if li.Quantity != 30 {
			t.Fatalf("expected manual quantity 30, got %v", li.Quantity)
		}
		if li.FormulaUsed != nil {
			t.Fatalf("expected nil FormulaUsed for manual quantity")
		}
	})

	t.Run("waste applies to manual quantity too", func(t *testing.T) {
		e := NewEngine(testCatalog(), nil, nil)
		li, err := e.CalculateLineItem(entities.LineItemInput{
			LineItemID:  "li-shingles",
			Quantity:    fptr(10),
			WasteFactor: fptr(1.15),
		}, vars)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(li.QuantityWithWaste, 11.5) {
			t.Fatalf("expected 11.5, got %v", li.QuantityWithWaste)
		}
	})

	t.Run("input formula overrides catalog formula", func(t *testing.T) {
		e := NewEngine(testCatalog(), nil, nil)
		li, err := e.CalculateLineItem(entities.LineItemInput{
			LineItemID:      "li-shingles",
			QuantityFormula: sptr("SQ"),
		}, vars)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if li.Quantity != 25 {
			t.Fatalf("expected 25, got %v", li.Quantity)
		}
	})

	t.Run("broken formula falls back to zero quantity", func(t *testing.T) {
		e := NewEngine(testCatalog(), nil, nil)
		li, err := e.CalculateLineItem(entities.LineItemInput{
			LineItemID:      "li-shingles",
			QuantityFormula: sptr("SQ *"),
		}, vars)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if li.Quantity != 0 || li.LineTotal != 0 {
			t.Fatalf("expected zeroed line, got %+v", li)
		}
		if li.FormulaUsed != nil {
			t.Fatalf("expected nil FormulaUsed after fallback")
		}
	})

	t.Run("geographic multipliers on catalog costs only", func(t *testing.T) {
		e := NewEngine(testCatalog(), &entities.GeographicPricing{
			MaterialMultiplier:  1.15,
			LaborMultiplier:     1.45,
			EquipmentMultiplier: 1.10,
		}, nil)
		li, err := e.CalculateLineItem(entities.LineItemInput{LineItemID: "li-shingles"}, vars)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(li.MaterialUnitCost, 143.75) {
			t.Fatalf("expected material unit 143.75, got %v", li.MaterialUnitCost)
		}
		if !almostEqual(li.LaborUnitCost, 137.75) {
			t.Fatalf("expected labor unit 137.75, got %v", li.LaborUnitCost)
		}
		if !almostEqual(li.EquipmentUnitCost, 11.00) {
			t.Fatalf("expected equipment unit 11.00, got %v", li.EquipmentUnitCost)
		}

		li, err = e.CalculateLineItem(entities.LineItemInput{
			LineItemID:           "li-shingles",
			MaterialCostOverride: fptr(150),
		}, vars)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if li.MaterialUnitCost != 150 {
			t.Fatalf("override must bypass the multiplier, got %v", li.MaterialUnitCost)
		}
		if !almostEqual(li.LaborUnitCost, 137.75) {
			t.Fatalf("non-overridden costs keep the multiplier, got %v", li.LaborUnitCost)
		}
	})

	t.Run("unknown line item", func(t *testing.T) {
		e := NewEngine(testCatalog(), nil, nil)
		_, err := e.CalculateLineItem(entities.LineItemInput{LineItemID: "gone"}, vars)
		if !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		e := NewEngine(testCatalog(), nil, nil)
		input := entities.LineItemInput{LineItemID: "li-drip", WasteFactor: fptr(1.05)}
		a, err := e.CalculateLineItem(input, vars)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := e.CalculateLineItem(input, vars)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("expected identical results:\n%+v\n%+v", a, b)
		}
	})
}

func TestEngine_SetGeographicPricing(t *testing.T) {
	e := NewEngine(testCatalog(), nil, nil)
	vars := testVars()

	before, _ := e.CalculateLineItem(entities.LineItemInput{LineItemID: "li-shingles"}, vars)
	e.SetGeographicPricing(entities.GeographicPricing{MaterialMultiplier: 2})
	after, _ := e.CalculateLineItem(entities.LineItemInput{LineItemID: "li-shingles"}, vars)

	if !almostEqual(after.MaterialUnitCost, before.MaterialUnitCost*2) {
		t.Fatalf("expected doubled material cost, got %v", after.MaterialUnitCost)
	}
	// Unset multipliers normalize to 1.0.
	if after.LaborUnitCost != before.LaborUnitCost {
		t.Fatalf("labor multiplier should have defaulted to 1.0")
	}
}

func TestEngine_CalculateEstimate(t *testing.T) {
	vars := testVars()

	t.Run("markup scenario", func(t *testing.T) {
		// One manual line of exactly 1000 to pin the markup chain.
		defs := []entities.LineItemDefinition{{
			ID: "li-1", Name: "flat", Unit: entities.UnitEach,
			MaterialCost: 100, DefaultWasteFactor: 1.0, SortOrder: 1,
		}}
		e := NewEngine(defs, nil, nil)
		calc := e.CalculateEstimate([]entities.LineItemInput{
			{LineItemID: "li-1", Quantity: fptr(10)},
		}, vars, nil)

		if !almostEqual(calc.Subtotal, 1000) {
			t.Fatalf("expected subtotal 1000, got %v", calc.Subtotal)
		}
		if !almostEqual(calc.OverheadAmount, 100) {
			t.Fatalf("expected overhead 100, got %v", calc.OverheadAmount)
		}
		if !almostEqual(calc.ProfitAmount, 165) {
			t.Fatalf("expected profit 165, got %v", calc.ProfitAmount)
		}
		if !almostEqual(calc.PriceLikely, 1265) {
			t.Fatalf("expected likely 1265, got %v", calc.PriceLikely)
		}
		if !almostEqual(calc.PriceLow, 1138.5) {
			t.Fatalf("expected low 1138.5, got %v", calc.PriceLow)
		}
		if !almostEqual(calc.PriceHigh, 1454.75) {
			t.Fatalf("expected high 1454.75, got %v", calc.PriceHigh)
		}
	})

	t.Run("sorted by catalog sort order, stable", func(t *testing.T) {
		e := NewEngine(testCatalog(), nil, nil)
		calc := e.CalculateEstimate([]entities.LineItemInput{
			{LineItemID: "li-flat", Notes: "first"},
			{LineItemID: "li-shingles"},
			{LineItemID: "li-flat", Notes: "second"},
			{LineItemID: "li-tearoff"},
			{LineItemID: "li-drip"},
		}, vars, nil)

		got := make([]string, 0, len(calc.LineItems))
		for _, li := range calc.LineItems {
			got = append(got, li.LineItemID)
		}
		want := []string{"li-tearoff", "li-drip", "li-shingles", "li-flat", "li-flat"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("unexpected order: %v", got)
		}
		if calc.LineItems[3].Notes != "first" || calc.LineItems[4].Notes != "second" {
			t.Fatalf("tie order not stable: %v / %v", calc.LineItems[3].Notes, calc.LineItems[4].Notes)
		}
	})

	t.Run("excluded items listed but not totaled", func(t *testing.T) {
		e := NewEngine(testCatalog(), nil, nil)
		calc := e.CalculateEstimate([]entities.LineItemInput{
			{LineItemID: "li-shingles"},
			{LineItemID: "li-flat", Quantity: fptr(1), IsIncluded: bptr(false), IsOptional: true},
		}, vars, nil)

		if len(calc.LineItems) != 2 {
			t.Fatalf("expected both items in the list, got %d", len(calc.LineItems))
		}
		if !almostEqual(calc.Subtotal, 6325) {
			t.Fatalf("excluded item leaked into subtotal: %v", calc.Subtotal)
		}
		if calc.Subtotal != calc.TotalMaterial+calc.TotalLabor+calc.TotalEquipment {
			t.Fatalf("subtotal invariant broken")
		}
	})

	t.Run("unknown definition skipped", func(t *testing.T) {
		e := NewEngine(testCatalog(), nil, nil)
		calc := e.CalculateEstimate([]entities.LineItemInput{
			{LineItemID: "li-shingles"},
			{LineItemID: "deleted-from-catalog"},
		}, vars, nil)
		if len(calc.LineItems) != 1 {
			t.Fatalf("expected dangling input to be skipped, got %d items", len(calc.LineItems))
		}
	})

	t.Run("taxable amount over included taxable items only", func(t *testing.T) {
		e := NewEngine(testCatalog(), nil, nil)
		calc := e.CalculateEstimate([]entities.LineItemInput{
			{LineItemID: "li-shingles"},                                       // taxable
			{LineItemID: "li-tearoff"},                                        // not taxable
			{LineItemID: "li-drip", IsIncluded: bptr(false)},                  // taxable but excluded
			{LineItemID: "li-flat", Quantity: fptr(1)},                        // not taxable
		}, vars, &entities.CalculationOptions{TaxPercent: fptr(8.25)})

		if !almostEqual(calc.TaxableAmount, 6325) {
			t.Fatalf("expected taxable 6325, got %v", calc.TaxableAmount)
		}
		if !almostEqual(calc.TaxAmount, 521.81) {
			t.Fatalf("expected tax 521.81, got %v", calc.TaxAmount)
		}
	})

	t.Run("per-call geographic override", func(t *testing.T) {
		e := NewEngine(testCatalog(), nil, nil)
		calc := e.CalculateEstimate([]entities.LineItemInput{
			{LineItemID: "li-shingles"},
		}, vars, &entities.CalculationOptions{
			Geographic: &entities.GeographicPricing{MaterialMultiplier: 1.15, LaborMultiplier: 1.45, EquipmentMultiplier: 1.10},
		})
		if !almostEqual(calc.LineItems[0].MaterialUnitCost, 143.75) {
			t.Fatalf("expected per-call multiplier applied, got %v", calc.LineItems[0].MaterialUnitCost)
		}
		// Engine state untouched.
		if e.GeographicPricing().MaterialMultiplier != 1 {
			t.Fatalf("per-call override must not mutate engine state")
		}
	})

	t.Run("price band invariant", func(t *testing.T) {
		e := NewEngine(testCatalog(), nil, nil)
		calc := e.CalculateEstimate([]entities.LineItemInput{
			{LineItemID: "li-shingles"},
			{LineItemID: "li-tearoff"},
			{LineItemID: "li-drip"},
		}, vars, nil)
		if calc.PriceLikely <= 0 {
			t.Fatalf("expected positive likely price")
		}
		if !(calc.PriceLow < calc.PriceLikely && calc.PriceLikely < calc.PriceHigh) {
			t.Fatalf("band ordering broken: %v %v %v", calc.PriceLow, calc.PriceLikely, calc.PriceHigh)
		}
		if math.Abs(calc.PriceLow-calc.PriceLikely*0.9) > 0.005 {
			t.Fatalf("low band is not 0.90 of likely")
		}
		if math.Abs(calc.PriceHigh-calc.PriceLikely*1.15) > 0.005 {
			t.Fatalf("high band is not 1.15 of likely")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		e := NewEngine(testCatalog(), nil, nil)
		calc := e.CalculateEstimate(nil, vars, nil)
		if calc.Subtotal != 0 || calc.PriceLikely != 0 || len(calc.LineItems) != 0 {
			t.Fatalf("unexpected non-zero calculation: %+v", calc)
		}
	})
}

func TestEngine_ApplyMacro(t *testing.T) {
	macro := entities.Macro{
		ID:      "macro-reshingle",
		Name:    "Tear-off + Re-shingle",
		JobType: "full_replacement",
		LineItems: []entities.MacroLineItem{
			{LineItemID: "li-tearoff", QuantityFormula: sptr("SQ"), IsDefaultSelected: true, Group: "prep", SortOrder: 1},
			{LineItemID: "li-shingles", QuantityFormula: sptr("SQ*1.10"), WasteFactor: fptr(1.1), IsDefaultSelected: true, Group: "roof", SortOrder: 2},
			{LineItemID: "li-upsell", QuantityFormula: sptr("R"), IsDefaultSelected: false, IsOptional: true, SortOrder: 3},
			{LineItemID: "li-deleted", QuantityFormula: sptr("SQ"), IsDefaultSelected: true, SortOrder: 4},
		},
	}
	catalog := testCatalog()
	catalog = append(catalog, entities.LineItemDefinition{
		ID: "li-upsell", Name: "Ridge vent upgrade", Unit: entities.UnitLinearFt, SortOrder: 50,
	})
	e := NewEngine(catalog, nil, []entities.Macro{macro})

	t.Run("expands and drops dangling references", func(t *testing.T) {
		inputs, err := e.ApplyMacro("macro-reshingle")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(inputs) != 3 {
			t.Fatalf("expected dangling entry dropped, got %d inputs", len(inputs))
		}
		// Output follows the macro's own order.
		if inputs[0].LineItemID != "li-tearoff" || inputs[1].LineItemID != "li-shingles" || inputs[2].LineItemID != "li-upsell" {
			t.Fatalf("unexpected order: %+v", inputs)
		}
		if !inputs[0].Included() || !inputs[1].Included() || inputs[2].Included() {
			t.Fatalf("default-selection flags not mapped to inclusion")
		}
		if !inputs[2].IsOptional {
			t.Fatalf("optionality not carried")
		}
		if inputs[1].WasteFactor == nil || *inputs[1].WasteFactor != 1.1 {
			t.Fatalf("waste factor not carried")
		}
		if inputs[0].Group != "prep" {
			t.Fatalf("group not carried")
		}
	})

	t.Run("unknown macro", func(t *testing.T) {
		if _, err := e.ApplyMacro("nope"); !errors.Is(err, ErrMacroNotFound) {
			t.Fatalf("expected ErrMacroNotFound, got %v", err)
		}
	})

	t.Run("expansion feeds the estimate", func(t *testing.T) {
		inputs, err := e.ApplyMacro("macro-reshingle")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		calc := e.CalculateEstimate(inputs, testVars(), nil)
		if len(calc.LineItems) != 3 {
			t.Fatalf("expected 3 line items, got %d", len(calc.LineItems))
		}
		// The unselected optional item must not contribute to totals.
		if calc.Subtotal <= 0 {
			t.Fatalf("expected positive subtotal")
		}
		for _, li := range calc.LineItems {
			if li.LineItemID == "li-upsell" && li.IsIncluded {
				t.Fatalf("optional upsell should be excluded by default")
			}
		}
	})
}
