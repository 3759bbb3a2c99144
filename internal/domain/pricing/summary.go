package pricing

import (
	"fmt"
	"strings"

	"roofpro/internal/domain/entities"
	"roofpro/pkg"
)

// GroupLineItems buckets calculated line items by their group label,
// falling back to the catalog category for ungrouped items.
func GroupLineItems(calc entities.EstimateCalculation) map[string][]entities.CalculatedLineItem {
	groups := make(map[string][]entities.CalculatedLineItem)
	for _, li := range calc.LineItems {
		key := li.Group
		if key == "" {
			key = string(li.Category)
		}
		groups[key] = append(groups[key], li)
	}
	return groups
}

// CostPerSquare is the likely price per roofing square, 0 when the roof has
// no measured squares.
func CostPerSquare(calc entities.EstimateCalculation, vars entities.RoofVariables) float64 {
	if vars.SQ <= 0 {
		return 0
	}
	return calc.PriceLikely / vars.SQ
}

// GenerateEstimateSummary renders a plain-text customer summary of the
// calculation: included line items, cost breakdown, markups and the price
// band.
func GenerateEstimateSummary(calc entities.EstimateCalculation) string {
	var b strings.Builder

	b.WriteString("Estimate Summary\n")
	b.WriteString("================\n")
	for _, li := range calc.LineItems {
		if !li.IsIncluded {
			continue
		}
		fmt.Fprintf(&b, "%-40s %12s %14s\n",
			li.Name,
			pkg.FormatQuantity(li.QuantityWithWaste, string(li.Unit)),
			pkg.FormatCurrency(li.LineTotal),
		)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Materials:  %s\n", pkg.FormatCurrency(calc.TotalMaterial))
	fmt.Fprintf(&b, "Labor:      %s\n", pkg.FormatCurrency(calc.TotalLabor))
	fmt.Fprintf(&b, "Equipment:  %s\n", pkg.FormatCurrency(calc.TotalEquipment))
	fmt.Fprintf(&b, "Subtotal:   %s\n", pkg.FormatCurrency(calc.Subtotal))
	fmt.Fprintf(&b, "Overhead (%.1f%%): %s\n", calc.OverheadPercent, pkg.FormatCurrency(calc.OverheadAmount))
	fmt.Fprintf(&b, "Profit (%.1f%%):   %s\n", calc.ProfitPercent, pkg.FormatCurrency(calc.ProfitAmount))
	if calc.TaxAmount > 0 {
		fmt.Fprintf(&b, "Tax (%.2f%%):     %s\n", calc.TaxPercent, pkg.FormatCurrency(calc.TaxAmount))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Price range: %s - %s (likely %s)\n",
		pkg.FormatCurrency(calc.PriceLow),
		pkg.FormatCurrency(calc.PriceHigh),
		pkg.FormatCurrency(calc.PriceLikely),
	)
	return b.String()
}
