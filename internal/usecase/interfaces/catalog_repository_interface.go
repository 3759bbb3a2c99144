package interfaces

import (
	"context"

	"roofpro/internal/domain/entities"
)

// ICatalogRepository abstracts DynamoDB persistence for the pricing catalog:
// line item definitions, macros and geographic pricing records.
//
// The pricing engine snapshots the catalog at construction; these reads
// happen at startup (and on explicit reloads), not per calculation.
type ICatalogRepository interface {
	ListLineItems(ctx context.Context) ([]entities.LineItemDefinition, error)
	ListMacros(ctx context.Context) ([]entities.Macro, error)
	GetGeographicPricing(ctx context.Context, region string) (entities.GeographicPricing, error)
}
