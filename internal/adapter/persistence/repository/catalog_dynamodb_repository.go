package repository

import (
	"context"

	"roofpro/internal/domain/entities"
	"roofpro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLineItemsTableName  = "line_items"
	defaultMacrosTableName     = "macros"
	defaultGeoPricingTableName = "geographic_pricing"
)

type lineItemDefinitionItem struct {
	ID                 string  `dynamodbav:"id"`
	ItemCode           string  `dynamodbav:"item_code"`
	Name               string  `dynamodbav:"name"`
	Category           string  `dynamodbav:"category"`
	Unit               string  `dynamodbav:"unit"`
	MaterialCost       float64 `dynamodbav:"material_cost"`
	LaborCost          float64 `dynamodbav:"labor_cost"`
	EquipmentCost      float64 `dynamodbav:"equipment_cost"`
	DefaultWasteFactor float64 `dynamodbav:"default_waste_factor"`
	QuantityFormula    string  `dynamodbav:"quantity_formula,omitempty"`
	IsTaxable          bool    `dynamodbav:"is_taxable"`
	SortOrder          int     `dynamodbav:"sort_order"`
}

type macroLineItemItem struct {
	LineItemID            string   `dynamodbav:"line_item_id"`
	QuantityFormula       *string  `dynamodbav:"quantity_formula,omitempty"`
	WasteFactor           *float64 `dynamodbav:"waste_factor,omitempty"`
	MaterialCostOverride  *float64 `dynamodbav:"material_cost_override,omitempty"`
	LaborCostOverride     *float64 `dynamodbav:"labor_cost_override,omitempty"`
	EquipmentCostOverride *float64 `dynamodbav:"equipment_cost_override,omitempty"`
	IsDefaultSelected     bool     `dynamodbav:"is_default_selected"`
	IsOptional            bool     `dynamodbav:"is_optional"`
	Group                 string   `dynamodbav:"group,omitempty"`
	SortOrder             int      `dynamodbav:"sort_order"`
	Notes                 string   `dynamodbav:"notes,omitempty"`
}

type macroItem struct {
	ID        string              `dynamodbav:"id"`
	Name      string              `dynamodbav:"name"`
	RoofType  string              `dynamodbav:"roof_type,omitempty"`
	JobType   string              `dynamodbav:"job_type,omitempty"`
	LineItems []macroLineItemItem `dynamodbav:"line_items"`
}

type geographicPricingItem struct {
	Region              string  `dynamodbav:"region"`
	MaterialMultiplier  float64 `dynamodbav:"material_multiplier"`
	LaborMultiplier     float64 `dynamodbav:"labor_multiplier"`
	EquipmentMultiplier float64 `dynamodbav:"equipment_multiplier"`
}

// CatalogDynamoRepository reads the pricing catalog from DynamoDB.
//
// Table requirements:
//   - line items table, PK: id (string)
//   - macros table, PK: id (string)
//   - geographic pricing table, PK: region (string)
//
// The catalog is small and read in full at startup, so the list operations
// scan with pagination rather than query.

type CatalogDynamoRepository struct {
	ddb             *dynamodb.Client
	lineItemsTable  string
	macrosTable     string
	geoPricingTable string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:             ddb,
		lineItemsTable:  getenvDefault("LINE_ITEMS_TABLE", defaultLineItemsTableName),
		macrosTable:     getenvDefault("MACROS_TABLE", defaultMacrosTableName),
		geoPricingTable: getenvDefault("GEO_PRICING_TABLE", defaultGeoPricingTableName),
	}
}

func (r *CatalogDynamoRepository) ListLineItems(ctx context.Context) ([]entities.LineItemDefinition, error) {
	raws, err := r.scanAll(ctx, r.lineItemsTable)
	if err != nil {
		return nil, err
	}

	items := make([]entities.LineItemDefinition, 0, len(raws))
	for _, raw := range raws {
		var it lineItemDefinitionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromLineItemDefinitionItem(it))
	}
	return items, nil
}

func (r *CatalogDynamoRepository) ListMacros(ctx context.Context) ([]entities.Macro, error) {
	raws, err := r.scanAll(ctx, r.macrosTable)
	if err != nil {
		return nil, err
	}

	macros := make([]entities.Macro, 0, len(raws))
	for _, raw := range raws {
		var it macroItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		macros = append(macros, fromMacroItem(it))
	}
	return macros, nil
}

func (r *CatalogDynamoRepository) GetGeographicPricing(ctx context.Context, region string) (entities.GeographicPricing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.geoPricingTable),
		Key: map[string]types.AttributeValue{
			"region": &types.AttributeValueMemberS{Value: region},
		},
	})
	if err != nil {
		return entities.GeographicPricing{}, err
	}
	if len(out.Item) == 0 {
		return entities.GeographicPricing{}, nil
	}

	var it geographicPricingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GeographicPricing{}, err
	}
	return entities.GeographicPricing{
		Region:              it.Region,
		MaterialMultiplier:  it.MaterialMultiplier,
		LaborMultiplier:     it.LaborMultiplier,
		EquipmentMultiplier: it.EquipmentMultiplier,
	}, nil
}

func (r *CatalogDynamoRepository) scanAll(ctx context.Context, table string) ([]map[string]types.AttributeValue, error) {
	var raws []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		raws = append(raws, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return raws, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func fromLineItemDefinitionItem(it lineItemDefinitionItem) entities.LineItemDefinition {
	return entities.LineItemDefinition{
		ID:                 it.ID,
		ItemCode:           it.ItemCode,
		Name:               it.Name,
		Category:           entities.LineItemCategory(it.Category),
		Unit:               entities.UnitType(it.Unit),
		MaterialCost:       it.MaterialCost,
		LaborCost:          it.LaborCost,
		EquipmentCost:      it.EquipmentCost,
		DefaultWasteFactor: it.DefaultWasteFactor,
		QuantityFormula:    it.QuantityFormula,
		IsTaxable:          it.IsTaxable,
		SortOrder:          it.SortOrder,
	}
}

func fromMacroItem(it macroItem) entities.Macro {
	items := make([]entities.MacroLineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		items = append(items, entities.MacroLineItem(li))
	}
	return entities.Macro{
		ID:        it.ID,
		Name:      it.Name,
		RoofType:  it.RoofType,
		JobType:   it.JobType,
		LineItems: items,
	}
}
