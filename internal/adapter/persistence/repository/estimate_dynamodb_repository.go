package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"roofpro/internal/domain/entities"
	"roofpro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimatesLeadIDIndex      = "lead_id-index"
)

type estimateLineItemItem struct {
	LineItemID        string  `dynamodbav:"line_item_id"`
	ItemCode          string  `dynamodbav:"item_code"`
	Name              string  `dynamodbav:"name"`
	Category          string  `dynamodbav:"category"`
	Unit              string  `dynamodbav:"unit"`
	Quantity          float64 `dynamodbav:"quantity"`
	QuantityWithWaste float64 `dynamodbav:"quantity_with_waste"`
	FormulaUsed       string  `dynamodbav:"formula_used,omitempty"`
	MaterialUnitCost  float64 `dynamodbav:"material_unit_cost"`
	LaborUnitCost     float64 `dynamodbav:"labor_unit_cost"`
	EquipmentUnitCost float64 `dynamodbav:"equipment_unit_cost"`
	MaterialTotal     float64 `dynamodbav:"material_total"`
	LaborTotal        float64 `dynamodbav:"labor_total"`
	EquipmentTotal    float64 `dynamodbav:"equipment_total"`
	LineTotal         float64 `dynamodbav:"line_total"`
	IsIncluded        bool    `dynamodbav:"is_included"`
	IsOptional        bool    `dynamodbav:"is_optional"`
	Group             string  `dynamodbav:"group,omitempty"`
	Notes             string  `dynamodbav:"notes,omitempty"`
}

type estimateItem struct {
	ID             string                 `dynamodbav:"id"`
	LeadID         string                 `dynamodbav:"lead_id"`
	Status         string                 `dynamodbav:"status"`
	LineItems      []estimateLineItemItem `dynamodbav:"line_items"`
	TotalMaterial  string                 `dynamodbav:"total_material"`
	TotalLabor     string                 `dynamodbav:"total_labor"`
	TotalEquipment string                 `dynamodbav:"total_equipment"`
	Subtotal       string                 `dynamodbav:"subtotal"`
	OverheadAmount string                 `dynamodbav:"overhead_amount"`
	ProfitAmount   string                 `dynamodbav:"profit_amount"`
	TaxAmount      string                 `dynamodbav:"tax_amount"`
	PriceLow       string                 `dynamodbav:"price_low"`
	PriceLikely    string                 `dynamodbav:"price_likely"`
	PriceHigh      string                 `dynamodbav:"price_high"`
	CreatedAt      string                 `dynamodbav:"created_at"`
	UpdatedAt      string                 `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lead_id-index (PK: lead_id)
//
// Money amounts are stored as decimal strings to keep them exact in
// transit; the calculation layer already rounds them to cents.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it := toEstimateItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) GetByLeadID(ctx context.Context, leadID string) (entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesLeadIDIndex),
		KeyConditionExpression: aws.String("lead_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: leadID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Items) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) UpdateStatusByLeadID(ctx context.Context, leadID string, status entities.EstimateStatus) (entities.Estimate, error) {
	estimate, err := r.GetByLeadID(ctx, leadID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if estimate.ID == "" {
		return entities.Estimate{}, nil
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: estimate.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	items := make([]estimateLineItemItem, 0, len(e.LineItems))
	for _, li := range e.LineItems {
		items = append(items, estimateLineItemItem(li))
	}
	return estimateItem{
		ID:             e.ID,
		LeadID:         e.LeadID,
		Status:         string(e.Status),
		LineItems:      items,
		TotalMaterial:  floatToString(e.TotalMaterial),
		TotalLabor:     floatToString(e.TotalLabor),
		TotalEquipment: floatToString(e.TotalEquipment),
		Subtotal:       floatToString(e.Subtotal),
		OverheadAmount: floatToString(e.OverheadAmount),
		ProfitAmount:   floatToString(e.ProfitAmount),
		TaxAmount:      floatToString(e.TaxAmount),
		PriceLow:       floatToString(e.PriceLow),
		PriceLikely:    floatToString(e.PriceLikely),
		PriceHigh:      floatToString(e.PriceHigh),
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	items := make([]entities.EstimateLineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		items = append(items, entities.EstimateLineItem(li))
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Estimate{
		ID:             it.ID,
		LeadID:         it.LeadID,
		Status:         entities.EstimateStatus(it.Status),
		LineItems:      items,
		TotalMaterial:  stringToFloat(it.TotalMaterial),
		TotalLabor:     stringToFloat(it.TotalLabor),
		TotalEquipment: stringToFloat(it.TotalEquipment),
		Subtotal:       stringToFloat(it.Subtotal),
		OverheadAmount: stringToFloat(it.OverheadAmount),
		ProfitAmount:   stringToFloat(it.ProfitAmount),
		TaxAmount:      stringToFloat(it.TaxAmount),
		PriceLow:       stringToFloat(it.PriceLow),
		PriceLikely:    stringToFloat(it.PriceLikely),
		PriceHigh:      stringToFloat(it.PriceHigh),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
