package repository

import (
	"context"
	"encoding/json"
	"errors"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "cost_estimates"
	estimatesCustomerIDIndex  = "customer_id-index"
	estimatesShopIDIndex      = "shop_id-index"
)

// costEstimateItem is the persisted shape. Nested documents (vehicle info,
// breakdowns) are stored as JSON strings so the stored form round-trips
// bit-identically; OriginalBreakdown in particular must never drift once
// frozen.
type costEstimateItem struct {
	ID                 string `dynamodbav:"id"`
	CustomerID         string `dynamodbav:"customer_id"`
	ShopID             string `dynamodbav:"shop_id,omitempty"`
	ConversationID     string `dynamodbav:"conversation_id,omitempty"`
	VehicleInfo        string `dynamodbav:"vehicle_info,omitempty"`
	Breakdown          string `dynamodbav:"breakdown"`
	OriginalBreakdown  string `dynamodbav:"original_breakdown,omitempty"`
	ModifiedBreakdown  string `dynamodbav:"modified_breakdown,omitempty"`
	IsModified         bool   `dynamodbav:"is_modified"`
	ModifiedByMechanic string `dynamodbav:"modified_by_mechanic_id,omitempty"`
	ModifiedAt         string `dynamodbav:"modified_at,omitempty"`
	Status             string `dynamodbav:"status"`
	Confidence         float64 `dynamodbav:"confidence,omitempty"`
	ServiceType        string `dynamodbav:"service_type,omitempty"`
	CustomerComment    string `dynamodbav:"customer_comment,omitempty"`
	MechanicNotes      string `dynamodbav:"mechanic_notes,omitempty"`
	CustomerNotes      string `dynamodbav:"customer_notes,omitempty"`
	MechanicRequestID  string `dynamodbav:"mechanic_request_id,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
	ValidUntil         string `dynamodbav:"valid_until,omitempty"`
}

// CostEstimateDynamoRepository persists CostEstimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id, SK: created_at)
//   - GSI: shop_id-index (PK: shop_id, SK: created_at)

type CostEstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostEstimateRepository = (*CostEstimateDynamoRepository)(nil)

func NewCostEstimateDynamoRepository(ddb *dynamodb.Client) *CostEstimateDynamoRepository {
	return &CostEstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *CostEstimateDynamoRepository) Create(ctx context.Context, e entities.CostEstimate) (entities.CostEstimate, error) {
	it, err := toCostEstimateItem(e)
	if err != nil {
		return entities.CostEstimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CostEstimate{}, err
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
		return entities.CostEstimate{}, err
	}
	return e, nil
}

func (r *CostEstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.CostEstimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostEstimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.CostEstimate{}, nil
	}

	var it costEstimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CostEstimate{}, err
	}
	return fromCostEstimateItem(it)
}

// UpdateIfStatus writes the full item conditionally on the stored status
// still matching the caller's read. The conditional write is the system's
// only serialization primitive.
func (r *CostEstimateDynamoRepository) UpdateIfStatus(ctx context.Context, e entities.CostEstimate, expected entities.EstimateStatus) (entities.CostEstimate, error) {
	it, err := toCostEstimateItem(e)
	if err != nil {
		return entities.CostEstimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CostEstimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expected)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			current, gerr := r.GetByID(ctx, e.ID)
			if gerr != nil {
				return entities.CostEstimate{}, gerr
			}
			if current.ID == "" {
				return entities.CostEstimate{}, interfaces.ErrNotFound
			}
			return entities.CostEstimate{}, interfaces.ErrConflict
		}
		return entities.CostEstimate{}, err
	}
	return e, nil
}

func (r *CostEstimateDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.CostEstimate, error) {
	return r.listByIndex(ctx, estimatesCustomerIDIndex, "customer_id", customerID)
}

func (r *CostEstimateDynamoRepository) ListByShopID(ctx context.Context, shopID string) ([]entities.CostEstimate, error) {
	return r.listByIndex(ctx, estimatesShopIDIndex, "shop_id", shopID)
}

func (r *CostEstimateDynamoRepository) listByIndex(ctx context.Context, index, key, value string) ([]entities.CostEstimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		// Newest first for dashboards.
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CostEstimate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it costEstimateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		e, err := fromCostEstimateItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}

func toCostEstimateItem(e entities.CostEstimate) (costEstimateItem, error) {
	vehicle, err := json.Marshal(e.VehicleInfo)
	if err != nil {
		return costEstimateItem{}, err
	}
	breakdown, err := json.Marshal(e.Breakdown)
	if err != nil {
		return costEstimateItem{}, err
	}
	it := costEstimateItem{
		ID:                 e.ID,
		CustomerID:         e.CustomerID,
		ShopID:             e.ShopID,
		ConversationID:     e.ConversationID,
		VehicleInfo:        string(vehicle),
		Breakdown:          string(breakdown),
		IsModified:         e.IsModified,
		ModifiedByMechanic: e.ModifiedByMechanic,
		ModifiedAt:         fmtTimePtr(e.ModifiedAt),
		Status:             string(e.Status),
		Confidence:         e.Confidence,
		ServiceType:        e.ServiceType,
		CustomerComment:    e.CustomerComment,
		MechanicNotes:      e.MechanicNotes,
		CustomerNotes:      e.CustomerNotes,
		MechanicRequestID:  e.MechanicRequestID,
		CreatedAt:          fmtTime(e.CreatedAt),
		UpdatedAt:          fmtTime(e.UpdatedAt),
		ValidUntil:         fmtTimePtr(e.ValidUntil),
	}
	if e.OriginalBreakdown != nil {
		b, err := json.Marshal(e.OriginalBreakdown)
		if err != nil {
			return costEstimateItem{}, err
		}
		it.OriginalBreakdown = string(b)
	}
	if e.ModifiedBreakdown != nil {
		b, err := json.Marshal(e.ModifiedBreakdown)
		if err != nil {
			return costEstimateItem{}, err
		}
		it.ModifiedBreakdown = string(b)
	}
	return it, nil
}

func fromCostEstimateItem(it costEstimateItem) (entities.CostEstimate, error) {
	e := entities.CostEstimate{
		ID:                 it.ID,
		CustomerID:         it.CustomerID,
		ShopID:             it.ShopID,
		ConversationID:     it.ConversationID,
		IsModified:         it.IsModified,
		ModifiedByMechanic: it.ModifiedByMechanic,
		ModifiedAt:         parseTimePtr(it.ModifiedAt),
		Status:             entities.EstimateStatus(it.Status),
		Confidence:         it.Confidence,
		ServiceType:        it.ServiceType,
		CustomerComment:    it.CustomerComment,
		MechanicNotes:      it.MechanicNotes,
		CustomerNotes:      it.CustomerNotes,
		MechanicRequestID:  it.MechanicRequestID,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
		ValidUntil:         parseTimePtr(it.ValidUntil),
	}
	if it.VehicleInfo != "" {
		if err := json.Unmarshal([]byte(it.VehicleInfo), &e.VehicleInfo); err != nil {
			return entities.CostEstimate{}, err
		}
	}
	if it.Breakdown != "" {
		if err := json.Unmarshal([]byte(it.Breakdown), &e.Breakdown); err != nil {
			return entities.CostEstimate{}, err
		}
	}
	if it.OriginalBreakdown != "" {
		var b entities.EstimateBreakdown
		if err := json.Unmarshal([]byte(it.OriginalBreakdown), &b); err != nil {
			return entities.CostEstimate{}, err
		}
		e.OriginalBreakdown = &b
	}
	if it.ModifiedBreakdown != "" {
		var b entities.EstimateBreakdown
		if err := json.Unmarshal([]byte(it.ModifiedBreakdown), &b); err != nil {
			return entities.CostEstimate{}, err
		}
		e.ModifiedBreakdown = &b
	}
	return e, nil
}
