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
	defaultRequestsTableName = "mechanic_requests"
	requestsShopIDIndex      = "shop_id-index"
	requestsCustomerIDIndex  = "customer_id-index"
)

type mechanicRequestItem struct {
	ID                 string `dynamodbav:"id"`
	CustomerID         string `dynamodbav:"customer_id"`
	ShopID             string `dynamodbav:"shop_id"`
	AssignedMechanicID string `dynamodbav:"assigned_mechanic_id,omitempty"`
	RequestMessage     string `dynamodbav:"request_message"`
	Urgency            string `dynamodbav:"urgency"`
	Status             string `dynamodbav:"status"`
	ConversationSnap   string `dynamodbav:"conversation_snapshot,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// MechanicRequestDynamoRepository persists MechanicRequest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: shop_id-index (PK: shop_id, SK: created_at) for queue order
//   - GSI: customer_id-index (PK: customer_id, SK: created_at)

type MechanicRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMechanicRequestRepository = (*MechanicRequestDynamoRepository)(nil)

func NewMechanicRequestDynamoRepository(ddb *dynamodb.Client) *MechanicRequestDynamoRepository {
	return &MechanicRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MECHANIC_REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *MechanicRequestDynamoRepository) Create(ctx context.Context, req entities.MechanicRequest) (entities.MechanicRequest, error) {
	av, err := attributevalue.MarshalMap(toMechanicRequestItem(req))
	if err != nil {
		return entities.MechanicRequest{}, err
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
		return entities.MechanicRequest{}, err
	}
	return req, nil
}

func (r *MechanicRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.MechanicRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MechanicRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.MechanicRequest{}, nil
	}

	var it mechanicRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MechanicRequest{}, err
	}
	return fromMechanicRequestItem(it), nil
}

func (r *MechanicRequestDynamoRepository) UpdateIfStatus(ctx context.Context, req entities.MechanicRequest, expected entities.RequestStatus) (entities.MechanicRequest, error) {
	av, err := attributevalue.MarshalMap(toMechanicRequestItem(req))
	if err != nil {
		return entities.MechanicRequest{}, err
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
			current, gerr := r.GetByID(ctx, req.ID)
			if gerr != nil {
				return entities.MechanicRequest{}, gerr
			}
			if current.ID == "" {
				return entities.MechanicRequest{}, interfaces.ErrNotFound
			}
			return entities.MechanicRequest{}, interfaces.ErrConflict
		}
		return entities.MechanicRequest{}, err
	}
	return req, nil
}

// ListByShopID returns the shop queue oldest-first: the FIFO order used for
// fairness. Urgency-based display ordering is a presentation concern.
func (r *MechanicRequestDynamoRepository) ListByShopID(ctx context.Context, shopID string) ([]entities.MechanicRequest, error) {
	return r.listByIndex(ctx, requestsShopIDIndex, "shop_id", shopID, true)
}

func (r *MechanicRequestDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.MechanicRequest, error) {
	return r.listByIndex(ctx, requestsCustomerIDIndex, "customer_id", customerID, false)
}

func (r *MechanicRequestDynamoRepository) listByIndex(ctx context.Context, index, key, value string, oldestFirst bool) ([]entities.MechanicRequest, error) {
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
		ScanIndexForward: aws.Bool(oldestFirst),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.MechanicRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it mechanicRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMechanicRequestItem(it))
	}
	return items, nil
}

func toMechanicRequestItem(r entities.MechanicRequest) mechanicRequestItem {
	return mechanicRequestItem{
		ID:                 r.ID,
		CustomerID:         r.CustomerID,
		ShopID:             r.ShopID,
		AssignedMechanicID: r.AssignedMechanicID,
		RequestMessage:     r.RequestMessage,
		Urgency:            string(r.Urgency),
		Status:             string(r.Status),
		ConversationSnap:   string(r.ConversationSnap),
		CreatedAt:          fmtTime(r.CreatedAt),
		UpdatedAt:          fmtTime(r.UpdatedAt),
	}
}

func fromMechanicRequestItem(it mechanicRequestItem) entities.MechanicRequest {
	var snap json.RawMessage
	if it.ConversationSnap != "" {
		snap = json.RawMessage(it.ConversationSnap)
	}
	return entities.MechanicRequest{
		ID:                 it.ID,
		CustomerID:         it.CustomerID,
		ShopID:             it.ShopID,
		AssignedMechanicID: it.AssignedMechanicID,
		RequestMessage:     it.RequestMessage,
		Urgency:            entities.Urgency(it.Urgency),
		Status:             entities.RequestStatus(it.Status),
		ConversationSnap:   snap,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
