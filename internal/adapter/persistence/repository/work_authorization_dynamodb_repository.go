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
	defaultAuthorizationsTableName = "work_authorizations"
	authorizationsMechanicIDIndex  = "mechanic_id-index"
	authorizationsShopIDIndex      = "shop_id-index"
	authorizationsCustomerIDIndex  = "customer_id-index"
)

// workAuthorizationItem stores the stage-window log as a JSON string so the
// recorded timestamps replay deterministically; durations are derived from
// them, never from wall clock at read time.
type workAuthorizationItem struct {
	ID                string  `dynamodbav:"id"`
	MechanicRequestID string  `dynamodbav:"mechanic_request_id,omitempty"`
	EstimateID        string  `dynamodbav:"estimate_id"`
	CustomerID        string  `dynamodbav:"customer_id"`
	MechanicID        string  `dynamodbav:"mechanic_id,omitempty"`
	ShopID            string  `dynamodbav:"shop_id,omitempty"`
	ServiceType       string  `dynamodbav:"service_type,omitempty"`
	Urgency           string  `dynamodbav:"urgency,omitempty"`
	WorkflowStatus    string  `dynamodbav:"workflow_status"`
	PreviousStatus    string  `dynamodbav:"previous_status,omitempty"`
	TimeTracking      string  `dynamodbav:"time_tracking"`
	EstimatedDuration float64 `dynamodbav:"estimated_duration_minutes,omitempty"`
	EstimatedCompl    string  `dynamodbav:"estimated_completion,omitempty"`
	ActualDuration    string  `dynamodbav:"actual_duration_minutes,omitempty"`
	ActualCompletion  string  `dynamodbav:"actual_completion,omitempty"`
	CustomerNotified  bool    `dynamodbav:"customer_notified"`
	MechanicNotes     string  `dynamodbav:"mechanic_notes,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

// WorkAuthorizationDynamoRepository persists WorkAuthorization entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: mechanic_id-index (PK: mechanic_id, SK: created_at)
//   - GSI: shop_id-index (PK: shop_id, SK: created_at)
//   - GSI: customer_id-index (PK: customer_id, SK: created_at)

type WorkAuthorizationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkAuthorizationRepository = (*WorkAuthorizationDynamoRepository)(nil)

func NewWorkAuthorizationDynamoRepository(ddb *dynamodb.Client) *WorkAuthorizationDynamoRepository {
	return &WorkAuthorizationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_AUTHORIZATIONS_TABLE", defaultAuthorizationsTableName),
	}
}

func (r *WorkAuthorizationDynamoRepository) Create(ctx context.Context, w entities.WorkAuthorization) (entities.WorkAuthorization, error) {
	it, err := toWorkAuthorizationItem(w)
	if err != nil {
		return entities.WorkAuthorization{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WorkAuthorization{}, err
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
		return entities.WorkAuthorization{}, err
	}
	return w, nil
}

func (r *WorkAuthorizationDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkAuthorization, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkAuthorization{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkAuthorization{}, nil
	}

	var it workAuthorizationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkAuthorization{}, err
	}
	return fromWorkAuthorizationItem(it)
}

func (r *WorkAuthorizationDynamoRepository) UpdateIfStatus(ctx context.Context, w entities.WorkAuthorization, expected entities.WorkflowStatus) (entities.WorkAuthorization, error) {
	it, err := toWorkAuthorizationItem(w)
	if err != nil {
		return entities.WorkAuthorization{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WorkAuthorization{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #workflow_status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#workflow_status": "workflow_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expected)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			current, gerr := r.GetByID(ctx, w.ID)
			if gerr != nil {
				return entities.WorkAuthorization{}, gerr
			}
			if current.ID == "" {
				return entities.WorkAuthorization{}, interfaces.ErrNotFound
			}
			return entities.WorkAuthorization{}, interfaces.ErrConflict
		}
		return entities.WorkAuthorization{}, err
	}
	return w, nil
}

func (r *WorkAuthorizationDynamoRepository) ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.WorkAuthorization, error) {
	return r.listByIndex(ctx, authorizationsMechanicIDIndex, "mechanic_id", mechanicID)
}

func (r *WorkAuthorizationDynamoRepository) ListByShopID(ctx context.Context, shopID string) ([]entities.WorkAuthorization, error) {
	return r.listByIndex(ctx, authorizationsShopIDIndex, "shop_id", shopID)
}

func (r *WorkAuthorizationDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.WorkAuthorization, error) {
	return r.listByIndex(ctx, authorizationsCustomerIDIndex, "customer_id", customerID)
}

func (r *WorkAuthorizationDynamoRepository) listByIndex(ctx context.Context, index, key, value string) ([]entities.WorkAuthorization, error) {
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
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WorkAuthorization, 0, len(out.Items))
	for _, raw := range out.Items {
		var it workAuthorizationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		w, err := fromWorkAuthorizationItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, nil
}

func toWorkAuthorizationItem(w entities.WorkAuthorization) (workAuthorizationItem, error) {
	tracking, err := json.Marshal(w.TimeTracking)
	if err != nil {
		return workAuthorizationItem{}, err
	}
	it := workAuthorizationItem{
		ID:                w.ID,
		MechanicRequestID: w.MechanicRequestID,
		EstimateID:        w.EstimateID,
		CustomerID:        w.CustomerID,
		MechanicID:        w.MechanicID,
		ShopID:            w.ShopID,
		ServiceType:       w.ServiceType,
		Urgency:           string(w.Urgency),
		WorkflowStatus:    string(w.WorkflowStatus),
		PreviousStatus:    string(w.PreviousStatus),
		TimeTracking:      string(tracking),
		EstimatedDuration: w.EstimatedDurationMinutes,
		EstimatedCompl:    fmtTimePtr(w.EstimatedCompletion),
		ActualCompletion:  fmtTimePtr(w.ActualCompletion),
		CustomerNotified:  w.CustomerNotified,
		MechanicNotes:     w.MechanicNotes,
		CreatedAt:         fmtTime(w.CreatedAt),
		UpdatedAt:         fmtTime(w.UpdatedAt),
	}
	if w.ActualDurationMinutes != nil {
		b, err := json.Marshal(*w.ActualDurationMinutes)
		if err != nil {
			return workAuthorizationItem{}, err
		}
		it.ActualDuration = string(b)
	}
	return it, nil
}

func fromWorkAuthorizationItem(it workAuthorizationItem) (entities.WorkAuthorization, error) {
	w := entities.WorkAuthorization{
		ID:                       it.ID,
		MechanicRequestID:        it.MechanicRequestID,
		EstimateID:               it.EstimateID,
		CustomerID:               it.CustomerID,
		MechanicID:               it.MechanicID,
		ShopID:                   it.ShopID,
		ServiceType:              it.ServiceType,
		Urgency:                  entities.Urgency(it.Urgency),
		WorkflowStatus:           entities.WorkflowStatus(it.WorkflowStatus),
		PreviousStatus:           entities.WorkflowStatus(it.PreviousStatus),
		EstimatedDurationMinutes: it.EstimatedDuration,
		EstimatedCompletion:      parseTimePtr(it.EstimatedCompl),
		ActualCompletion:         parseTimePtr(it.ActualCompletion),
		CustomerNotified:         it.CustomerNotified,
		MechanicNotes:            it.MechanicNotes,
		CreatedAt:                parseTime(it.CreatedAt),
		UpdatedAt:                parseTime(it.UpdatedAt),
	}
	if it.TimeTracking != "" {
		if err := json.Unmarshal([]byte(it.TimeTracking), &w.TimeTracking); err != nil {
			return entities.WorkAuthorization{}, err
		}
	}
	if it.ActualDuration != "" {
		var d float64
		if err := json.Unmarshal([]byte(it.ActualDuration), &d); err != nil {
			return entities.WorkAuthorization{}, err
		}
		w.ActualDurationMinutes = &d
	}
	return w, nil
}
