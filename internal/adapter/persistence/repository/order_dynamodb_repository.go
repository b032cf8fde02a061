package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersPaymentIDIndex   = "payment_id-index"
	ordersUserIDIndex      = "user_id-index"
)

type orderItem struct {
	ID         string `dynamodbav:"id"`
	UserID     string `dynamodbav:"user_id"`
	ServiceID  string `dynamodbav:"service_id,omitempty"`
	CategoryID string `dynamodbav:"category_id,omitempty"`
	PaymentID  string `dynamodbav:"payment_id"`
	Type       string `dynamodbav:"type,omitempty"`
	LineIndex  int    `dynamodbav:"line_index"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_id-index (PK: payment_id)
//   - GSI: user_id-index (PK: user_id)
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = defaultOrdersTableName
	}
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

// CreateMany writes each order with attribute_not_exists(id). Existing ids
// are skipped; a failing line does not stop the others.
func (r *OrderDynamoRepository) CreateMany(ctx context.Context, orders []entities.Order) ([]entities.Order, error) {
	created := make([]entities.Order, 0, len(orders))
	var errs []error
	for _, o := range orders {
		if !o.Type.Valid() {
			errs = append(errs, fmt.Errorf("order %s: %w", o.ID, interfaces.ErrConstraintViolation))
			continue
		}
		av, err := attributevalue.MarshalMap(toOrderItem(o))
		if err != nil {
			errs = append(errs, fmt.Errorf("order %s: %w", o.ID, err))
			continue
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
			if isConditionalCheckFailed(err) {
				continue
			}
			errs = append(errs, fmt.Errorf("order %s: %w", o.ID, err))
			continue
		}
		created = append(created, o)
	}
	return created, errors.Join(errs...)
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAV(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByPaymentID(ctx context.Context, paymentID string) ([]entities.Order, error) {
	return r.listByIndex(ctx, ordersPaymentIDIndex, "payment_id", paymentID)
}

func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	return r.listByIndex(ctx, ordersUserIDIndex, "user_id", userID)
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAV(id),
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     stringAV(string(status)),
			":updated_at": stringAV(formatTime(time.Now())),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Order, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": stringAV(value),
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(raw))
	for _, item := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.PaymentID != b.PaymentID {
			return a.PaymentID < b.PaymentID
		}
		return a.LineIndex < b.LineIndex
	})
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:         o.ID,
		UserID:     o.UserID,
		ServiceID:  o.ServiceID,
		CategoryID: o.CategoryID,
		PaymentID:  o.PaymentID,
		Type:       string(o.Type),
		LineIndex:  o.LineIndex,
		Status:     string(o.Status),
		CreatedAt:  formatTime(o.CreatedAt),
		UpdatedAt:  formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:         it.ID,
		UserID:     it.UserID,
		ServiceID:  it.ServiceID,
		CategoryID: it.CategoryID,
		PaymentID:  it.PaymentID,
		Type:       entities.AttributionType(it.Type),
		LineIndex:  it.LineIndex,
		Status:     entities.OrderStatus(it.Status),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
