package repository

import (
	"context"
	"sort"
	"strings"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName   = "payments"
	paymentsProviderOrderIndex = "provider_order_id-index"
)

type paymentItem struct {
	ProviderTransactionID string                 `dynamodbav:"provider_transaction_id"`
	ID                    string                 `dynamodbav:"id"`
	ProviderOrderID       string                 `dynamodbav:"provider_order_id"`
	UserID                string                 `dynamodbav:"user_id,omitempty"`
	Amount                string                 `dynamodbav:"amount"`
	Status                string                 `dynamodbav:"status"`
	Date                  string                 `dynamodbav:"date"`
	ServiceID             string                 `dynamodbav:"service_id,omitempty"`
	Type                  string                 `dynamodbav:"type,omitempty"`
	FormData              map[string]interface{} `dynamodbav:"form_data,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: provider_transaction_id (string)
//   - GSI: provider_order_id-index (PK: provider_order_id)
//
// Keying the table by the gateway transaction id makes the uniqueness of a
// charge a property of the table itself; conditional writes turn it into
// the update/insert signals the reconciler needs.
type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string) *PaymentDynamoRepository {
	if tableName == "" {
		tableName = defaultPaymentsTableName
	}
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) UpdateByProviderTransactionID(ctx context.Context, p entities.Payment) (entities.Payment, bool, error) {
	if !p.Type.Valid() {
		return entities.Payment{}, false, interfaces.ErrConstraintViolation
	}

	sets := []string{"#provider_order_id = :provider_order_id", "#amount = :amount", "#status = :status"}
	names := map[string]string{
		"#ptid":              "provider_transaction_id",
		"#provider_order_id": "provider_order_id",
		"#amount":            "amount",
		"#status":            "status",
	}
	values := map[string]types.AttributeValue{
		":provider_order_id": stringAV(p.ProviderOrderID),
		":amount":            stringAV(p.Amount.String()),
		":status":            stringAV(string(p.Status)),
	}
	// The owner is set once; a redelivered callback never reassigns it.
	if p.UserID != "" {
		sets = append(sets, "#user_id = if_not_exists(#user_id, :user_id)")
		names["#user_id"] = "user_id"
		values[":user_id"] = stringAV(p.UserID)
	}
	optional := []struct{ attr, value string }{
		{"service_id", p.ServiceID},
		{"type", string(p.Type)},
	}
	for _, o := range optional {
		if o.value == "" {
			continue
		}
		sets = append(sets, "#"+o.attr+" = :"+o.attr)
		names["#"+o.attr] = o.attr
		values[":"+o.attr] = stringAV(o.value)
	}
	if len(p.FormData) > 0 {
		fd, err := attributevalue.Marshal(p.FormData)
		if err != nil {
			return entities.Payment{}, false, err
		}
		sets = append(sets, "#form_data = :form_data")
		names["#form_data"] = "form_data"
		values[":form_data"] = fd
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"provider_transaction_id": stringAV(p.ProviderTransactionID),
		},
		ConditionExpression:       aws.String("attribute_exists(#ptid)"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Payment{}, false, nil
		}
		return entities.Payment{}, false, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, false, err
	}
	return fromPaymentItem(it), true, nil
}

func (r *PaymentDynamoRepository) Insert(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if !p.Type.Valid() {
		return entities.Payment{}, interfaces.ErrConstraintViolation
	}
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#ptid)"),
		ExpressionAttributeNames: map[string]string{
			"#ptid": "provider_transaction_id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Payment{}, interfaces.ErrUniqueViolation
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByProviderTransactionID(ctx context.Context, providerTransactionID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"provider_transaction_id": stringAV(providerTransactionID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// FindByProviderOrderID returns the most recent payment for a gateway order.
func (r *PaymentDynamoRepository) FindByProviderOrderID(ctx context.Context, providerOrderID string) (entities.Payment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsProviderOrderIndex),
		KeyConditionExpression: aws.String("provider_order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": stringAV(providerOrderID),
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(raw) == 0 {
		return entities.Payment{}, nil
	}

	payments := make([]entities.Payment, 0, len(raw))
	for _, item := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return entities.Payment{}, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].Date.After(payments[j].Date) })
	return payments[0], nil
}

// AssignUser sets the owner only when the row exists and has none.
func (r *PaymentDynamoRepository) AssignUser(ctx context.Context, providerTransactionID, userID string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"provider_transaction_id": stringAV(providerTransactionID),
		},
		ConditionExpression: aws.String("attribute_exists(#ptid) AND attribute_not_exists(#user_id)"),
		UpdateExpression:    aws.String("SET #user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#ptid":    "provider_transaction_id",
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": stringAV(userID),
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ProviderTransactionID: p.ProviderTransactionID,
		ID:                    p.ID,
		ProviderOrderID:       p.ProviderOrderID,
		UserID:                p.UserID,
		Amount:                p.Amount.String(),
		Status:                string(p.Status),
		Date:                  formatTime(p.Date),
		ServiceID:             p.ServiceID,
		Type:                  string(p.Type),
		FormData:              p.FormData,
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                    it.ID,
		ProviderTransactionID: it.ProviderTransactionID,
		ProviderOrderID:       it.ProviderOrderID,
		UserID:                it.UserID,
		Amount:                parseDecimal(it.Amount),
		Status:                entities.PaymentStatus(it.Status),
		Date:                  parseTime(it.Date),
		ServiceID:             it.ServiceID,
		Type:                  entities.AttributionType(it.Type),
		FormData:              it.FormData,
	}
}
