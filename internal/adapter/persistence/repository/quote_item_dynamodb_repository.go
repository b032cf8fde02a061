package repository

import (
	"context"
	"sort"
	"strconv"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuoteItemsTableName = "quote_items"

type quoteLineItem struct {
	QuoteID    string `dynamodbav:"quote_id"`
	ID         string `dynamodbav:"id"`
	Key        string `dynamodbav:"key"`
	Label      string `dynamodbav:"label"`
	Unit       string `dynamodbav:"unit,omitempty"`
	Quantity   int    `dynamodbav:"quantity"`
	UnitAmount string `dynamodbav:"unit_amount"`
	Amount     string `dynamodbav:"amount"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// QuoteItemDynamoRepository persists QuoteItem entities in DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string)
//   - SK: id (string)
//
// Item writes run in a transaction with a ConditionCheck on the parent
// quote, so a quote finalized between read and write rejects the write.
type QuoteItemDynamoRepository struct {
	ddb         DynamoAPI
	tableName   string
	quotesTable string
	quotes      *QuoteDynamoRepository
}

var _ interfaces.IQuoteItemRepository = (*QuoteItemDynamoRepository)(nil)

func NewQuoteItemDynamoRepository(ddb DynamoAPI, tableName, quotesTable string) *QuoteItemDynamoRepository {
	if tableName == "" {
		tableName = defaultQuoteItemsTableName
	}
	if quotesTable == "" {
		quotesTable = defaultQuotesTableName
	}
	return &QuoteItemDynamoRepository{
		ddb:         ddb,
		tableName:   tableName,
		quotesTable: quotesTable,
		quotes:      NewQuoteDynamoRepository(ddb, quotesTable),
	}
}

func (r *QuoteItemDynamoRepository) Insert(ctx context.Context, actor entities.Actor, item entities.QuoteItem) (int64, error) {
	av, err := attributevalue.MarshalMap(toQuoteLineItem(item))
	if err != nil {
		return 0, err
	}
	return r.writeGuarded(ctx, actor, item.QuoteID, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
}

func (r *QuoteItemDynamoRepository) Update(ctx context.Context, actor entities.Actor, item entities.QuoteItem) (int64, error) {
	it := toQuoteLineItem(item)
	return r.writeGuarded(ctx, actor, item.QuoteID, types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(r.tableName),
			Key:                 quoteLineKey(item.QuoteID, item.ID),
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression: aws.String("SET #key = :key, #label = :label, #unit = :unit, #quantity = :quantity, " +
				"#unit_amount = :unit_amount, #amount = :amount, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":          "id",
				"#key":         "key",
				"#label":       "label",
				"#unit":        "unit",
				"#quantity":    "quantity",
				"#unit_amount": "unit_amount",
				"#amount":      "amount",
				"#updated_at":  "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":key":         stringAV(it.Key),
				":label":       stringAV(it.Label),
				":unit":        stringAV(it.Unit),
				":quantity":    &types.AttributeValueMemberN{Value: strconv.Itoa(it.Quantity)},
				":unit_amount": stringAV(it.UnitAmount),
				":amount":      stringAV(it.Amount),
				":updated_at":  stringAV(it.UpdatedAt),
			},
		},
	})
}

// Delete is privileged only; owner deletes report zero rows.
func (r *QuoteItemDynamoRepository) Delete(ctx context.Context, actor entities.Actor, quoteID, itemID string) (int64, error) {
	if !entities.CanDeleteQuoteItem(actor, entities.Quote{ID: quoteID}) {
		return 0, nil
	}
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 quoteLineKey(quoteID, itemID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}

func (r *QuoteItemDynamoRepository) ListByQuote(ctx context.Context, actor entities.Actor, quoteID string) ([]entities.QuoteItem, error) {
	items := []entities.QuoteItem{}
	parent, err := r.quotes.getRaw(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if parent.ID == "" || !entities.CanReadQuoteItem(actor, parent) {
		return items, nil
	}
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": stringAV(quoteID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	for _, av := range raw {
		var it quoteLineItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteLineItem(it))
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

// writeGuarded pairs op with a ConditionCheck that the parent quote is
// writable by actor. A cancelled transaction is zero rows, not an error.
func (r *QuoteItemDynamoRepository) writeGuarded(ctx context.Context, actor entities.Actor, quoteID string, op types.TransactWriteItem) (int64, error) {
	cond, names, values, ok := quoteWriteCondition(actor)
	if !ok {
		return 0, nil
	}
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				ConditionCheck: &types.ConditionCheck{
					TableName: aws.String(r.quotesTable),
					Key: map[string]types.AttributeValue{
						"id": stringAV(quoteID),
					},
					ConditionExpression:       aws.String(cond),
					ExpressionAttributeNames:  names,
					ExpressionAttributeValues: values,
				},
			},
			op,
		},
	})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}

func quoteLineKey(quoteID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"quote_id": stringAV(quoteID),
		"id":       stringAV(id),
	}
}

func toQuoteLineItem(item entities.QuoteItem) quoteLineItem {
	return quoteLineItem{
		QuoteID:    item.QuoteID,
		ID:         item.ID,
		Key:        item.Key,
		Label:      item.Label,
		Unit:       item.Unit,
		Quantity:   item.Quantity,
		UnitAmount: item.UnitAmount.String(),
		Amount:     item.Amount.String(),
		CreatedAt:  formatTime(item.CreatedAt),
		UpdatedAt:  formatTime(item.UpdatedAt),
	}
}

func fromQuoteLineItem(it quoteLineItem) entities.QuoteItem {
	return entities.QuoteItem{
		ID:         it.ID,
		QuoteID:    it.QuoteID,
		Key:        it.Key,
		Label:      it.Label,
		Unit:       it.Unit,
		Quantity:   it.Quantity,
		UnitAmount: parseDecimal(it.UnitAmount),
		Amount:     parseDecimal(it.Amount),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
