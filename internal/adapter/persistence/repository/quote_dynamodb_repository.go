package repository

import (
	"context"
	"strings"
	"time"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesUserCreatedIndex = "user_id-created_at-index"
	quoteOwnerDraftClause  = "#user_id = :actor_uid AND #status = :draft"
	quoteExistsClause      = "attribute_exists(#id)"
)

type quoteItem struct {
	ID              string `dynamodbav:"id"`
	UserID          string `dynamodbav:"user_id"`
	ServiceID       string `dynamodbav:"service_id,omitempty"`
	ApplicationType string `dynamodbav:"application_type,omitempty"`
	Status          string `dynamodbav:"status"`
	Subtotal        string `dynamodbav:"subtotal"`
	Currency        string `dynamodbav:"currency"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
	FinalizedAt     string `dynamodbav:"finalized_at,omitempty"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-created_at-index (PK: user_id, SK: created_at)
//
// Row policies are DynamoDB condition expressions evaluated against the
// stored item, so they hold regardless of what the caller read before.
// A failed condition is reported as zero rows affected.
type QuoteDynamoRepository struct {
	ddb        DynamoAPI
	tableName  string
	itemsTable string
}

var (
	_ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)
	_ interfaces.IQuoteHistory    = (*QuoteDynamoRepository)(nil)
)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	if tableName == "" {
		tableName = defaultQuotesTableName
	}
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName, itemsTable: defaultQuoteItemsTableName}
}

// WithItemsTable sets the table Delete purges line items from.
func (r *QuoteDynamoRepository) WithItemsTable(name string) *QuoteDynamoRepository {
	if name != "" {
		r.itemsTable = name
	}
	return r
}

// quoteWriteCondition is the predicate a stored quote must satisfy before
// actor may write it. ok=false means the actor may never write.
func quoteWriteCondition(actor entities.Actor) (expr string, names map[string]string, values map[string]types.AttributeValue, ok bool) {
	names = map[string]string{"#id": "id"}
	if actor.Privileged {
		return quoteExistsClause, names, nil, true
	}
	if actor.UserID == "" {
		return "", nil, nil, false
	}
	names["#user_id"] = "user_id"
	names["#status"] = "status"
	values = map[string]types.AttributeValue{
		":actor_uid": stringAV(actor.UserID),
		":draft":     stringAV(string(entities.QuoteStatusDraft)),
	}
	return quoteExistsClause + " AND " + quoteOwnerDraftClause, names, values, true
}

func (r *QuoteDynamoRepository) Insert(ctx context.Context, actor entities.Actor, q entities.Quote) (int64, error) {
	if !entities.CanInsertQuote(actor, q) {
		return 0, nil
	}
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return 0, err
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
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}

func (r *QuoteDynamoRepository) Get(ctx context.Context, actor entities.Actor, id string) (entities.Quote, error) {
	q, err := r.getRaw(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" || !entities.CanReadQuote(actor, q) {
		return entities.Quote{}, nil
	}
	return q, nil
}

func (r *QuoteDynamoRepository) ListByUser(ctx context.Context, actor entities.Actor, userID string) ([]entities.Quote, error) {
	quotes := []entities.Quote{}
	if userID == "" || (!actor.Privileged && actor.UserID != userID) {
		return quotes, nil
	}
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesUserCreatedIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": stringAV(userID),
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	for _, item := range raw {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		if q := fromQuoteItem(it); entities.CanReadQuote(actor, q) {
			quotes = append(quotes, q)
		}
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, actor entities.Actor, id string, patch entities.QuotePatch) (int64, error) {
	return r.update(ctx, actor, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		sets := []string{"#updated_at = :updated_at"}
		vals := map[string]types.AttributeValue{":updated_at": stringAV(now)}
		names := map[string]string{"#updated_at": "updated_at"}
		add := func(attr, value string) {
			sets = append(sets, "#"+attr+" = :"+attr)
			names["#"+attr] = attr
			vals[":"+attr] = stringAV(value)
		}
		if patch.ServiceID != nil {
			add("service_id", *patch.ServiceID)
		}
		if patch.ApplicationType != nil {
			add("application_type", *patch.ApplicationType)
		}
		if patch.Subtotal != nil {
			add("subtotal", patch.Subtotal.String())
		}
		if patch.Currency != nil {
			add("currency", *patch.Currency)
		}
		return "SET " + strings.Join(sets, ", "), vals, names
	})
}

// Delete only succeeds on the privileged path. Owners get zero rows without
// a round trip, whether or not the quote exists.
func (r *QuoteDynamoRepository) Delete(ctx context.Context, actor entities.Actor, id string) (int64, error) {
	if !entities.CanDeleteQuote(actor, entities.Quote{ID: id}) {
		return 0, nil
	}
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAV(id),
		},
		ConditionExpression: aws.String(quoteExistsClause),
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
	if err := r.purgeItems(ctx, id); err != nil {
		return 1, err
	}
	return 1, nil
}

func (r *QuoteDynamoRepository) purgeItems(ctx context.Context, quoteID string) error {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTable),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": stringAV(quoteID),
		},
		ProjectionExpression: aws.String("quote_id, id"),
	})
	if err != nil {
		return err
	}
	for _, item := range raw {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.itemsTable),
			Key: map[string]types.AttributeValue{
				"quote_id": item["quote_id"],
				"id":       item["id"],
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Finalize is draft -> finalized on the privileged path only.
func (r *QuoteDynamoRepository) Finalize(ctx context.Context, actor entities.Actor, id string) (int64, error) {
	if !actor.Privileged {
		return 0, nil
	}
	now := formatTime(time.Now())
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAV(id),
		},
		ConditionExpression: aws.String(quoteExistsClause + " AND #status = :draft"),
		UpdateExpression:    aws.String("SET #status = :finalized, #finalized_at = :now, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#status":       "status",
			"#finalized_at": "finalized_at",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":draft":     stringAV(string(entities.QuoteStatusDraft)),
			":finalized": stringAV(string(entities.QuoteStatusFinalized)),
			":now":       stringAV(now),
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

// LatestByUser is the system read used by order fan-out.
func (r *QuoteDynamoRepository) LatestByUser(ctx context.Context, userID string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesUserCreatedIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": stringAV(userID),
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) getRaw(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAV(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	actor entities.Actor,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (int64, error) {
	cond, condNames, condValues, ok := quoteWriteCondition(actor)
	if !ok {
		return 0, nil
	}
	updateExpr, values, names := build(formatTime(time.Now()))

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAV(id),
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: mergeValues(values, condValues),
		ExpressionAttributeNames:  mergeNames(names, condNames),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}

func mergeValues(a, b map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:              q.ID,
		UserID:          q.UserID,
		ServiceID:       q.ServiceID,
		ApplicationType: q.ApplicationType,
		Status:          string(q.Status),
		Subtotal:        q.Subtotal.String(),
		Currency:        q.Currency,
		CreatedAt:       formatTime(q.CreatedAt),
		UpdatedAt:       formatTime(q.UpdatedAt),
	}
	if q.FinalizedAt != nil {
		it.FinalizedAt = formatTime(*q.FinalizedAt)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		ID:              it.ID,
		UserID:          it.UserID,
		ServiceID:       it.ServiceID,
		ApplicationType: it.ApplicationType,
		Status:          entities.QuoteStatus(it.Status),
		Subtotal:        parseDecimal(it.Subtotal),
		Currency:        it.Currency,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
	if it.FinalizedAt != "" {
		t := parseTime(it.FinalizedAt)
		q.FinalizedAt = &t
	}
	return q
}
