package repository

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDynamo implements DynamoAPI with per-call hooks. Unset hooks fail the
// test so unexpected round trips are caught.
type stubDynamo struct {
	t        *testing.T
	get      func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	put      func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	update   func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	del      func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	query    func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scan     func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	transact func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)
}

func (s *stubDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if s.get == nil {
		s.t.Fatalf("unexpected GetItem")
	}
	return s.get(in)
}

func (s *stubDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if s.put == nil {
		s.t.Fatalf("unexpected PutItem")
	}
	return s.put(in)
}

func (s *stubDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if s.update == nil {
		s.t.Fatalf("unexpected UpdateItem")
	}
	return s.update(in)
}

func (s *stubDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if s.del == nil {
		s.t.Fatalf("unexpected DeleteItem")
	}
	return s.del(in)
}

func (s *stubDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if s.query == nil {
		s.t.Fatalf("unexpected Query")
	}
	return s.query(in)
}

func (s *stubDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if s.scan == nil {
		s.t.Fatalf("unexpected Scan")
	}
	return s.scan(in)
}

func (s *stubDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	if s.transact == nil {
		s.t.Fatalf("unexpected TransactWriteItems")
	}
	return s.transact(in)
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func TestPaymentDynamoRepository_ConditionalWrites(t *testing.T) {
	ctx := context.Background()

	t.Run("update without row is a miss", func(t *testing.T) {
		ddb := &stubDynamo{t: t, update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, "attribute_exists(#ptid)", aws.ToString(in.ConditionExpression))
			assert.NotContains(t, in.ExpressionAttributeNames, "#type", "empty type must not overwrite")
			return nil, conditionFailed()
		}}
		repo := NewPaymentDynamoRepository(ddb, "")
		_, found, err := repo.UpdateByProviderTransactionID(ctx, entities.Payment{ProviderTransactionID: "p1", Amount: decimal.NewFromInt(10)})
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("update sets the owner only when missing", func(t *testing.T) {
		ddb := &stubDynamo{t: t, update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Contains(t, aws.ToString(in.UpdateExpression), "#user_id = if_not_exists(#user_id, :user_id)")
			assert.Equal(t, &types.AttributeValueMemberS{Value: "u2"}, in.ExpressionAttributeValues[":user_id"])
			attrs, err := attributevalue.MarshalMap(paymentItem{ProviderTransactionID: "p1", ID: "pay-1", UserID: "u1", Amount: "10", Status: "paid"})
			require.NoError(t, err)
			return &dynamodb.UpdateItemOutput{Attributes: attrs}, nil
		}}
		repo := NewPaymentDynamoRepository(ddb, "")
		got, found, err := repo.UpdateByProviderTransactionID(ctx, entities.Payment{ProviderTransactionID: "p1", UserID: "u2"})
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "u1", got.UserID)
	})

	t.Run("update returns the stored row", func(t *testing.T) {
		ddb := &stubDynamo{t: t, update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			attrs, err := attributevalue.MarshalMap(paymentItem{ProviderTransactionID: "p1", ID: "pay-1", Amount: "10", Status: "paid", Type: "patent"})
			require.NoError(t, err)
			return &dynamodb.UpdateItemOutput{Attributes: attrs}, nil
		}}
		repo := NewPaymentDynamoRepository(ddb, "")
		got, found, err := repo.UpdateByProviderTransactionID(ctx, entities.Payment{ProviderTransactionID: "p1", Type: entities.AttributionTypePatent})
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "pay-1", got.ID)
		assert.Equal(t, entities.AttributionTypePatent, got.Type)
	})

	t.Run("insert collision is a unique violation", func(t *testing.T) {
		ddb := &stubDynamo{t: t, put: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, conditionFailed()
		}}
		repo := NewPaymentDynamoRepository(ddb, "")
		_, err := repo.Insert(ctx, entities.Payment{ID: "pay-1", ProviderTransactionID: "p1"})
		assert.True(t, errors.Is(err, interfaces.ErrUniqueViolation))
	})

	t.Run("unknown type rejected before the round trip", func(t *testing.T) {
		repo := NewPaymentDynamoRepository(&stubDynamo{t: t}, "")
		_, err := repo.Insert(ctx, entities.Payment{ProviderTransactionID: "p1", Type: "logo"})
		assert.True(t, errors.Is(err, interfaces.ErrConstraintViolation))
	})

	t.Run("assign user once", func(t *testing.T) {
		ddb := &stubDynamo{t: t, update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Contains(t, aws.ToString(in.ConditionExpression), "attribute_not_exists(#user_id)")
			return nil, conditionFailed()
		}}
		repo := NewPaymentDynamoRepository(ddb, "")
		ok, err := repo.AssignUser(ctx, "p1", "u1")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestOrderDynamoRepository_CreateManySkipsExisting(t *testing.T) {
	calls := 0
	ddb := &stubDynamo{t: t, put: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
		calls++
		assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(in.ConditionExpression))
		if calls == 1 {
			return nil, conditionFailed()
		}
		return &dynamodb.PutItemOutput{}, nil
	}}
	repo := NewOrderDynamoRepository(ddb, "")

	created, err := repo.CreateMany(context.Background(), []entities.Order{
		{ID: "o1", PaymentID: "pay-1"},
		{ID: "o2", PaymentID: "pay-1", LineIndex: 1},
		{ID: "o3", PaymentID: "pay-1", LineIndex: 2, Type: "logo"},
	})
	assert.True(t, errors.Is(err, interfaces.ErrConstraintViolation))
	require.Len(t, created, 1)
	assert.Equal(t, "o2", created[0].ID)
	assert.Equal(t, 2, calls)
}

func TestQuoteDynamoRepository_Policies(t *testing.T) {
	ctx := context.Background()
	owner := entities.Actor{UserID: "u1"}
	currency := "EUR"

	t.Run("owner update carries owner draft condition", func(t *testing.T) {
		ddb := &stubDynamo{t: t, update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, quoteExistsClause+" AND "+quoteOwnerDraftClause, aws.ToString(in.ConditionExpression))
			assert.Equal(t, &types.AttributeValueMemberS{Value: "u1"}, in.ExpressionAttributeValues[":actor_uid"])
			assert.Equal(t, &types.AttributeValueMemberS{Value: "EUR"}, in.ExpressionAttributeValues[":currency"])
			assert.Equal(t, "status", in.ExpressionAttributeNames["#status"])
			return nil, conditionFailed()
		}}
		repo := NewQuoteDynamoRepository(ddb, "")
		n, err := repo.Update(ctx, owner, "q1", entities.QuotePatch{Currency: &currency})
		require.NoError(t, err)
		assert.EqualValues(t, 0, n)
	})

	t.Run("privileged update only needs the row", func(t *testing.T) {
		ddb := &stubDynamo{t: t, update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, quoteExistsClause, aws.ToString(in.ConditionExpression))
			return &dynamodb.UpdateItemOutput{}, nil
		}}
		repo := NewQuoteDynamoRepository(ddb, "")
		n, err := repo.Update(ctx, entities.SystemActor, "q1", entities.QuotePatch{Currency: &currency})
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("anonymous and owner deletes never reach the table", func(t *testing.T) {
		repo := NewQuoteDynamoRepository(&stubDynamo{t: t}, "")
		n, err := repo.Update(ctx, entities.Actor{}, "q1", entities.QuotePatch{Currency: &currency})
		require.NoError(t, err)
		assert.EqualValues(t, 0, n)

		n, err = repo.Delete(ctx, owner, "q1")
		require.NoError(t, err)
		assert.EqualValues(t, 0, n)

		n, err = repo.Finalize(ctx, owner, "q1")
		require.NoError(t, err)
		assert.EqualValues(t, 0, n)
	})

	t.Run("privileged delete purges items", func(t *testing.T) {
		var deleted []string
		ddb := &stubDynamo{
			t: t,
			del: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
				deleted = append(deleted, aws.ToString(in.TableName))
				return &dynamodb.DeleteItemOutput{}, nil
			},
			query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				assert.Equal(t, "items", aws.ToString(in.TableName))
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
					{"quote_id": stringAV("q1"), "id": stringAV("i1")},
					{"quote_id": stringAV("q1"), "id": stringAV("i2")},
				}}, nil
			},
		}
		repo := NewQuoteDynamoRepository(ddb, "quotes").WithItemsTable("items")
		n, err := repo.Delete(ctx, entities.SystemActor, "q1")
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
		assert.Equal(t, []string{"quotes", "items", "items"}, deleted)
	})

	t.Run("owner reads are filtered", func(t *testing.T) {
		ddb := &stubDynamo{t: t, get: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			item, err := attributevalue.MarshalMap(quoteItem{ID: "q1", UserID: "u2", Status: "draft"})
			require.NoError(t, err)
			return &dynamodb.GetItemOutput{Item: item}, nil
		}}
		repo := NewQuoteDynamoRepository(ddb, "")
		q, err := repo.Get(ctx, owner, "q1")
		require.NoError(t, err)
		assert.Empty(t, q.ID)
	})
}

func TestQuoteItemDynamoRepository_GuardedWrites(t *testing.T) {
	ctx := context.Background()
	owner := entities.Actor{UserID: "u1"}
	item := entities.QuoteItem{ID: "i1", QuoteID: "q1", Key: "filing", Quantity: 1}

	t.Run("finalized parent cancels the transaction", func(t *testing.T) {
		ddb := &stubDynamo{t: t, transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			require.Len(t, in.TransactItems, 2)
			check := in.TransactItems[0].ConditionCheck
			require.NotNil(t, check)
			assert.Equal(t, "quotes", aws.ToString(check.TableName))
			assert.Contains(t, aws.ToString(check.ConditionExpression), ":draft")
			require.NotNil(t, in.TransactItems[1].Put)
			return nil, &types.TransactionCanceledException{
				CancellationReasons: []types.CancellationReason{
					{Code: aws.String("ConditionalCheckFailed")},
					{Code: aws.String("None")},
				},
			}
		}}
		repo := NewQuoteItemDynamoRepository(ddb, "", "")
		n, err := repo.Insert(ctx, owner, item)
		require.NoError(t, err)
		assert.EqualValues(t, 0, n)
	})

	t.Run("other cancellations are errors", func(t *testing.T) {
		ddb := &stubDynamo{t: t, transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, &types.TransactionCanceledException{
				CancellationReasons: []types.CancellationReason{{Code: aws.String("ThrottlingError")}},
			}
		}}
		repo := NewQuoteItemDynamoRepository(ddb, "", "")
		_, err := repo.Update(ctx, owner, item)
		assert.Error(t, err)
	})

	t.Run("update keeps created_at", func(t *testing.T) {
		ddb := &stubDynamo{t: t, transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			upd := in.TransactItems[1].Update
			require.NotNil(t, upd)
			assert.NotContains(t, aws.ToString(upd.UpdateExpression), "created_at")
			return &dynamodb.TransactWriteItemsOutput{}, nil
		}}
		repo := NewQuoteItemDynamoRepository(ddb, "", "")
		n, err := repo.Update(ctx, owner, item)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("owner delete never reaches the table", func(t *testing.T) {
		repo := NewQuoteItemDynamoRepository(&stubDynamo{t: t}, "", "")
		n, err := repo.Delete(ctx, owner, "q1", "i1")
		require.NoError(t, err)
		assert.EqualValues(t, 0, n)
	})
}

type stubSchema struct {
	created []string
}

func (s *stubSchema) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	name := aws.ToString(in.TableName)
	if name == "payments" {
		return nil, &types.ResourceInUseException{Message: aws.String("exists")}
	}
	s.created = append(s.created, name)
	return &dynamodb.CreateTableOutput{}, nil
}

func TestCreateTables_SkipsExisting(t *testing.T) {
	api := &stubSchema{}
	tables := Tables{
		Payments:   "payments",
		Orders:     "orders",
		Quotes:     "quotes",
		QuoteItems: "quote_items",
		Services:   "services",
		Accounts:   "accounts",
	}
	require.NoError(t, CreateTables(context.Background(), api, tables, nil))
	assert.Equal(t, []string{"orders", "quotes", "quote_items", "services", "accounts"}, api.created)
}

func TestFormatTime_SortsChronologically(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 5, 120_000_000, time.UTC)
	instants := []time.Time{
		base.Add(3 * time.Millisecond),
		base,
		base.Add(-120 * time.Millisecond),
		base.Add(time.Second),
		base.In(time.FixedZone("BRT", -3*60*60)).Add(time.Nanosecond),
	}

	formatted := make([]string, 0, len(instants))
	for _, ts := range instants {
		s := formatTime(ts)
		require.Len(t, s, len("2024-03-01T10:00:05.120000000Z"))
		assert.True(t, parseTime(s).Equal(ts), "round trip %s", s)
		formatted = append(formatted, s)
	}
	sort.Strings(formatted)
	sort.Slice(instants, func(i, j int) bool { return instants[i].Before(instants[j]) })
	for i, ts := range instants {
		assert.Equal(t, formatTime(ts), formatted[i])
	}
	assert.Empty(t, formatTime(time.Time{}))
}
