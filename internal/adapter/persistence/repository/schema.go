package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// SchemaAPI is the subset of *dynamodb.Client used for table bootstrap.
type SchemaAPI interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ SchemaAPI = (*dynamodb.Client)(nil)

type gsi struct {
	name    string
	hashKey string
	sortKey string
}

type tableDef struct {
	name    string
	hashKey string
	sortKey string
	indexes []gsi
}

func tableDefs(t Tables) []tableDef {
	return []tableDef{
		{name: t.Payments, hashKey: "provider_transaction_id", indexes: []gsi{{name: paymentsProviderOrderIndex, hashKey: "provider_order_id"}}},
		{name: t.Orders, hashKey: "id", indexes: []gsi{
			{name: ordersPaymentIDIndex, hashKey: "payment_id"},
			{name: ordersUserIDIndex, hashKey: "user_id"},
		}},
		{name: t.Quotes, hashKey: "id", indexes: []gsi{{name: quotesUserCreatedIndex, hashKey: "user_id", sortKey: "created_at"}}},
		{name: t.QuoteItems, hashKey: "quote_id", sortKey: "id"},
		{name: t.Services, hashKey: "id"},
		{name: t.Accounts, hashKey: "id", indexes: []gsi{{name: accountsEmailIndex, hashKey: "email"}}},
	}
}

// CreateTables creates every table on demand billing. Existing tables are
// left alone.
func CreateTables(ctx context.Context, api SchemaAPI, t Tables, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, def := range tableDefs(t) {
		_, err := api.CreateTable(ctx, def.input())
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				logger.Info("[schema] table exists", zap.String("table", def.name))
				continue
			}
			return err
		}
		logger.Info("[schema] table created", zap.String("table", def.name))
	}
	return nil
}

func (d tableDef) input() *dynamodb.CreateTableInput {
	attrs := map[string]struct{}{}
	keySchema := func(hash, sort string) []types.KeySchemaElement {
		attrs[hash] = struct{}{}
		ks := []types.KeySchemaElement{{AttributeName: aws.String(hash), KeyType: types.KeyTypeHash}}
		if sort != "" {
			attrs[sort] = struct{}{}
			ks = append(ks, types.KeySchemaElement{AttributeName: aws.String(sort), KeyType: types.KeyTypeRange})
		}
		return ks
	}

	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(d.name),
		KeySchema:   keySchema(d.hashKey, d.sortKey),
		BillingMode: types.BillingModePayPerRequest,
	}
	for _, idx := range d.indexes {
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.name),
			KeySchema:  keySchema(idx.hashKey, idx.sortKey),
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	for name := range attrs {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}
	return in
}
