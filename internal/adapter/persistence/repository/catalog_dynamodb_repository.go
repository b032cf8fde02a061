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
	defaultServicesTableName = "services"
	defaultAccountsTableName = "accounts"
	accountsEmailIndex       = "email-index"
)

type serviceItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	CategoryID string `dynamodbav:"category_id"`
}

type accountItem struct {
	ID    string `dynamodbav:"id"`
	Email string `dynamodbav:"email"`
}

// CatalogDynamoRepository reads the services catalog.
//
// Table requirements:
//   - PK: id (string)
type CatalogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoAPI, tableName string) *CatalogDynamoRepository {
	if tableName == "" {
		tableName = defaultServicesTableName
	}
	return &CatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

// ListServices scans the whole catalog. It is small and read once per
// multi-line callback.
func (r *CatalogDynamoRepository) ListServices(ctx context.Context) ([]entities.Service, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	services := []entities.Service{}
	for {
		page, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, av := range page.Items {
			var it serviceItem
			if err := attributevalue.UnmarshalMap(av, &it); err != nil {
				return nil, err
			}
			services = append(services, entities.Service(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = page.LastEvaluatedKey
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services, nil
}

func (r *CatalogDynamoRepository) GetService(ctx context.Context, id string) (entities.Service, error) {
	if id == "" {
		return entities.Service{}, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAV(id),
		},
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}
	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return entities.Service(it), nil
}

// AccountDynamoRepository looks up accounts by email.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email), emails stored lowercased
type AccountDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb DynamoAPI, tableName string) *AccountDynamoRepository {
	if tableName == "" {
		tableName = defaultAccountsTableName
	}
	return &AccountDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AccountDynamoRepository) FindByEmail(ctx context.Context, email string) (entities.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return entities.Account{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(accountsEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": stringAV(email),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Items) == 0 {
		return entities.Account{}, nil
	}
	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Account{}, err
	}
	return entities.Account(it), nil
}
