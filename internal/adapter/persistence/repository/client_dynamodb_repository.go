package repository

import (
	"context"
	"time"

	"kaenpro_motors/internal/domain/entities"
	"kaenpro_motors/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	TenantID     string `dynamodbav:"tenant_id"`
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Phone        string `dynamodbav:"phone"`
	Document     string `dynamodbav:"document"`
	Observations string `dynamodbav:"observations"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: id (string)
//
// Rows that fail to unmarshal are skipped on read: a collection that was
// never written, or carries malformed leftovers, degrades to the readable
// subset instead of erroring.

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, tenantID string, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(tenantID, c))
	if err != nil {
		return entities.Client{}, err
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
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			"id":        &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, nil
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context, tenantID string) ([]entities.Client, error) {
	items, err := queryTenant(ctx, r.ddb, r.tableName, tenantID)
	if err != nil {
		return nil, err
	}

	clients := make([]entities.Client, 0, len(items))
	for _, raw := range items {
		var it clientItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			continue
		}
		clients = append(clients, fromClientItem(it))
	}
	return clients, nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, tenantID string, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(tenantID, c))
	if err != nil {
		return entities.Client{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			"id":        &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toClientItem(tenantID string, c entities.Client) clientItem {
	return clientItem{
		TenantID:     tenantID,
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Document:     c.Document,
		Observations: c.Observations,
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClientItem(it clientItem) entities.Client {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Client{
		ID:           it.ID,
		Name:         it.Name,
		Phone:        it.Phone,
		Document:     it.Document,
		Observations: it.Observations,
		CreatedAt:    createdAt,
	}
}
