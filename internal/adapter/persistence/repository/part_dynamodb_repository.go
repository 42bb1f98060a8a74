package repository

import (
	"context"
	"strings"

	"kaenpro_motors/internal/domain/entities"
	"kaenpro_motors/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPartsTableName = "parts"

type partItem struct {
	TenantID  string `dynamodbav:"tenant_id"`
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	SKU       string `dynamodbav:"sku"`
	CostPrice string `dynamodbav:"cost_price"`
	SalePrice string `dynamodbav:"sale_price"`
	Stock     int    `dynamodbav:"stock"`
	MinStock  int    `dynamodbav:"min_stock"`
}

// PartDynamoRepository persists Part entities in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: id (string)
//
// Stock is stored as a number so the finalization unit of work can decrement
// it arithmetically inside a transaction. FindByName scans the tenant's
// partition; inventories here are small and the name match must be
// case-insensitive, which no key schema expresses.

type PartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartRepository = (*PartDynamoRepository)(nil)

func NewPartDynamoRepository(ddb *dynamodb.Client) *PartDynamoRepository {
	return &PartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTS_TABLE", defaultPartsTableName),
	}
}

func (r *PartDynamoRepository) Create(ctx context.Context, tenantID string, p entities.Part) (entities.Part, error) {
	av, err := attributevalue.MarshalMap(toPartItem(tenantID, p))
	if err != nil {
		return entities.Part{}, err
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
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Part, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			"id":        &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Part{}, err
	}
	if len(out.Item) == 0 {
		return entities.Part{}, nil
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Part{}, nil
	}
	return fromPartItem(it), nil
}

func (r *PartDynamoRepository) List(ctx context.Context, tenantID string) ([]entities.Part, error) {
	items, err := queryTenant(ctx, r.ddb, r.tableName, tenantID)
	if err != nil {
		return nil, err
	}

	parts := make([]entities.Part, 0, len(items))
	for _, raw := range items {
		var it partItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			continue
		}
		parts = append(parts, fromPartItem(it))
	}
	return parts, nil
}

func (r *PartDynamoRepository) FindByName(ctx context.Context, tenantID, name string) (entities.Part, error) {
	all, err := r.List(ctx, tenantID)
	if err != nil {
		return entities.Part{}, err
	}

	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range all {
		if strings.ToLower(p.Name) == name {
			return p, nil
		}
	}
	return entities.Part{}, nil
}

func (r *PartDynamoRepository) Update(ctx context.Context, tenantID string, p entities.Part) (entities.Part, error) {
	av, err := attributevalue.MarshalMap(toPartItem(tenantID, p))
	if err != nil {
		return entities.Part{}, err
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
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			"id":        &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPartItem(tenantID string, p entities.Part) partItem {
	return partItem{
		TenantID:  tenantID,
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		CostPrice: floatToString(p.CostPrice),
		SalePrice: floatToString(p.SalePrice),
		Stock:     p.Stock,
		MinStock:  p.MinStock,
	}
}

func fromPartItem(it partItem) entities.Part {
	return entities.Part{
		ID:        it.ID,
		Name:      it.Name,
		SKU:       it.SKU,
		CostPrice: stringToFloat(it.CostPrice),
		SalePrice: stringToFloat(it.SalePrice),
		Stock:     it.Stock,
		MinStock:  it.MinStock,
	}
}
