package repository

import (
	"context"

	"kaenpro_motors/internal/domain/entities"
	"kaenpro_motors/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVehiclesTableName = "vehicles"

type vehicleItem struct {
	TenantID     string `dynamodbav:"tenant_id"`
	ID           string `dynamodbav:"id"`
	ClientID     string `dynamodbav:"client_id"`
	Plate        string `dynamodbav:"plate"`
	Brand        string `dynamodbav:"brand"`
	Model        string `dynamodbav:"model"`
	Year         string `dynamodbav:"year"`
	Km           int    `dynamodbav:"km"`
	Observations string `dynamodbav:"observations"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: id (string)
//
// Km is stored as a number so the finalization unit of work can overwrite it
// inside a transaction.

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, tenantID string, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(tenantID, v))
	if err != nil {
		return entities.Vehicle{}, err
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
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			"id":        &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, nil
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) List(ctx context.Context, tenantID string) ([]entities.Vehicle, error) {
	items, err := queryTenant(ctx, r.ddb, r.tableName, tenantID)
	if err != nil {
		return nil, err
	}

	vehicles := make([]entities.Vehicle, 0, len(items))
	for _, raw := range items {
		var it vehicleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			continue
		}
		vehicles = append(vehicles, fromVehicleItem(it))
	}
	return vehicles, nil
}

func (r *VehicleDynamoRepository) ListByClientID(ctx context.Context, tenantID, clientID string) ([]entities.Vehicle, error) {
	all, err := r.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	owned := make([]entities.Vehicle, 0, len(all))
	for _, v := range all {
		if v.ClientID == clientID {
			owned = append(owned, v)
		}
	}
	return owned, nil
}

func (r *VehicleDynamoRepository) Update(ctx context.Context, tenantID string, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(tenantID, v))
	if err != nil {
		return entities.Vehicle{}, err
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
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			"id":        &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *VehicleDynamoRepository) DeleteByClientID(ctx context.Context, tenantID, clientID string) error {
	owned, err := r.ListByClientID(ctx, tenantID, clientID)
	if err != nil {
		return err
	}
	for _, v := range owned {
		if err := r.Delete(ctx, tenantID, v.ID); err != nil {
			return err
		}
	}
	return nil
}

func toVehicleItem(tenantID string, v entities.Vehicle) vehicleItem {
	return vehicleItem{
		TenantID:     tenantID,
		ID:           v.ID,
		ClientID:     v.ClientID,
		Plate:        v.Plate,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		Km:           v.Km,
		Observations: v.Observations,
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{
		ID:           it.ID,
		ClientID:     it.ClientID,
		Plate:        it.Plate,
		Brand:        it.Brand,
		Model:        it.Model,
		Year:         it.Year,
		Km:           it.Km,
		Observations: it.Observations,
	}
}
