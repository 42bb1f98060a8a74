package repository

import (
	"context"
	"strconv"

	"kaenpro_motors/internal/domain/entities"
	"kaenpro_motors/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ServiceOrderDynamoUnitOfWork commits the writes of an order finalization
// through a single TransactWriteItems call: the order put, the vehicle
// odometer overwrite and one stock decrement per matched part. Either all of
// them land or none do, so a failed write can never leave the order persisted
// with stale inventory or vice versa.
//
// The vehicle and part updates are conditioned on the row existing; a
// concurrent deletion cancels the whole transaction.

type ServiceOrderDynamoUnitOfWork struct {
	ddb           *dynamodb.Client
	ordersTable   string
	vehiclesTable string
	partsTable    string
}

var _ interfaces.IServiceOrderUnitOfWork = (*ServiceOrderDynamoUnitOfWork)(nil)

func NewServiceOrderDynamoUnitOfWork(ddb *dynamodb.Client) *ServiceOrderDynamoUnitOfWork {
	return &ServiceOrderDynamoUnitOfWork{
		ddb:           ddb,
		ordersTable:   getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
		vehiclesTable: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
		partsTable:    getenvDefault("PARTS_TABLE", defaultPartsTableName),
	}
}

func (w *ServiceOrderDynamoUnitOfWork) Finalize(ctx context.Context, tenantID string, o entities.ServiceOrder, kmUpdate *interfaces.VehicleKmUpdate, decrements []interfaces.StockDecrement) error {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(tenantID, o))
	if err != nil {
		return err
	}

	writes := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(w.ordersTable),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
	}

	if kmUpdate != nil {
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(w.vehiclesTable),
				Key: map[string]types.AttributeValue{
					"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
					"id":        &types.AttributeValueMemberS{Value: kmUpdate.VehicleID},
				},
				// Overwrite, not max(): a lower reading replaces a higher one.
				UpdateExpression:    aws.String("SET #km = :km"),
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#km": "km",
					"#id": "id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":km": &types.AttributeValueMemberN{Value: strconv.Itoa(kmUpdate.Km)},
				},
			},
		})
	}

	for _, d := range decrements {
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(w.partsTable),
				Key: map[string]types.AttributeValue{
					"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
					"id":        &types.AttributeValueMemberS{Value: d.PartID},
				},
				// No floor: stock may go negative.
				UpdateExpression:    aws.String("SET #stock = #stock - :q"),
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#stock": "stock",
					"#id":    "id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":q": &types.AttributeValueMemberN{Value: strconv.Itoa(d.Quantity)},
				},
			},
		})
	}

	_, err = w.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return err
}
