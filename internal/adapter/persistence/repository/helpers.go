package repository

import (
	"context"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AllTableNames resolves every table this package writes to, with the same
// environment overrides the repositories use. Handy for bootstrap code that
// provisions tables on local DynamoDB.
func AllTableNames() []string {
	return []string{
		getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
		getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
		getenvDefault("PARTS_TABLE", defaultPartsTableName),
		getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// queryTenant pages through every row of one tenant's partition.
func queryTenant(ctx context.Context, ddb *dynamodb.Client, tableName, tenantID string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue

	for {
		out, err := ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(tableName),
			KeyConditionExpression: aws.String("#tenant_id = :tenant_id"),
			ExpressionAttributeNames: map[string]string{
				"#tenant_id": "tenant_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			},
			ExclusiveStartKey: startKey,
			ConsistentRead:    aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}
