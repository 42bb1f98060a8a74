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

const defaultServiceOrdersTableName = "service_orders"

type osItemItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Type        string `dynamodbav:"type"`
}

type billingContactItem struct {
	Date  string `dynamodbav:"date"`
	User  string `dynamodbav:"user"`
	Level string `dynamodbav:"level"`
}

type serviceOrderItem struct {
	TenantID       string               `dynamodbav:"tenant_id"`
	ID             string               `dynamodbav:"id"`
	OSNumber       string               `dynamodbav:"os_number"`
	ClientID       string               `dynamodbav:"client_id"`
	ClientName     string               `dynamodbav:"client_name"`
	VehicleID      string               `dynamodbav:"vehicle_id"`
	VehiclePlate   string               `dynamodbav:"vehicle_plate"`
	VehicleModel   string               `dynamodbav:"vehicle_model"`
	VehicleKm      int                  `dynamodbav:"vehicle_km"`
	Problem        string               `dynamodbav:"problem"`
	Items          []osItemItem         `dynamodbav:"items"`
	LaborValue     string               `dynamodbav:"labor_value"`
	Discount       string               `dynamodbav:"discount"`
	TotalValue     string               `dynamodbav:"total_value"`
	Status         string               `dynamodbav:"status"`
	PaymentStatus  string               `dynamodbav:"payment_status"`
	DueDate        string               `dynamodbav:"due_date,omitempty"`
	BillingHistory []billingContactItem `dynamodbav:"billing_history,omitempty"`
	CreatedAt      string               `dynamodbav:"created_at"`
	UpdatedAt      string               `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: id (string)
//
// The order is one flat item with its line items and billing history
// embedded; no joins are performed by the store. Update replaces the whole
// item, mirroring the read-modify-write contract of the usecases.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, tenantID string, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(tenantID, o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			"id":        &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, nil
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context, tenantID string) ([]entities.ServiceOrder, error) {
	items, err := queryTenant(ctx, r.ddb, r.tableName, tenantID)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.ServiceOrder, 0, len(items))
	for _, raw := range items {
		var it serviceOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			continue
		}
		orders = append(orders, fromServiceOrderItem(it))
	}
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) ListByClientID(ctx context.Context, tenantID, clientID string) ([]entities.ServiceOrder, error) {
	all, err := r.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	owned := make([]entities.ServiceOrder, 0, len(all))
	for _, o := range all {
		if o.ClientID == clientID {
			owned = append(owned, o)
		}
	}
	return owned, nil
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, tenantID string, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(tenantID, o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			"id":        &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ServiceOrderDynamoRepository) DeleteByClientID(ctx context.Context, tenantID, clientID string) error {
	owned, err := r.ListByClientID(ctx, tenantID, clientID)
	if err != nil {
		return err
	}
	for _, o := range owned {
		if err := r.Delete(ctx, tenantID, o.ID); err != nil {
			return err
		}
	}
	return nil
}

func toServiceOrderItem(tenantID string, o entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		TenantID:      tenantID,
		ID:            o.ID,
		OSNumber:      o.OSNumber,
		ClientID:      o.ClientID,
		ClientName:    o.ClientName,
		VehicleID:     o.VehicleID,
		VehiclePlate:  o.VehiclePlate,
		VehicleModel:  o.VehicleModel,
		VehicleKm:     o.VehicleKm,
		Problem:       o.Problem,
		LaborValue:    floatToString(o.LaborValue),
		Discount:      floatToString(o.Discount),
		TotalValue:    floatToString(o.TotalValue),
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.DueDate != nil {
		it.DueDate = o.DueDate.UTC().Format(time.RFC3339Nano)
	}
	for _, li := range o.Items {
		it.Items = append(it.Items, osItemItem{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   floatToString(li.UnitPrice),
			Type:        string(li.Type),
		})
	}
	for _, bc := range o.BillingHistory {
		it.BillingHistory = append(it.BillingHistory, billingContactItem{
			Date:  bc.Date.UTC().Format(time.RFC3339Nano),
			User:  bc.User,
			Level: bc.Level,
		})
	}
	return it
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	o := entities.ServiceOrder{
		ID:            it.ID,
		OSNumber:      it.OSNumber,
		ClientID:      it.ClientID,
		ClientName:    it.ClientName,
		VehicleID:     it.VehicleID,
		VehiclePlate:  it.VehiclePlate,
		VehicleModel:  it.VehicleModel,
		VehicleKm:     it.VehicleKm,
		Problem:       it.Problem,
		LaborValue:    stringToFloat(it.LaborValue),
		Discount:      stringToFloat(it.Discount),
		TotalValue:    stringToFloat(it.TotalValue),
		Status:        entities.OSStatus(it.Status),
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
	if it.DueDate != "" {
		if due, err := time.Parse(time.RFC3339Nano, it.DueDate); err == nil {
			o.DueDate = &due
		}
	}
	for _, li := range it.Items {
		o.Items = append(o.Items, entities.OSItem{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   stringToFloat(li.UnitPrice),
			Type:        entities.OSItemType(li.Type),
		})
	}
	for _, bc := range it.BillingHistory {
		date, _ := time.Parse(time.RFC3339Nano, bc.Date)
		o.BillingHistory = append(o.BillingHistory, entities.BillingContact{
			Date:  date,
			User:  bc.User,
			Level: bc.Level,
		})
	}
	return o
}
