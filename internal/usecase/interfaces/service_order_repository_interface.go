package interfaces

import (
	"context"

	"kaenpro_motors/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Update replaces the stored order wholesale (items and billing history
// included); callers mutate a loaded copy and write it back.

type IServiceOrderRepository interface {
	Create(ctx context.Context, tenantID string, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.ServiceOrder, error)
	List(ctx context.Context, tenantID string) ([]entities.ServiceOrder, error)
	ListByClientID(ctx context.Context, tenantID, clientID string) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, tenantID string, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Delete(ctx context.Context, tenantID, id string) error
	DeleteByClientID(ctx context.Context, tenantID, clientID string) error
}
