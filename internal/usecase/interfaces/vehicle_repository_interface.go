package interfaces

import (
	"context"

	"kaenpro_motors/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.
//
// DeleteByClientID supports the client cascade: it must remove every vehicle
// whose ClientID matches and nothing else.

type IVehicleRepository interface {
	Create(ctx context.Context, tenantID string, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Vehicle, error)
	List(ctx context.Context, tenantID string) ([]entities.Vehicle, error)
	ListByClientID(ctx context.Context, tenantID, clientID string) ([]entities.Vehicle, error)
	Update(ctx context.Context, tenantID string, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, tenantID, id string) error
	DeleteByClientID(ctx context.Context, tenantID, clientID string) error
}
