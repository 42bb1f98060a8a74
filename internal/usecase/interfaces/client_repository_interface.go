package interfaces

import (
	"context"

	"kaenpro_motors/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// Every call is scoped by tenantID (the authenticated workshop account);
// records of one tenant are invisible to another.

type IClientRepository interface {
	Create(ctx context.Context, tenantID string, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Client, error)
	List(ctx context.Context, tenantID string) ([]entities.Client, error)
	Update(ctx context.Context, tenantID string, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, tenantID, id string) error
}
