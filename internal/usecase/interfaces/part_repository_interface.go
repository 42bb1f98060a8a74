package interfaces

import (
	"context"

	"kaenpro_motors/internal/domain/entities"
)

// IPartRepository abstracts DynamoDB persistence for Part.
//
// FindByName matches by case-insensitive name equality. Inventory lines on a
// service order carry no part id, only a free-text description; this lookup
// is the (intentionally preserved) bridge between the two.

type IPartRepository interface {
	Create(ctx context.Context, tenantID string, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Part, error)
	List(ctx context.Context, tenantID string) ([]entities.Part, error)
	FindByName(ctx context.Context, tenantID, name string) (entities.Part, error)
	Update(ctx context.Context, tenantID string, p entities.Part) (entities.Part, error)
	Delete(ctx context.Context, tenantID, id string) error
}
