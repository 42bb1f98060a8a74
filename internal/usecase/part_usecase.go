package usecase

import (
	"context"
	"errors"
	"strings"

	"kaenpro_motors/internal/domain/entities"
	"kaenpro_motors/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidPartID   = errors.New("invalid part id")
	ErrInvalidPartName = errors.New("invalid part name")
	ErrPartNotFound    = errors.New("part not found")
)

// InventorySummary is the stock overview shown on the dashboard: how many
// parts sit at or below their minimum and the sale value of everything on
// the shelf.

type InventorySummary struct {
	CriticalCount int     `json:"critical_count"`
	TotalValue    float64 `json:"total_value"`
}

// IPartUseCase manages the parts inventory.

type IPartUseCase interface {
	Register(ctx context.Context, tenantID string, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Part, error)
	List(ctx context.Context, tenantID string) ([]entities.Part, error)
	Summary(ctx context.Context, tenantID string) (InventorySummary, error)
	Update(ctx context.Context, tenantID string, p entities.Part) (entities.Part, error)
	Delete(ctx context.Context, tenantID, id string, confirmed bool) error
}

type PartUseCase struct {
	parts  interfaces.IPartRepository
	logger *zap.Logger
}

var _ IPartUseCase = (*PartUseCase)(nil)

func NewPartUseCase(parts interfaces.IPartRepository, logger *zap.Logger) *PartUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PartUseCase{parts: parts, logger: logger}
}

func (u *PartUseCase) Register(ctx context.Context, tenantID string, p entities.Part) (entities.Part, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Part{}, ErrInvalidPartName
	}

	p.ID = uuid.NewString()
	return u.parts.Create(ctx, tenantID, p)
}

func (u *PartUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}

	p, err := u.parts.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Part{}, err
	}
	if p.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return p, nil
}

func (u *PartUseCase) List(ctx context.Context, tenantID string) ([]entities.Part, error) {
	return u.parts.List(ctx, tenantID)
}

func (u *PartUseCase) Summary(ctx context.Context, tenantID string) (InventorySummary, error) {
	parts, err := u.parts.List(ctx, tenantID)
	if err != nil {
		return InventorySummary{}, err
	}

	var s InventorySummary
	for _, p := range parts {
		if p.LowStock() {
			s.CriticalCount++
		}
		s.TotalValue += float64(p.Stock) * p.SalePrice
	}
	return s, nil
}

func (u *PartUseCase) Update(ctx context.Context, tenantID string, p entities.Part) (entities.Part, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Part{}, ErrInvalidPartID
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Part{}, ErrInvalidPartName
	}

	existing, err := u.parts.GetByID(ctx, tenantID, p.ID)
	if err != nil {
		return entities.Part{}, err
	}
	if existing.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return u.parts.Update(ctx, tenantID, p)
}

func (u *PartUseCase) Delete(ctx context.Context, tenantID, id string, confirmed bool) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPartID
	}
	if !confirmed {
		return ErrDeletionNotConfirmed
	}

	p, err := u.parts.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPartNotFound
	}
	return u.parts.Delete(ctx, tenantID, id)
}
