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

var ErrInvalidVehiclePlate = errors.New("invalid vehicle plate")

// IVehicleUseCase manages the vehicle fleet. Every vehicle must reference an
// existing client at registration time.

type IVehicleUseCase interface {
	Register(ctx context.Context, tenantID string, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Vehicle, error)
	List(ctx context.Context, tenantID string) ([]entities.Vehicle, error)
	ListByClientID(ctx context.Context, tenantID, clientID string) ([]entities.Vehicle, error)
	Update(ctx context.Context, tenantID string, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, tenantID, id string, confirmed bool) error
}

type VehicleUseCase struct {
	vehicles interfaces.IVehicleRepository
	clients  interfaces.IClientRepository
	logger   *zap.Logger
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(vehicles interfaces.IVehicleRepository, clients interfaces.IClientRepository, logger *zap.Logger) *VehicleUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VehicleUseCase{vehicles: vehicles, clients: clients, logger: logger}
}

func (u *VehicleUseCase) Register(ctx context.Context, tenantID string, v entities.Vehicle) (entities.Vehicle, error) {
	v.ClientID = strings.TrimSpace(v.ClientID)
	if v.ClientID == "" {
		return entities.Vehicle{}, ErrInvalidClientID
	}
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
	if v.Plate == "" {
		return entities.Vehicle{}, ErrInvalidVehiclePlate
	}

	owner, err := u.clients.GetByID(ctx, tenantID, v.ClientID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if owner.ID == "" {
		return entities.Vehicle{}, ErrClientNotFound
	}

	v.ID = uuid.NewString()
	return u.vehicles.Create(ctx, tenantID, v)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}

	v, err := u.vehicles.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) List(ctx context.Context, tenantID string) ([]entities.Vehicle, error) {
	return u.vehicles.List(ctx, tenantID)
}

func (u *VehicleUseCase) ListByClientID(ctx context.Context, tenantID, clientID string) ([]entities.Vehicle, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.vehicles.ListByClientID(ctx, tenantID, clientID)
}

func (u *VehicleUseCase) Update(ctx context.Context, tenantID string, v entities.Vehicle) (entities.Vehicle, error) {
	v.ID = strings.TrimSpace(v.ID)
	if v.ID == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
	if v.Plate == "" {
		return entities.Vehicle{}, ErrInvalidVehiclePlate
	}

	existing, err := u.vehicles.GetByID(ctx, tenantID, v.ID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if existing.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}

	// The owning client never changes through update.
	v.ClientID = existing.ClientID
	return u.vehicles.Update(ctx, tenantID, v)
}

func (u *VehicleUseCase) Delete(ctx context.Context, tenantID, id string, confirmed bool) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidVehicleID
	}
	if !confirmed {
		return ErrDeletionNotConfirmed
	}

	v, err := u.vehicles.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if v.ID == "" {
		return ErrVehicleNotFound
	}
	return u.vehicles.Delete(ctx, tenantID, id)
}
