package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"kaenpro_motors/internal/domain/entities"
	"kaenpro_motors/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidClientName    = errors.New("invalid client name")
	ErrDeletionNotConfirmed = errors.New("deletion not confirmed")
)

// IClientUseCase manages the customer roster, including the destructive
// cascade that removes a client together with every vehicle and service
// order referencing it.

type IClientUseCase interface {
	Register(ctx context.Context, tenantID string, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Client, error)
	List(ctx context.Context, tenantID string) ([]entities.Client, error)
	Update(ctx context.Context, tenantID string, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, tenantID, id string, role entities.Role, confirmed bool) error
}

type ClientUseCase struct {
	clients  interfaces.IClientRepository
	vehicles interfaces.IVehicleRepository
	orders   interfaces.IServiceOrderRepository
	logger   *zap.Logger
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(clients interfaces.IClientRepository, vehicles interfaces.IVehicleRepository, orders interfaces.IServiceOrderRepository, logger *zap.Logger) *ClientUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientUseCase{clients: clients, vehicles: vehicles, orders: orders, logger: logger}
}

func (u *ClientUseCase) Register(ctx context.Context, tenantID string, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	return u.clients.Create(ctx, tenantID, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.clients.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context, tenantID string) ([]entities.Client, error) {
	return u.clients.List(ctx, tenantID)
}

func (u *ClientUseCase) Update(ctx context.Context, tenantID string, c entities.Client) (entities.Client, error) {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	existing, err := u.clients.GetByID(ctx, tenantID, c.ID)
	if err != nil {
		return entities.Client{}, err
	}
	if existing.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}

	c.CreatedAt = existing.CreatedAt
	return u.clients.Update(ctx, tenantID, c)
}

// Delete removes the client and cascades over every vehicle and service
// order referencing it, in that order. Owner only, and the caller must have
// explicitly confirmed: the cascade is irreversible. Records of other
// clients are never touched.
func (u *ClientUseCase) Delete(ctx context.Context, tenantID, id string, role entities.Role, confirmed bool) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	if !role.CanDelete() {
		return ErrPermissionDenied
	}
	if !confirmed {
		return ErrDeletionNotConfirmed
	}

	c, err := u.clients.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrClientNotFound
	}

	if err := u.clients.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	if err := u.vehicles.DeleteByClientID(ctx, tenantID, id); err != nil {
		return err
	}
	if err := u.orders.DeleteByClientID(ctx, tenantID, id); err != nil {
		return err
	}

	u.logger.Info("client deleted with cascade",
		zap.String("tenant_id", tenantID),
		zap.String("client_id", id))
	return nil
}
