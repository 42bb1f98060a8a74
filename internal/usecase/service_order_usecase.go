package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"kaenpro_motors/internal/domain/entities"
	"kaenpro_motors/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidClientID        = errors.New("invalid client id")
	ErrInvalidVehicleID       = errors.New("invalid vehicle id")
	ErrClientNotFound         = errors.New("client not found")
	ErrVehicleNotFound        = errors.New("vehicle not found")
	ErrNothingToBill          = errors.New("nothing to bill: no items and no labor value")
	ErrInvalidPaymentStatus   = errors.New("invalid payment status for a new order")
	ErrServiceOrderNotFound   = errors.New("service order not found")
	ErrInvalidServiceOrderID  = errors.New("invalid service order id")
	ErrServiceOrderFinalize   = errors.New("service order finalization failed")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrOSNumberSpaceExhausted = errors.New("could not allocate a unique os number")
)

// FinalizeOrderInput carries everything needed to create a service order in
// its final state. QuickTerminal marks orders registered from the mechanic
// terminal, which use the TEC- numbering scheme.

type FinalizeOrderInput struct {
	ClientID      string
	VehicleID     string
	VehicleKm     int
	Problem       string
	Items         []entities.OSItem
	LaborValue    float64
	Discount      float64
	PaymentStatus entities.PaymentStatus
	DueDate       *time.Time
	QuickTerminal bool
}

// IServiceOrderUseCase exposes the service-order lifecycle.
//
// Orders are created already finalized; afterwards they are only mutated by
// the billing engine (mark paid, record contact) or deleted outright.

type IServiceOrderUseCase interface {
	Finalize(ctx context.Context, tenantID string, in FinalizeOrderInput) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.ServiceOrder, error)
	List(ctx context.Context, tenantID string) ([]entities.ServiceOrder, error)
	Delete(ctx context.Context, tenantID, id string, role entities.Role) error
}

type ServiceOrderUseCase struct {
	orders   interfaces.IServiceOrderRepository
	clients  interfaces.IClientRepository
	vehicles interfaces.IVehicleRepository
	parts    interfaces.IPartRepository
	uow      interfaces.IServiceOrderUnitOfWork
	logger   *zap.Logger
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	orders interfaces.IServiceOrderRepository,
	clients interfaces.IClientRepository,
	vehicles interfaces.IVehicleRepository,
	parts interfaces.IPartRepository,
	uow interfaces.IServiceOrderUnitOfWork,
	logger *zap.Logger,
) *ServiceOrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceOrderUseCase{orders: orders, clients: clients, vehicles: vehicles, parts: parts, uow: uow, logger: logger}
}

// Finalize validates the input, allocates a unique os number, prices the
// order and commits all finalization writes through the unit of work: the
// order itself, the vehicle odometer overwrite and the stock decrements of
// every PART line that matches inventory by name.
func (u *ServiceOrderUseCase) Finalize(ctx context.Context, tenantID string, in FinalizeOrderInput) (entities.ServiceOrder, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.ServiceOrder{}, ErrInvalidClientID
	}
	vehicleID := strings.TrimSpace(in.VehicleID)
	if vehicleID == "" {
		return entities.ServiceOrder{}, ErrInvalidVehicleID
	}
	if len(in.Items) == 0 && in.LaborValue == 0 {
		return entities.ServiceOrder{}, ErrNothingToBill
	}

	switch in.PaymentStatus {
	case "":
		in.PaymentStatus = entities.PaymentStatusPendente
	case entities.PaymentStatusPendente, entities.PaymentStatusPago:
	default:
		return entities.ServiceOrder{}, ErrInvalidPaymentStatus
	}

	client, err := u.clients.GetByID(ctx, tenantID, clientID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if client.ID == "" {
		return entities.ServiceOrder{}, ErrClientNotFound
	}

	vehicle, err := u.vehicles.GetByID(ctx, tenantID, vehicleID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if vehicle.ID == "" {
		return entities.ServiceOrder{}, ErrVehicleNotFound
	}

	osNumber, err := u.nextOSNumber(ctx, tenantID, in.QuickTerminal)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	items := make([]entities.OSItem, len(in.Items))
	copy(items, in.Items)
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}

	now := time.Now().UTC()
	order := entities.ServiceOrder{
		ID:            uuid.NewString(),
		OSNumber:      osNumber,
		ClientID:      client.ID,
		ClientName:    client.Name,
		VehicleID:     vehicle.ID,
		VehiclePlate:  strings.ToUpper(vehicle.Plate),
		VehicleModel:  vehicle.Model,
		VehicleKm:     in.VehicleKm,
		Problem:       strings.TrimSpace(in.Problem),
		Items:         items,
		LaborValue:    in.LaborValue,
		Discount:      in.Discount,
		TotalValue:    OrderTotal(items, in.LaborValue, in.Discount),
		Status:        entities.OSStatusFinalizado,
		PaymentStatus: in.PaymentStatus,
		DueDate:       in.DueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	decrements, err := u.resolveStockDecrements(ctx, tenantID, items)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	kmUpdate := &interfaces.VehicleKmUpdate{VehicleID: vehicle.ID, Km: in.VehicleKm}
	if err := u.uow.Finalize(ctx, tenantID, order, kmUpdate, decrements); err != nil {
		u.logger.Error("service order finalization failed",
			zap.String("tenant_id", tenantID),
			zap.String("os_number", order.OSNumber),
			zap.Error(err))
		return entities.ServiceOrder{}, fmt.Errorf("%w: %v", ErrServiceOrderFinalize, err)
	}

	u.logger.Info("service order finalized",
		zap.String("tenant_id", tenantID),
		zap.String("os_number", order.OSNumber),
		zap.String("client_id", order.ClientID),
		zap.Float64("total_value", order.TotalValue),
		zap.Int("stock_decrements", len(decrements)))
	return order, nil
}

// resolveStockDecrements matches PART lines against inventory by
// case-insensitive name and aggregates quantities per part, so a part named
// twice on the order still produces a single decrement. Lines with no
// matching part are one-off purchases and are skipped.
func (u *ServiceOrderUseCase) resolveStockDecrements(ctx context.Context, tenantID string, items []entities.OSItem) ([]interfaces.StockDecrement, error) {
	byPart := map[string]int{}
	order := []string{}
	for _, it := range items {
		if it.Type != entities.OSItemTypePart || it.Quantity <= 0 {
			continue
		}
		part, err := u.parts.FindByName(ctx, tenantID, it.Description)
		if err != nil {
			return nil, err
		}
		if part.ID == "" {
			continue
		}
		if _, seen := byPart[part.ID]; !seen {
			order = append(order, part.ID)
		}
		byPart[part.ID] += it.Quantity
	}

	decrements := make([]interfaces.StockDecrement, 0, len(byPart))
	for _, id := range order {
		decrements = append(decrements, interfaces.StockDecrement{PartID: id, Quantity: byPart[id]})
	}
	return decrements, nil
}

// nextOSNumber allocates an order number unique within the tenant's order
// collection. Regular orders get a 5-digit number, terminal orders a
// TEC-prefixed one; collisions are retried against the loaded collection and
// the space widens with a suffix before giving up.
func (u *ServiceOrderUseCase) nextOSNumber(ctx context.Context, tenantID string, quickTerminal bool) (string, error) {
	existing, err := u.orders.List(ctx, tenantID)
	if err != nil {
		return "", err
	}
	taken := make(map[string]struct{}, len(existing))
	for _, o := range existing {
		taken[o.OSNumber] = struct{}{}
	}

	const attempts = 32
	for i := 0; i < attempts; i++ {
		var candidate string
		if quickTerminal {
			candidate = fmt.Sprintf("TEC-%06d", rand.IntN(1_000_000))
		} else {
			candidate = fmt.Sprintf("%d", 10_000+rand.IntN(90_000))
		}
		if _, ok := taken[candidate]; !ok {
			return candidate, nil
		}
	}

	// Dense collection: widen with a millisecond suffix.
	for i := 0; i < attempts; i++ {
		candidate := fmt.Sprintf("%d-%03d", 10_000+rand.IntN(90_000), time.Now().UnixMilli()%1000)
		if quickTerminal {
			candidate = "TEC-" + candidate
		}
		if _, ok := taken[candidate]; !ok {
			return candidate, nil
		}
	}
	return "", ErrOSNumberSpaceExhausted
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}

	o, err := u.orders.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context, tenantID string) ([]entities.ServiceOrder, error) {
	return u.orders.List(ctx, tenantID)
}

// Delete removes a single order. Owner only.
func (u *ServiceOrderUseCase) Delete(ctx context.Context, tenantID, id string, role entities.Role) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceOrderID
	}
	if !role.CanDelete() {
		return ErrPermissionDenied
	}

	o, err := u.orders.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if o.ID == "" {
		return ErrServiceOrderNotFound
	}

	if err := u.orders.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	u.logger.Info("service order deleted",
		zap.String("tenant_id", tenantID),
		zap.String("os_number", o.OSNumber))
	return nil
}
