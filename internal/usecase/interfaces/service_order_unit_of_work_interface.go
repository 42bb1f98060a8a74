package interfaces

import (
	"context"

	"kaenpro_motors/internal/domain/entities"
)

// StockDecrement is one inventory write of an order finalization.

type StockDecrement struct {
	PartID   string
	Quantity int
}

// VehicleKmUpdate overwrites a vehicle's odometer reading.

type VehicleKmUpdate struct {
	VehicleID string
	Km        int
}

// IServiceOrderUnitOfWork groups the writes of an order finalization so they
// commit together or not at all: the order itself, the vehicle odometer
// overwrite, and the stock decrements of every matched PART line.
//
// kmUpdate may be nil (quick-terminal flow with no vehicle reading) and
// decrements may be empty (labor-only order or one-off parts).

type IServiceOrderUnitOfWork interface {
	Finalize(ctx context.Context, tenantID string, o entities.ServiceOrder, kmUpdate *VehicleKmUpdate, decrements []StockDecrement) error
}
