package request

import (
	"math"
	"time"

	"kaenpro_motors/internal/domain/entities"
	"kaenpro_motors/internal/usecase"
)

type OSItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Type        string  `json:"type" binding:"required,oneof=PART SERVICE"`
}

// FinalizeOrderRequest is the payload that creates a service order in its
// final state. Numeric fields are coerced to non-negative values before the
// pricing calculator sees them.
type FinalizeOrderRequest struct {
	ClientID      string          `json:"client_id" binding:"required"`
	VehicleID     string          `json:"vehicle_id" binding:"required"`
	VehicleKm     int             `json:"vehicle_km"`
	Problem       string          `json:"problem"`
	Items         []OSItemRequest `json:"items"`
	LaborValue    float64         `json:"labor_value"`
	Discount      float64         `json:"discount"`
	PaymentStatus string          `json:"payment_status"`
	DueDate       *time.Time      `json:"due_date"`
	QuickTerminal bool            `json:"quick_terminal"`
}

func (r FinalizeOrderRequest) ToInput() usecase.FinalizeOrderInput {
	items := make([]entities.OSItem, 0, len(r.Items))
	for _, it := range r.Items {
		qty := it.Quantity
		if qty < 0 {
			qty = 0
		}
		items = append(items, entities.OSItem{
			Description: it.Description,
			Quantity:    qty,
			UnitPrice:   nonNegative(it.UnitPrice),
			Type:        entities.OSItemType(it.Type),
		})
	}

	km := r.VehicleKm
	if km < 0 {
		km = 0
	}
	return usecase.FinalizeOrderInput{
		ClientID:      r.ClientID,
		VehicleID:     r.VehicleID,
		VehicleKm:     km,
		Problem:       r.Problem,
		Items:         items,
		LaborValue:    nonNegative(r.LaborValue),
		Discount:      nonNegative(r.Discount),
		PaymentStatus: entities.PaymentStatus(r.PaymentStatus),
		DueDate:       r.DueDate,
		QuickTerminal: r.QuickTerminal,
	}
}

// nonNegative coerces invalid numeric entry (negative, NaN, Inf) to zero.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
