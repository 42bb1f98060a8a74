package entities

import "time"

// OSStatus represents the lifecycle of a service order (nota).
//
// Domain notes:
//   - Creation flows jump straight to "finalizado"; the draft stages exist in
//     the enumeration but no transition logic is defined for them.

type OSStatus string

const (
	OSStatusOrcamento   OSStatus = "orcamento"
	OSStatusEmAndamento OSStatus = "em_andamento"
	OSStatusFinalizado  OSStatus = "finalizado"
	OSStatusCancelado   OSStatus = "cancelado"
)

// PaymentStatus tracks collection state of a service order.
//
// Transitions:
//   - pendente -> atrasado: time-based, recomputed on each collections pass
//     (pending for more than 7 days).
//   - pendente/atrasado -> pago: explicit user action, terminal.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAtrasado PaymentStatus = "atrasado"
	PaymentStatusPago     PaymentStatus = "pago"
)

// OSItemType tags a service-order line as a stocked part or plain labor item.

type OSItemType string

const (
	OSItemTypePart    OSItemType = "PART"
	OSItemTypeService OSItemType = "SERVICE"
)

// OSItem is a single billed line. It is owned by exactly one service order
// and never persisted on its own. PART-tagged items are matched against
// inventory by case-insensitive name; a line with no matching part is a
// one-off purchase and leaves stock untouched.

type OSItem struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Quantity    int        `json:"quantity"`
	UnitPrice   float64    `json:"unit_price"`
	Type        OSItemType `json:"type"`
}

// BillingContact is one append-only entry of an order's collection history.

type BillingContact struct {
	Date  time.Time `json:"date"`
	User  string    `json:"user"`
	Level string    `json:"level"`
}

// ServiceOrder is the workshop's billing document (nota de serviço).
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: id
//
// Client and vehicle fields are denormalized snapshots captured at creation
// time and never re-synced. BillingHistory entries are only ever appended.

type ServiceOrder struct {
	ID             string           `json:"id"`
	OSNumber       string           `json:"os_number"`
	ClientID       string           `json:"client_id"`
	ClientName     string           `json:"client_name"`
	VehicleID      string           `json:"vehicle_id"`
	VehiclePlate   string           `json:"vehicle_plate"`
	VehicleModel   string           `json:"vehicle_model"`
	VehicleKm      int              `json:"vehicle_km,omitempty"`
	Problem        string           `json:"problem"`
	Items          []OSItem         `json:"items"`
	LaborValue     float64          `json:"labor_value"`
	Discount       float64          `json:"discount"`
	TotalValue     float64          `json:"total_value"`
	Status         OSStatus         `json:"status"`
	PaymentStatus  PaymentStatus    `json:"payment_status"`
	DueDate        *time.Time       `json:"due_date,omitempty"`
	BillingHistory []BillingContact `json:"billing_history,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
