package response

import (
	"time"

	"kaenpro_motors/internal/domain/entities"
)

type OSItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Type        string  `json:"type"`
}

type BillingContactResponse struct {
	Date  time.Time `json:"date"`
	User  string    `json:"user"`
	Level string    `json:"level"`
}

type ServiceOrderResponse struct {
	ID             string                   `json:"id"`
	OSNumber       string                   `json:"os_number"`
	ClientID       string                   `json:"client_id"`
	ClientName     string                   `json:"client_name"`
	VehicleID      string                   `json:"vehicle_id"`
	VehiclePlate   string                   `json:"vehicle_plate"`
	VehicleModel   string                   `json:"vehicle_model"`
	VehicleKm      int                      `json:"vehicle_km,omitempty"`
	Problem        string                   `json:"problem"`
	Items          []OSItemResponse         `json:"items"`
	LaborValue     float64                  `json:"labor_value"`
	Discount       float64                  `json:"discount"`
	TotalValue     float64                  `json:"total_value"`
	Status         string                   `json:"status"`
	PaymentStatus  string                   `json:"payment_status"`
	DueDate        *time.Time               `json:"due_date,omitempty"`
	BillingHistory []BillingContactResponse `json:"billing_history,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	resp := ServiceOrderResponse{
		ID:            o.ID,
		OSNumber:      o.OSNumber,
		ClientID:      o.ClientID,
		ClientName:    o.ClientName,
		VehicleID:     o.VehicleID,
		VehiclePlate:  o.VehiclePlate,
		VehicleModel:  o.VehicleModel,
		VehicleKm:     o.VehicleKm,
		Problem:       o.Problem,
		Items:         make([]OSItemResponse, 0, len(o.Items)),
		LaborValue:    o.LaborValue,
		Discount:      o.Discount,
		TotalValue:    o.TotalValue,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		DueDate:       o.DueDate,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, OSItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Type:        string(it.Type),
		})
	}
	for _, bc := range o.BillingHistory {
		resp.BillingHistory = append(resp.BillingHistory, BillingContactResponse{
			Date:  bc.Date,
			User:  bc.User,
			Level: bc.Level,
		})
	}
	return resp
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
