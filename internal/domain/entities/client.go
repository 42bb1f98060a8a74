package entities

import "time"

// Client is a customer of the workshop.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: id
//
// Vehicles and service orders reference the client by id; they are never
// embedded here. Deleting a client cascades over both collections.

type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Document     string    `json:"document"`
	Observations string    `json:"observations"`
	CreatedAt    time.Time `json:"created_at"`
}
