package response

import (
	"time"

	"kaenpro_motors/internal/domain/entities"
)

type ClientResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Document     string    `json:"document"`
	Observations string    `json:"observations"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Document:     c.Document,
		Observations: c.Observations,
		CreatedAt:    c.CreatedAt,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
