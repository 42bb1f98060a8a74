package request

import "kaenpro_motors/internal/domain/entities"

type ClientRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Document     string `json:"document"`
	Observations string `json:"observations"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:         r.Name,
		Phone:        r.Phone,
		Document:     r.Document,
		Observations: r.Observations,
	}
}
