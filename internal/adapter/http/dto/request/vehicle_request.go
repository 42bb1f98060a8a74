package request

import "kaenpro_motors/internal/domain/entities"

type VehicleRequest struct {
	ClientID     string `json:"client_id" binding:"required"`
	Plate        string `json:"plate" binding:"required"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	Km           int    `json:"km"`
	Observations string `json:"observations"`
}

func (r VehicleRequest) ToEntity() entities.Vehicle {
	km := r.Km
	if km < 0 {
		km = 0
	}
	return entities.Vehicle{
		ClientID:     r.ClientID,
		Plate:        r.Plate,
		Brand:        r.Brand,
		Model:        r.Model,
		Year:         r.Year,
		Km:           km,
		Observations: r.Observations,
	}
}
