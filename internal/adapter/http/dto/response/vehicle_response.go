package response

import "kaenpro_motors/internal/domain/entities"

type VehicleResponse struct {
	ID           string `json:"id"`
	ClientID     string `json:"client_id"`
	Plate        string `json:"plate"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	Km           int    `json:"km"`
	Observations string `json:"observations,omitempty"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		ClientID:     v.ClientID,
		Plate:        v.Plate,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		Km:           v.Km,
		Observations: v.Observations,
	}
}

func FromVehicles(vehicles []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}
