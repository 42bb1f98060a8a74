package response

import "kaenpro_motors/internal/domain/entities"

type PartResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	CostPrice float64 `json:"cost_price"`
	SalePrice float64 `json:"sale_price"`
	Stock     int     `json:"stock"`
	MinStock  int     `json:"min_stock"`
	LowStock  bool    `json:"low_stock"`
}

func FromPart(p entities.Part) PartResponse {
	return PartResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		CostPrice: p.CostPrice,
		SalePrice: p.SalePrice,
		Stock:     p.Stock,
		MinStock:  p.MinStock,
		LowStock:  p.LowStock(),
	}
}

func FromParts(parts []entities.Part) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, FromPart(p))
	}
	return out
}
