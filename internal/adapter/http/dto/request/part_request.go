package request

import "kaenpro_motors/internal/domain/entities"

type PartRequest struct {
	Name      string  `json:"name" binding:"required"`
	SKU       string  `json:"sku"`
	CostPrice float64 `json:"cost_price"`
	SalePrice float64 `json:"sale_price"`
	Stock     int     `json:"stock"`
	MinStock  int     `json:"min_stock"`
}

func (r PartRequest) ToEntity() entities.Part {
	return entities.Part{
		Name:      r.Name,
		SKU:       r.SKU,
		CostPrice: nonNegative(r.CostPrice),
		SalePrice: nonNegative(r.SalePrice),
		Stock:     r.Stock,
		MinStock:  r.MinStock,
	}
}
