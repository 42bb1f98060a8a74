package entities

// Part is an inventory item, independent of clients and vehicles.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: id
//
// Stock may go negative: order finalization decrements it best-effort with
// no floor. Parts at or below MinStock are reported as critical by the
// inventory listing.

type Part struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	CostPrice float64 `json:"cost_price"`
	SalePrice float64 `json:"sale_price"`
	Stock     int     `json:"stock"`
	MinStock  int     `json:"min_stock"`
}

// LowStock reports whether the part is at or below its minimum threshold.
func (p Part) LowStock() bool {
	return p.Stock <= p.MinStock
}
