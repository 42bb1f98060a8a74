package usecase

import (
	"math"

	"kaenpro_motors/internal/domain/entities"
)

// OrderTotal computes the billable total of a service order:
//
//	max(0, sum(item.Quantity * item.UnitPrice) + labor - discount)
//
// Arithmetic runs in integer cents so two-decimal money never accumulates
// float drift; negative results clamp to zero instead of erroring.
// Inputs are expected non-negative; callers coerce invalid numeric entry to
// zero before calling.
func OrderTotal(items []entities.OSItem, labor, discount float64) float64 {
	total := int64(0)
	for _, it := range items {
		total += int64(it.Quantity) * toCents(it.UnitPrice)
	}
	total += toCents(labor)
	total -= toCents(discount)
	if total < 0 {
		total = 0
	}
	return float64(total) / 100
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}
