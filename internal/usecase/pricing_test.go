package usecase

import (
	"testing"

	"kaenpro_motors/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestOrderTotal(t *testing.T) {
	cases := []struct {
		name     string
		items    []entities.OSItem
		labor    float64
		discount float64
		want     float64
	}{
		{
			name: "items plus labor minus discount",
			items: []entities.OSItem{
				{Quantity: 2, UnitPrice: 10},
				{Quantity: 1, UnitPrice: 5},
			},
			labor:    50,
			discount: 10,
			want:     65,
		},
		{
			name:     "discount larger than total clamps to zero",
			items:    nil,
			labor:    0,
			discount: 5,
			want:     0,
		},
		{
			name:  "labor only",
			items: nil,
			labor: 120.5,
			want:  120.5,
		},
		{
			name: "cent arithmetic does not drift",
			items: []entities.OSItem{
				{Quantity: 3, UnitPrice: 0.1},
			},
			want: 0.3,
		},
		{
			name: "zero quantity line contributes nothing",
			items: []entities.OSItem{
				{Quantity: 0, UnitPrice: 99.9},
				{Quantity: 1, UnitPrice: 25},
			},
			want: 25,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := OrderTotal(tc.items, tc.labor, tc.discount)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0,00"},
		{5, "5,00"},
		{1234.5, "1.234,50"},
		{1234567.89, "1.234.567,89"},
		{-42.1, "-42,10"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatBRL(tc.in))
	}
}
