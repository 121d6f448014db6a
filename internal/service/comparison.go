package service

import (
	"math"

	"github.com/mercalist/mercalist/internal/models"
)

// PriceComparison is the outcome of comparing two catalog products
type PriceComparison struct {
	ProductA   *models.Product `json:"product_a"`
	ProductB   *models.Product `json:"product_b"`
	Difference float64         `json:"difference"`
	Cheaper    *models.Product `json:"cheaper,omitempty"`
	Equal      bool            `json:"equal"`
}

// ComparePrices reports the absolute price difference between two products
// and which one is cheaper. Cheaper is nil when the prices are equal.
func ComparePrices(a, b *models.Product) PriceComparison {
	comparison := PriceComparison{
		ProductA:   a,
		ProductB:   b,
		Difference: roundCents(math.Abs(a.Price - b.Price)),
	}

	switch {
	case a.Price < b.Price:
		comparison.Cheaper = a
	case b.Price < a.Price:
		comparison.Cheaper = b
	default:
		comparison.Equal = true
	}

	return comparison
}

// CheaperSupermarket names the supermarket offering the cheaper product, or
// an empty string when prices are equal or the supermarket is unknown.
func (c PriceComparison) CheaperSupermarket() string {
	if c.Cheaper == nil || c.Cheaper.Supermarket == nil {
		return ""
	}
	return *c.Cheaper.Supermarket
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
