// Package cart holds the pricing arithmetic for the shopping cart.
package cart

import (
	"github.com/shashiranjanraj/dukaan/app/models"
	"github.com/shashiranjanraj/dukaan/pkg/collection"
)

// TaxRate is the fixed tax applied to every order.
const TaxRate = 0.10

// Totals is the priced summary of a cart at one instant.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// LineTotal prices one cart line: captured unit price times quantity.
func LineTotal(item models.CartItem) float64 {
	return item.Price * float64(item.Quantity)
}

// Subtotal sums the line totals of every item. An empty cart sums to 0.
func Subtotal(items []models.CartItem) float64 {
	return collection.Sum(items, LineTotal)
}

// Tax is the fixed-rate tax on a subtotal.
func Tax(subtotal float64) float64 {
	return subtotal * TaxRate
}

// Compute derives the full Totals for a cart. Values are plain float64
// products; rendering to currency is the caller's concern.
func Compute(items []models.CartItem) Totals {
	sub := Subtotal(items)
	tax := Tax(sub)
	return Totals{
		Subtotal: sub,
		Tax:      tax,
		Total:    sub + tax,
	}
}
