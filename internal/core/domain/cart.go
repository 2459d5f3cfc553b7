package domain

import (
	"fmt"
	"time"
)

// CartItem is one line of the authenticated user's cart.
type CartItem struct {
	ID        int64     `json:"id"`
	Product   Product   `json:"product"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// Subtotal is the line price at the embedded product snapshot.
func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// CartTotal sums price*quantity over items.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}

// CartCount sums the quantities of items.
func CartCount(items []CartItem) int {
	var n int
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// ValidateCart checks the invariants every fetched cart must satisfy:
// positive quantities and unique line ids.
func ValidateCart(items []CartItem) error {
	seen := make(map[int64]struct{}, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			return fmt.Errorf("%w: item %d has quantity %d", ErrMalformedCart, it.ID, it.Quantity)
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("%w: duplicate item id %d", ErrMalformedCart, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}
