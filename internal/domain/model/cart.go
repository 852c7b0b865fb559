package model

import "github.com/shopspring/decimal"

// Cart holds per-user pending purchases keyed by product id.
type Cart struct {
	UserID int64         `json:"user_id"`
	Items  map[int64]int `json:"items"`
}

// NewCart creates an empty cart for the user.
func NewCart(userID int64) *Cart {
	return &Cart{UserID: userID, Items: make(map[int64]int)}
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// CartLine is a cart item hydrated with current catalog data for display.
type CartLine struct {
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Subtotal  decimal.Decimal
}
