package dto

import "github.com/shopspring/decimal"

// CartItemRequest adds a product to the cart.
type CartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartQuantityRequest replaces the quantity of a cart line.
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse is a cart line hydrated with current catalog data.
type CartLineResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse is the full cart view.
type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}
