package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddressPayload is a shipping address as carried over the wire.
type AddressPayload struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// CheckoutRequest converts the cart into an order.
type CheckoutRequest struct {
	Address AddressPayload `json:"address"`
}

// OrderItemResponse is an order line with its checkout-time price snapshot.
type OrderItemResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// StatusChangeResponse is one entry of the order's status history.
type StatusChangeResponse struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}

// OrderResponse is the full order view.
type OrderResponse struct {
	ID              int64                  `json:"id"`
	Status          string                 `json:"status"`
	TotalAmount     decimal.Decimal        `json:"total_amount"`
	Items           []OrderItemResponse    `json:"items"`
	StatusHistory   []StatusChangeResponse `json:"status_history,omitempty"`
	ShippingAddress AddressPayload         `json:"shipping_address"`
	IsPaid          bool                   `json:"is_paid"`
	PaidAt          *time.Time             `json:"paid_at,omitempty"`
	TrackingNumber  string                 `json:"tracking_number,omitempty"`
	Courier         string                 `json:"courier,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// OrderListResponse is an order page plus the filtered total.
type OrderListResponse struct {
	Items    []OrderResponse `json:"items"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// UpdateOrderStatusRequest moves an order along the lifecycle.
type UpdateOrderStatusRequest struct {
	Status         string `json:"status"`
	Note           string `json:"note"`
	TrackingNumber string `json:"tracking_number"`
	Courier        string `json:"courier"`
}
