package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes order lifecycle state.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// Valid reports whether the status belongs to the closed enum.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a line of an order. Price is the unit price snapshot taken at
// checkout time and never recomputed afterwards.
type OrderItem struct {
	ProductID   int64
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// Subtotal returns price multiplied by quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// StatusChange is a single append-only entry in order status history.
type StatusChange struct {
	Status    OrderStatus
	Note      string
	ChangedAt time.Time
}

// Address is a snapshot of shipping details taken at order time.
type Address struct {
	FullName   string
	Phone      string
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Shipment carries optional tracking details attached when an order ships.
type Shipment struct {
	TrackingNumber string
	Courier        string
}

// Order is the central ledger entity.
type Order struct {
	ID                int64
	UserID            int64
	Items             []OrderItem
	TotalAmount       decimal.Decimal
	Status            OrderStatus
	StatusHistory     []StatusChange
	ShippingAddress   Address
	IsPaid            bool
	PaidAt            *time.Time
	RazorpayOrderID   string
	RazorpayPaymentID string
	TrackingNumber    string
	Courier           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
