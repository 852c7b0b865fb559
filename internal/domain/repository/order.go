package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/scentshop/internal/domain/model"
)

// OrderFilter narrows admin order listings. Search matches the shipping
// recipient name case-insensitively.
type OrderFilter struct {
	Status *model.OrderStatus
	Search string
}

// OrderRepository is the order ledger. It never deletes orders and only ever
// appends to status history.
type OrderRepository interface {
	// Create persists a new pending order with a single history entry.
	Create(ctx context.Context, userID int64, items []model.OrderItem, total decimal.Decimal, addr model.Address) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]model.Order, error)
	ListAll(ctx context.Context, filter OrderFilter, page, pageSize int) ([]model.Order, int, error)
	SetRazorpayOrderID(ctx context.Context, orderID int64, razorpayOrderID string) error
	// UpdateStatus moves the order from one status to another and appends a
	// history entry in a single transaction. The move succeeds only when the
	// stored status still equals from.
	UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus, note string, shipment *model.Shipment) error
	// ConfirmPayment is the authoritative payment commit: it checks the
	// idempotency guard, debits stock conditionally for every item, marks the
	// order paid and appends the history entry, all in one transaction.
	ConfirmPayment(ctx context.Context, orderID int64, paymentID string) (*model.Order, error)
}
