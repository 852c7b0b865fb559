package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/scentshop/internal/domain/errors"
	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
)

// allowedTransitions is the order lifecycle. Paid is reachable only through
// payment confirmation, never through an admin status update.
var allowedTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:        {model.OrderStatusCancelled},
	model.OrderStatusPaid:           {model.OrderStatusShipped, model.OrderStatusCancelled},
	model.OrderStatusShipped:        {model.OrderStatusOutForDelivery},
	model.OrderStatusOutForDelivery: {model.OrderStatusDelivered},
}

func transitionAllowed(from, to model.OrderStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// ListMine returns a page of the user's orders, newest first.
func (u *OrderUseCase) ListMine(ctx context.Context, userID int64, page, pageSize int) ([]model.Order, error) {
	page, pageSize = clampPage(page, pageSize)
	return u.orders.ListByUser(ctx, userID, page, pageSize)
}

// GetForUser fetches an order, hiding other users' orders behind not found.
func (u *OrderUseCase) GetForUser(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// ListAll returns an admin page over all orders plus the filtered total.
func (u *OrderUseCase) ListAll(ctx context.Context, filter repository.OrderFilter, page, pageSize int) ([]model.Order, int, error) {
	page, pageSize = clampPage(page, pageSize)
	return u.orders.ListAll(ctx, filter, page, pageSize)
}

// UpdateStatus moves an order along the lifecycle. Shipment details are
// accepted only when moving to shipped, and shipping an unpaid order is
// rejected.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, to model.OrderStatus, note string, shipment *model.Shipment) (*model.Order, error) {
	if !to.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	if to == model.OrderStatusPaid || to == model.OrderStatusPending {
		return nil, domainErrors.ErrInvalidTransition
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(order.Status, to) {
		return nil, domainErrors.ErrInvalidTransition
	}
	if to == model.OrderStatusShipped && !order.IsPaid {
		return nil, domainErrors.ErrUnpaidShipment
	}
	if to != model.OrderStatusShipped {
		shipment = nil
	}

	if err := u.orders.UpdateStatus(ctx, orderID, order.Status, to, note, shipment); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, orderID)
}

// Cancel lets the owner cancel an order that has not shipped yet. Stock is
// not restored: debits happen at payment time and refund handling is a manual
// process.
func (u *OrderUseCase) Cancel(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	if order.Status != model.OrderStatusPending && order.Status != model.OrderStatusPaid {
		return nil, domainErrors.ErrNotCancellable
	}

	if err := u.orders.UpdateStatus(ctx, orderID, order.Status, model.OrderStatusCancelled, "cancelled by customer", nil); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, orderID)
}
