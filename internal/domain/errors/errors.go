package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailNotVerified    = errors.New("email not verified")
	ErrValidation          = errors.New("invalid input")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrPaymentVerification = errors.New("payment verification failed")
	ErrAlreadyPaid         = errors.New("order already paid")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrUnpaidShipment      = errors.New("order is not paid")
	ErrNotCancellable      = errors.New("order can no longer be cancelled")
	ErrStatusConflict      = errors.New("order status changed concurrently")
	ErrInsufficientStock   = errors.New("insufficient stock")
)

// OutOfStockError reports a checkout-time shortfall naming the product.
type OutOfStockError struct {
	Product string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("%s out of stock", e.Product)
}

// StockError reports a payment-time shortfall: stock consumed by concurrent
// checkouts between order creation and payment confirmation.
type StockError struct {
	Product string
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s at payment time", e.Product)
}
