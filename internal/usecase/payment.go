package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/polkiloo/scentshop/internal/adapter/razorpay"
	domainErrors "github.com/polkiloo/scentshop/internal/domain/errors"
	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
)

// PaymentUseCase drives the gateway leg of the order lifecycle.
type PaymentUseCase struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	carts    repository.CartRepository
	gateway  razorpay.Client
	verifier razorpay.SignatureVerifier
	notifier Notifier
	logger   *slog.Logger
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(
	orders repository.OrderRepository,
	users repository.UserRepository,
	carts repository.CartRepository,
	gateway razorpay.Client,
	verifier razorpay.SignatureVerifier,
	notifier Notifier,
	logger *slog.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		orders:   orders,
		users:    users,
		carts:    carts,
		gateway:  gateway,
		verifier: verifier,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateGatewayOrder registers the order with the payment gateway and stores
// the returned gateway order id. Calling it again for the same order returns
// the stored id instead of registering a duplicate.
func (u *PaymentUseCase) CreateGatewayOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	if order.IsPaid {
		return nil, domainErrors.ErrAlreadyPaid
	}
	if order.RazorpayOrderID != "" {
		return order, nil
	}

	gatewayOrderID, err := u.gateway.CreateOrder(ctx, order.TotalAmount, "INR", fmt.Sprintf("order_%d", order.ID))
	if err != nil {
		return nil, err
	}
	if err := u.orders.SetRazorpayOrderID(ctx, order.ID, gatewayOrderID); err != nil {
		return nil, err
	}
	order.RazorpayOrderID = gatewayOrderID
	return order, nil
}

// VerifyPayment authenticates the gateway callback and commits the payment.
// On success the cart is cleared and a confirmation email queued, both best
// effort: the payment itself is already durable at that point.
func (u *PaymentUseCase) VerifyPayment(ctx context.Context, userID int64, gatewayOrderID, paymentID, signature string) (*model.Order, error) {
	if gatewayOrderID == "" || paymentID == "" || signature == "" {
		return nil, domainErrors.ErrValidation
	}

	if !u.verifier.Verify(gatewayOrderID, paymentID, signature) {
		return nil, domainErrors.ErrPaymentVerification
	}

	order, err := u.orders.GetByRazorpayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}

	confirmed, err := u.orders.ConfirmPayment(ctx, order.ID, paymentID)
	if err != nil {
		return nil, err
	}

	if err := u.carts.Delete(ctx, userID); err != nil {
		u.logger.Error("clear cart after payment failed",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}

	u.sendConfirmation(ctx, confirmed)
	return confirmed, nil
}

func (u *PaymentUseCase) sendConfirmation(ctx context.Context, order *model.Order) {
	usr, err := u.users.GetByID(ctx, order.UserID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			u.logger.Error("load user for confirmation email failed",
				slog.Int64("order_id", order.ID), slog.String("error", err.Error()))
		}
		return
	}
	u.notifier.Enqueue(orderConfirmationEmail(usr.Email, usr.Name, order))
}
