package test

import (
	"context"
	"sync"

	"github.com/polkiloo/scentshop/internal/adapter/mail"
	"github.com/polkiloo/scentshop/internal/adapter/razorpay"
	"github.com/shopspring/decimal"
)

// SenderStub records delivered messages.
type SenderStub struct {
	SendFn func(context.Context, mail.Message) error

	mu   sync.Mutex
	Sent []mail.Message
}

// Send records the message or delegates to the override.
func (s *SenderStub) Send(ctx context.Context, msg mail.Message) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, msg)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, msg)
	return nil
}

// NotifierStub records queued messages synchronously.
type NotifierStub struct {
	EnqueueFn func(mail.Message) bool
	Queued    []mail.Message
	Reject    bool
}

// Enqueue records the message unless configured to reject.
func (s *NotifierStub) Enqueue(msg mail.Message) bool {
	if s.EnqueueFn != nil {
		return s.EnqueueFn(msg)
	}
	if s.Reject {
		return false
	}
	s.Queued = append(s.Queued, msg)
	return true
}

// GatewayStub simulates the payment gateway client.
type GatewayStub struct {
	CreateOrderFn func(context.Context, decimal.Decimal, string, string) (string, error)
	OrderID       string
	Err           error

	Calls []GatewayCall
}

// GatewayCall records a CreateOrder invocation.
type GatewayCall struct {
	Amount   decimal.Decimal
	Currency string
	Receipt  string
}

// CreateOrder records the call and returns the configured id.
func (s *GatewayStub) CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (string, error) {
	s.Calls = append(s.Calls, GatewayCall{Amount: amount, Currency: currency, Receipt: receipt})
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, amount, currency, receipt)
	}
	if s.Err != nil {
		return "", s.Err
	}
	if s.OrderID != "" {
		return s.OrderID, nil
	}
	return "order_stub", nil
}

// VerifierStub simulates gateway signature verification.
type VerifierStub struct {
	VerifyFn func(string, string, string) bool
	Valid    bool
}

// Verify delegates to the override or returns the configured result.
func (s VerifierStub) Verify(orderID, paymentID, signature string) bool {
	if s.VerifyFn != nil {
		return s.VerifyFn(orderID, paymentID, signature)
	}
	return s.Valid
}

var _ razorpay.Client = (*GatewayStub)(nil)
var _ razorpay.SignatureVerifier = VerifierStub{}
