package dto

import "github.com/shopspring/decimal"

// PaymentOrderResponse carries the gateway order handle the client pays
// against.
type PaymentOrderResponse struct {
	OrderID         int64           `json:"order_id"`
	RazorpayOrderID string          `json:"razorpay_order_id"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
}

// VerifyPaymentRequest is the signed callback payload posted by the client
// after a gateway checkout.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}
