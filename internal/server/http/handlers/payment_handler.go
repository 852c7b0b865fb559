package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/scentshop/internal/domain/errors"
	"github.com/polkiloo/scentshop/internal/server/http/dto"
)

// PaymentHandler manages payment gateway endpoints.
type PaymentHandler struct {
	facade PaymentFacade
	logger *slog.Logger
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{facade: facade, logger: logger}
}

// Create handles POST /api/orders/:id/payment.
func (h *PaymentHandler) Create(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.facade.CreatePaymentOrder(c.Request.Context(), CurrentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PaymentOrderResponse{
		OrderID:         order.ID,
		RazorpayOrderID: order.RazorpayOrderID,
		Amount:          order.TotalAmount,
		Currency:        "INR",
	})
}

// Verify handles POST /api/payments/verify.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	order, err := h.facade.VerifyPayment(c.Request.Context(), CurrentUserID(c),
		req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		if errors.Is(err, domainErrors.ErrPaymentVerification) {
			h.logger.Warn("payment signature rejected",
				slog.String("razorpay_order_id", req.RazorpayOrderID),
				slog.String("client_ip", c.ClientIP()),
			)
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}
