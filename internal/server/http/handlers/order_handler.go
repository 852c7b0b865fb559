package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
	"github.com/polkiloo/scentshop/internal/server/http/dto"
)

// OrderHandler manages checkout and order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/orders.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	order, err := h.facade.Checkout(c.Request.Context(), CurrentUserID(c), addressFromPayload(req.Address))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	orders, err := h.facade.MyOrders(c.Request.Context(), CurrentUserID(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.facade.MyOrder(c.Request.Context(), CurrentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.facade.CancelOrder(c.Request.Context(), CurrentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// ListAll handles GET /api/admin/orders.
func (h *OrderHandler) ListAll(c *gin.Context) {
	var filter repository.OrderFilter
	if raw := c.Query("status"); raw != "" {
		status := model.OrderStatus(raw)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid status"})
			return
		}
		filter.Status = &status
	}
	filter.Search = c.Query("search")

	page, pageSize := pageParams(c)
	orders, total, err := h.facade.AllOrders(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, dto.OrderListResponse{Items: items, Total: total, Page: page, PageSize: pageSize})
}

// UpdateStatus handles PATCH /api/admin/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	var shipment *model.Shipment
	if req.TrackingNumber != "" || req.Courier != "" {
		shipment = &model.Shipment{TrackingNumber: req.TrackingNumber, Courier: req.Courier}
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status), req.Note, shipment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func addressFromPayload(p dto.AddressPayload) model.Address {
	return model.Address{
		FullName:   p.FullName,
		Phone:      p.Phone,
		Street:     p.Street,
		City:       p.City,
		State:      p.State,
		PostalCode: p.PostalCode,
		Country:    p.Country,
	}
}

func toAddressPayload(a model.Address) dto.AddressPayload {
	return dto.AddressPayload{
		FullName:   a.FullName,
		Phone:      a.Phone,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal(),
		})
	}

	history := make([]dto.StatusChangeResponse, 0, len(order.StatusHistory))
	for _, change := range order.StatusHistory {
		history = append(history, dto.StatusChangeResponse{
			Status:    string(change.Status),
			Note:      change.Note,
			ChangedAt: change.ChangedAt,
		})
	}

	return dto.OrderResponse{
		ID:              order.ID,
		Status:          string(order.Status),
		TotalAmount:     order.TotalAmount,
		Items:           items,
		StatusHistory:   history,
		ShippingAddress: toAddressPayload(order.ShippingAddress),
		IsPaid:          order.IsPaid,
		PaidAt:          order.PaidAt,
		TrackingNumber:  order.TrackingNumber,
		Courier:         order.Courier,
		CreatedAt:       order.CreatedAt,
	}
}
