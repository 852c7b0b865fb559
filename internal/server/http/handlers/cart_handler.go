package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/scentshop/internal/server/http/dto"
)

// CartHandler manages cart endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// View handles GET /api/cart.
func (h *CartHandler) View(c *gin.Context) {
	lines, total, err := h.facade.Cart(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.CartLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, dto.CartLineResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal,
		})
	}
	c.JSON(http.StatusOK, dto.CartResponse{Items: items, Total: total})
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	if err := h.facade.AddCartItem(c.Request.Context(), CurrentUserID(c), req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateItem handles PUT /api/cart/items/:productID.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		return
	}
	var req dto.CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	if err := h.facade.UpdateCartItem(c.Request.Context(), CurrentUserID(c), productID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/cart/items/:productID.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		return
	}
	if err := h.facade.RemoveCartItem(c.Request.Context(), CurrentUserID(c), productID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearCart(c.Request.Context(), CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
