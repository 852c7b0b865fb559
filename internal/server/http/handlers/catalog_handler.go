package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
	"github.com/polkiloo/scentshop/internal/server/http/dto"
)

// CatalogHandler manages product and category endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// ListProducts handles GET /api/products.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var filter repository.ProductFilter
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid category_id"})
			return
		}
		filter.CategoryID = &id
	}
	filter.Search = c.Query("search")

	page, pageSize := pageParams(c)
	products, total, err := h.facade.Products(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(&p))
	}
	c.JSON(http.StatusOK, dto.ProductListResponse{Items: items, Total: total, Page: page, PageSize: pageSize})
}

// GetProduct handles GET /api/products/:id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(product))
}

// CreateProduct handles POST /api/admin/products.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), productFromRequest(0, req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(product))
}

// UpdateProduct handles PUT /api/admin/products/:id.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), productFromRequest(id, req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(product))
}

// DeleteProduct handles DELETE /api/admin/products/:id.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, dto.CategoryResponse{ID: cat.ID, Name: cat.Name})
	}
	c.JSON(http.StatusOK, resp)
}

// CreateCategory handles POST /api/admin/categories.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	category, err := h.facade.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CategoryResponse{ID: category.ID, Name: category.Name})
}

// DeleteCategory handles DELETE /api/admin/categories/:id.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func productFromRequest(id int64, req dto.ProductRequest) *model.Product {
	return &model.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		Images:      req.Images,
		Featured:    req.Featured,
	}
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		Images:      p.Images,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
	}
}
