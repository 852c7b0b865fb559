package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest describes the payload for creating or updating a product.
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *int64          `json:"category_id"`
	Images      []string        `json:"images"`
	Featured    bool            `json:"featured"`
}

// ProductResponse is a catalog entry as exposed over HTTP.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	Images      []string        `json:"images,omitempty"`
	Featured    bool            `json:"featured"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductListResponse is a catalog page plus the unfiltered total.
type ProductListResponse struct {
	Items    []ProductResponse `json:"items"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// CategoryRequest describes the payload for creating a category.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse is a category as exposed over HTTP.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
