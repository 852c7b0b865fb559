package repository

import (
	"context"

	"github.com/polkiloo/scentshop/internal/domain/model"
)

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	CategoryID *int64
	Search     string
}

// ProductRepository describes persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	Update(ctx context.Context, p *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter, page, pageSize int) ([]model.Product, int, error)
}
