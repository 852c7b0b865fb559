package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/scentshop/internal/domain/errors"
	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
)

// CatalogUseCase manages products and categories.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

func validateProduct(p *model.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return domainErrors.ErrValidation
	}
	if p.Price.IsNegative() || p.Stock < 0 {
		return domainErrors.ErrValidation
	}
	return nil
}

// CreateProduct adds a product to the catalog.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, p)
}

// UpdateProduct replaces a product's catalog data.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	return u.products.Update(ctx, p)
}

// DeleteProduct removes a product. Existing order items keep their snapshots.
func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}

// GetProduct fetches a product by id.
func (u *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// ListProducts returns a catalog page plus the unfiltered total.
func (u *CatalogUseCase) ListProducts(ctx context.Context, filter repository.ProductFilter, page, pageSize int) ([]model.Product, int, error) {
	page, pageSize = clampPage(page, pageSize)
	return u.products.List(ctx, filter, page, pageSize)
}

// CreateCategory adds a category.
func (u *CatalogUseCase) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrValidation
	}
	return u.categories.Create(ctx, name)
}

// DeleteCategory removes a category; its products keep a null category.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return u.categories.Delete(ctx, id)
}

// ListCategories returns all categories sorted by name.
func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

func clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize <= 0:
		pageSize = 20
	case pageSize > 100:
		pageSize = 100
	}
	return page, pageSize
}
