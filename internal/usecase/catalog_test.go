package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/scentshop/internal/domain/errors"
	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
	"github.com/polkiloo/scentshop/internal/test"
)

func TestCatalogProductCRUD(t *testing.T) {
	products := test.NewProductRepositoryStub()
	uc := NewCatalogUseCase(products, test.NewCategoryRepositoryStub())

	created, err := uc.CreateProduct(context.Background(), &model.Product{
		Name: "Oud Royale", Price: decimal.NewFromInt(1499), Stock: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	created.Stock = 5
	if _, err := uc.UpdateProduct(context.Background(), created); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := uc.GetProduct(context.Background(), created.ID)
	if err != nil || got.Stock != 5 {
		t.Fatalf("unexpected product: %+v err=%v", got, err)
	}

	if err := uc.DeleteProduct(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.GetProduct(context.Background(), created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestCatalogProductValidation(t *testing.T) {
	uc := NewCatalogUseCase(test.NewProductRepositoryStub(), test.NewCategoryRepositoryStub())

	cases := []struct {
		name    string
		product model.Product
	}{
		{name: "empty name", product: model.Product{Price: decimal.NewFromInt(1)}},
		{name: "negative price", product: model.Product{Name: "X", Price: decimal.NewFromInt(-1)}},
		{name: "negative stock", product: model.Product{Name: "X", Price: decimal.NewFromInt(1), Stock: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.product
			if _, err := uc.CreateProduct(context.Background(), &p); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, err := uc.UpdateProduct(context.Background(), &p); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCatalogListProductsClampsPaging(t *testing.T) {
	products := test.NewProductRepositoryStub()
	var gotPage, gotSize int
	products.ListFn = func(_ context.Context, _ repository.ProductFilter, page, pageSize int) ([]model.Product, int, error) {
		gotPage, gotSize = page, pageSize
		return nil, 0, nil
	}
	uc := NewCatalogUseCase(products, test.NewCategoryRepositoryStub())

	if _, _, err := uc.ListProducts(context.Background(), repository.ProductFilter{}, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPage != 1 || gotSize != 20 {
		t.Fatalf("expected defaults 1/20, got %d/%d", gotPage, gotSize)
	}

	if _, _, err := uc.ListProducts(context.Background(), repository.ProductFilter{}, 3, 500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPage != 3 || gotSize != 100 {
		t.Fatalf("expected clamp to 3/100, got %d/%d", gotPage, gotSize)
	}
}

func TestCatalogCategories(t *testing.T) {
	uc := NewCatalogUseCase(test.NewProductRepositoryStub(), test.NewCategoryRepositoryStub())

	if _, err := uc.CreateCategory(context.Background(), "  "); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	c, err := uc.CreateCategory(context.Background(), " Woody ")
	if err != nil || c.Name != "Woody" {
		t.Fatalf("unexpected category: %+v err=%v", c, err)
	}

	if _, err := uc.CreateCategory(context.Background(), "Woody"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}

	list, err := uc.ListCategories(context.Background())
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected list: %v err=%v", list, err)
	}

	if err := uc.DeleteCategory(context.Background(), c.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.DeleteCategory(context.Background(), c.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
