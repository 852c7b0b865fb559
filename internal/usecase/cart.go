package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/scentshop/internal/domain/errors"
	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
)

// CartUseCase manages the per-user shopping cart.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// View hydrates the cart with current catalog data. Items whose product has
// been removed from the catalog are skipped.
func (u *CartUseCase) View(ctx context.Context, userID int64) ([]model.CartLine, decimal.Decimal, error) {
	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, decimal.Zero, nil
		}
		return nil, decimal.Zero, err
	}

	ids := make([]int64, 0, len(cart.Items))
	for id := range cart.Items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var (
		lines []model.CartLine
		total = decimal.Zero
	)
	for _, id := range ids {
		product, err := u.products.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				continue
			}
			return nil, decimal.Zero, err
		}
		qty := cart.Items[id]
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(qty)))
		lines = append(lines, model.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  qty,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}
	return lines, total, nil
}

// AddItem adds quantity of a product to the cart, creating the cart if needed.
func (u *CartUseCase) AddItem(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity <= 0 {
		return domainErrors.ErrValidation
	}
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return err
	}

	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return err
		}
		cart = model.NewCart(userID)
	}
	cart.Items[productID] += quantity
	return u.carts.Save(ctx, cart)
}

// UpdateQuantity replaces the quantity of a product already in the cart.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity <= 0 {
		return domainErrors.ErrValidation
	}

	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return err
	}
	if _, ok := cart.Items[productID]; !ok {
		return domainErrors.ErrNotFound
	}
	cart.Items[productID] = quantity
	return u.carts.Save(ctx, cart)
}

// RemoveItem drops a product from the cart. An emptied cart is deleted.
func (u *CartUseCase) RemoveItem(ctx context.Context, userID, productID int64) error {
	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return err
	}
	if _, ok := cart.Items[productID]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(cart.Items, productID)
	if cart.IsEmpty() {
		return u.carts.Delete(ctx, userID)
	}
	return u.carts.Save(ctx, cart)
}

// Clear drops the whole cart.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Delete(ctx, userID)
}
