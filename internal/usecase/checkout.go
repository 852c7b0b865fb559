package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/scentshop/internal/domain/errors"
	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
)

// CheckoutUseCase converts a cart into a pending order.
type CheckoutUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(carts repository.CartRepository, products repository.ProductRepository, orders repository.OrderRepository) *CheckoutUseCase {
	return &CheckoutUseCase{carts: carts, products: products, orders: orders}
}

// PlaceOrder snapshots the cart into a pending order with current catalog
// prices. The stock check here is advisory only; the binding debit happens at
// payment confirmation. The cart stays intact until payment succeeds.
func (u *CheckoutUseCase) PlaceOrder(ctx context.Context, userID int64, addr model.Address) (*model.Order, error) {
	if strings.TrimSpace(addr.City) == "" || strings.TrimSpace(addr.PostalCode) == "" {
		return nil, domainErrors.ErrValidation
	}

	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrEmptyCart
		}
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domainErrors.ErrEmptyCart
	}

	ids := make([]int64, 0, len(cart.Items))
	for id := range cart.Items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var (
		items []model.OrderItem
		total = decimal.Zero
	)
	for _, id := range ids {
		product, err := u.products.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return nil, domainErrors.ErrValidation
			}
			return nil, err
		}
		qty := cart.Items[id]
		if product.Stock < qty {
			return nil, &domainErrors.OutOfStockError{Product: product.Name}
		}
		items = append(items, model.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    qty,
			Price:       product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(qty))))
	}

	return u.orders.Create(ctx, userID, items, total, addr)
}
