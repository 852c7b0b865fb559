package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
)

// AuthFacade describes account capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	VerifyEmail(ctx context.Context, token string) (*model.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	ParseToken(token string) (int64, model.UserRole, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

// CatalogFacade encapsulates product and category operations exposed via HTTP.
type CatalogFacade interface {
	CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, p *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	Product(ctx context.Context, id int64) (*model.Product, error)
	Products(ctx context.Context, filter repository.ProductFilter, page, pageSize int) ([]model.Product, int, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]model.Category, error)
}

// CartFacade provides cart operations.
type CartFacade interface {
	Cart(ctx context.Context, userID int64) ([]model.CartLine, decimal.Decimal, error)
	AddCartItem(ctx context.Context, userID, productID int64, quantity int) error
	UpdateCartItem(ctx context.Context, userID, productID int64, quantity int) error
	RemoveCartItem(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

// OrderFacade provides checkout and order lifecycle operations.
type OrderFacade interface {
	Checkout(ctx context.Context, userID int64, addr model.Address) (*model.Order, error)
	MyOrders(ctx context.Context, userID int64, page, pageSize int) ([]model.Order, error)
	MyOrder(ctx context.Context, userID, orderID int64) (*model.Order, error)
	CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error)
	AllOrders(ctx context.Context, filter repository.OrderFilter, page, pageSize int) ([]model.Order, int, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, to model.OrderStatus, note string, shipment *model.Shipment) (*model.Order, error)
}

// PaymentFacade provides payment gateway operations.
type PaymentFacade interface {
	CreatePaymentOrder(ctx context.Context, userID, orderID int64) (*model.Order, error)
	VerifyPayment(ctx context.Context, userID int64, gatewayOrderID, paymentID, signature string) (*model.Order, error)
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	OrderFacade
	PaymentFacade
}
