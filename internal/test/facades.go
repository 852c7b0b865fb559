package test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
)

// AuthFacadeStub provides controllable behaviour for account endpoints.
type AuthFacadeStub struct {
	RegisterFn       func(context.Context, string, string, string) (*model.User, error)
	LoginFn          func(context.Context, string, string) (*model.User, string, error)
	VerifyEmailFn    func(context.Context, string) (*model.User, error)
	ForgotPasswordFn func(context.Context, string) error
	ResetPasswordFn  func(context.Context, string, string) error
	ParseTokenFn     func(string) (int64, model.UserRole, error)
	ProfileFn        func(context.Context, int64) (*model.User, error)
}

// Register delegates to the override or returns a default customer.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.User{ID: 1, Name: name, Email: email, Role: model.RoleCustomer}, nil
}

// Login delegates to the override or returns a verified customer with a token.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCustomer, IsVerified: true}, "token", nil
}

// VerifyEmail delegates to the override or returns a verified user.
func (s AuthFacadeStub) VerifyEmail(ctx context.Context, token string) (*model.User, error) {
	if s.VerifyEmailFn != nil {
		return s.VerifyEmailFn(ctx, token)
	}
	return &model.User{ID: 1, IsVerified: true}, nil
}

// ForgotPassword delegates to the override or succeeds silently.
func (s AuthFacadeStub) ForgotPassword(ctx context.Context, email string) error {
	if s.ForgotPasswordFn != nil {
		return s.ForgotPasswordFn(ctx, email)
	}
	return nil
}

// ResetPassword delegates to the override or succeeds.
func (s AuthFacadeStub) ResetPassword(ctx context.Context, token, password string) error {
	if s.ResetPasswordFn != nil {
		return s.ResetPasswordFn(ctx, token, password)
	}
	return nil
}

// ParseToken delegates to the override or returns a fixed customer identity.
func (s AuthFacadeStub) ParseToken(token string) (int64, model.UserRole, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, model.RoleCustomer, nil
}

// Profile delegates to the override or returns a default user.
func (s AuthFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Name: "Stub", Email: "stub@example.com", Role: model.RoleCustomer}, nil
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	CreateProductFn  func(context.Context, *model.Product) (*model.Product, error)
	UpdateProductFn  func(context.Context, *model.Product) (*model.Product, error)
	DeleteProductFn  func(context.Context, int64) error
	ProductFn        func(context.Context, int64) (*model.Product, error)
	ProductsFn       func(context.Context, repository.ProductFilter, int, int) ([]model.Product, int, error)
	CreateCategoryFn func(context.Context, string) (*model.Category, error)
	DeleteCategoryFn func(context.Context, int64) error
	CategoriesFn     func(context.Context) ([]model.Category, error)
}

func (s CatalogFacadeStub) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, p)
	}
	created := *p
	created.ID = 1
	return &created, nil
}

func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, p)
	}
	return p, nil
}

func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Stub", Price: decimal.NewFromInt(100)}, nil
}

func (s CatalogFacadeStub) Products(ctx context.Context, filter repository.ProductFilter, page, pageSize int) ([]model.Product, int, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter, page, pageSize)
	}
	return []model.Product{{ID: 1, Name: "Stub", Price: decimal.NewFromInt(100)}}, 1, nil
}

func (s CatalogFacadeStub) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, name)
	}
	return &model.Category{ID: 1, Name: name}, nil
}

func (s CatalogFacadeStub) DeleteCategory(ctx context.Context, id int64) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: 1, Name: "Woody"}}, nil
}

// CartFacadeStub provides controllable behaviour for cart endpoints.
type CartFacadeStub struct {
	CartFn           func(context.Context, int64) ([]model.CartLine, decimal.Decimal, error)
	AddCartItemFn    func(context.Context, int64, int64, int) error
	UpdateCartItemFn func(context.Context, int64, int64, int) error
	RemoveCartItemFn func(context.Context, int64, int64) error
	ClearCartFn      func(context.Context, int64) error
}

func (s CartFacadeStub) Cart(ctx context.Context, userID int64) ([]model.CartLine, decimal.Decimal, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return nil, decimal.Zero, nil
}

func (s CartFacadeStub) AddCartItem(ctx context.Context, userID, productID int64, quantity int) error {
	if s.AddCartItemFn != nil {
		return s.AddCartItemFn(ctx, userID, productID, quantity)
	}
	return nil
}

func (s CartFacadeStub) UpdateCartItem(ctx context.Context, userID, productID int64, quantity int) error {
	if s.UpdateCartItemFn != nil {
		return s.UpdateCartItemFn(ctx, userID, productID, quantity)
	}
	return nil
}

func (s CartFacadeStub) RemoveCartItem(ctx context.Context, userID, productID int64) error {
	if s.RemoveCartItemFn != nil {
		return s.RemoveCartItemFn(ctx, userID, productID)
	}
	return nil
}

func (s CartFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearCartFn != nil {
		return s.ClearCartFn(ctx, userID)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CheckoutFn          func(context.Context, int64, model.Address) (*model.Order, error)
	MyOrdersFn          func(context.Context, int64, int, int) ([]model.Order, error)
	MyOrderFn           func(context.Context, int64, int64) (*model.Order, error)
	CancelOrderFn       func(context.Context, int64, int64) (*model.Order, error)
	AllOrdersFn         func(context.Context, repository.OrderFilter, int, int) ([]model.Order, int, error)
	UpdateOrderStatusFn func(context.Context, int64, model.OrderStatus, string, *model.Shipment) (*model.Order, error)
}

func (s OrderFacadeStub) Checkout(ctx context.Context, userID int64, addr model.Address) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, addr)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPending, ShippingAddress: addr}, nil
}

func (s OrderFacadeStub) MyOrders(ctx context.Context, userID int64, page, pageSize int) ([]model.Order, error) {
	if s.MyOrdersFn != nil {
		return s.MyOrdersFn(ctx, userID, page, pageSize)
	}
	return []model.Order{{ID: 1, UserID: userID, Status: model.OrderStatusPending}}, nil
}

func (s OrderFacadeStub) MyOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.MyOrderFn != nil {
		return s.MyOrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusCancelled}, nil
}

func (s OrderFacadeStub) AllOrders(ctx context.Context, filter repository.OrderFilter, page, pageSize int) ([]model.Order, int, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx, filter, page, pageSize)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusPending}}, 1, nil
}

func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, to model.OrderStatus, note string, shipment *model.Shipment) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, orderID, to, note, shipment)
	}
	return &model.Order{ID: orderID, Status: to}, nil
}

// PaymentFacadeStub provides controllable behaviour for payment endpoints.
type PaymentFacadeStub struct {
	CreatePaymentOrderFn func(context.Context, int64, int64) (*model.Order, error)
	VerifyPaymentFn      func(context.Context, int64, string, string, string) (*model.Order, error)
}

func (s PaymentFacadeStub) CreatePaymentOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.CreatePaymentOrderFn != nil {
		return s.CreatePaymentOrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, UserID: userID, RazorpayOrderID: "rzp_stub", TotalAmount: decimal.NewFromInt(100)}, nil
}

func (s PaymentFacadeStub) VerifyPayment(ctx context.Context, userID int64, gatewayOrderID, paymentID, signature string) (*model.Order, error) {
	if s.VerifyPaymentFn != nil {
		return s.VerifyPaymentFn(ctx, userID, gatewayOrderID, paymentID, signature)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPaid, IsPaid: true, RazorpayPaymentID: paymentID}, nil
}

// ShopFacadeStub aggregates the per-area stubs for router level tests.
type ShopFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	OrderFacadeStub
	PaymentFacadeStub
}
