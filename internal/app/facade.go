package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
	"github.com/polkiloo/scentshop/internal/usecase"
)

// ShopFacade aggregates the use cases behind a single surface consumed by the
// HTTP layer.
type ShopFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	cart     *usecase.CartUseCase
	checkout *usecase.CheckoutUseCase
	payment  *usecase.PaymentUseCase
	orders   *usecase.OrderUseCase
}

func NewShopFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	checkout *usecase.CheckoutUseCase,
	payment *usecase.PaymentUseCase,
	orders *usecase.OrderUseCase,
) *ShopFacade {
	return &ShopFacade{
		auth:     auth,
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		payment:  payment,
		orders:   orders,
	}
}

func (f *ShopFacade) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *ShopFacade) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *ShopFacade) VerifyEmail(ctx context.Context, token string) (*model.User, error) {
	return f.auth.VerifyEmail(ctx, token)
}

func (f *ShopFacade) ForgotPassword(ctx context.Context, email string) error {
	return f.auth.RequestPasswordReset(ctx, email)
}

func (f *ShopFacade) ResetPassword(ctx context.Context, token, password string) error {
	return f.auth.ResetPassword(ctx, token, password)
}

func (f *ShopFacade) ParseToken(token string) (int64, model.UserRole, error) {
	return f.auth.ParseToken(token)
}

func (f *ShopFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *ShopFacade) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, p)
}

func (f *ShopFacade) UpdateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	return f.catalog.UpdateProduct(ctx, p)
}

func (f *ShopFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.DeleteProduct(ctx, id)
}

func (f *ShopFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.GetProduct(ctx, id)
}

func (f *ShopFacade) Products(ctx context.Context, filter repository.ProductFilter, page, pageSize int) ([]model.Product, int, error) {
	return f.catalog.ListProducts(ctx, filter, page, pageSize)
}

func (f *ShopFacade) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	return f.catalog.CreateCategory(ctx, name)
}

func (f *ShopFacade) DeleteCategory(ctx context.Context, id int64) error {
	return f.catalog.DeleteCategory(ctx, id)
}

func (f *ShopFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.ListCategories(ctx)
}

func (f *ShopFacade) Cart(ctx context.Context, userID int64) ([]model.CartLine, decimal.Decimal, error) {
	return f.cart.View(ctx, userID)
}

func (f *ShopFacade) AddCartItem(ctx context.Context, userID, productID int64, quantity int) error {
	return f.cart.AddItem(ctx, userID, productID, quantity)
}

func (f *ShopFacade) UpdateCartItem(ctx context.Context, userID, productID int64, quantity int) error {
	return f.cart.UpdateQuantity(ctx, userID, productID, quantity)
}

func (f *ShopFacade) RemoveCartItem(ctx context.Context, userID, productID int64) error {
	return f.cart.RemoveItem(ctx, userID, productID)
}

func (f *ShopFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.cart.Clear(ctx, userID)
}

func (f *ShopFacade) Checkout(ctx context.Context, userID int64, addr model.Address) (*model.Order, error) {
	return f.checkout.PlaceOrder(ctx, userID, addr)
}

func (f *ShopFacade) MyOrders(ctx context.Context, userID int64, page, pageSize int) ([]model.Order, error) {
	return f.orders.ListMine(ctx, userID, page, pageSize)
}

func (f *ShopFacade) MyOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.orders.GetForUser(ctx, userID, orderID)
}

func (f *ShopFacade) CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.orders.Cancel(ctx, userID, orderID)
}

func (f *ShopFacade) AllOrders(ctx context.Context, filter repository.OrderFilter, page, pageSize int) ([]model.Order, int, error) {
	return f.orders.ListAll(ctx, filter, page, pageSize)
}

func (f *ShopFacade) UpdateOrderStatus(ctx context.Context, orderID int64, to model.OrderStatus, note string, shipment *model.Shipment) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, orderID, to, note, shipment)
}

func (f *ShopFacade) CreatePaymentOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.payment.CreateGatewayOrder(ctx, userID, orderID)
}

func (f *ShopFacade) VerifyPayment(ctx context.Context, userID int64, gatewayOrderID, paymentID, signature string) (*model.Order, error) {
	return f.payment.VerifyPayment(ctx, userID, gatewayOrderID, paymentID, signature)
}
