package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/scentshop/internal/config"
	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
	testhelpers "github.com/polkiloo/scentshop/internal/test"
	"github.com/polkiloo/scentshop/internal/usecase"
)

type facadeFixtures struct {
	users    *testhelpers.UserRepositoryStub
	products *testhelpers.ProductRepositoryStub
	carts    *testhelpers.CartRepositoryStub
	orders   *testhelpers.OrderRepositoryStub
	notifier *testhelpers.NotifierStub
	gateway  *testhelpers.GatewayStub
}

func newFacade() (*ShopFacade, *facadeFixtures) {
	f := &facadeFixtures{
		users:    testhelpers.NewUserRepositoryStub(),
		products: testhelpers.NewProductRepositoryStub(),
		carts:    testhelpers.NewCartRepositoryStub(),
		orders:   testhelpers.NewOrderRepositoryStub(),
		notifier: &testhelpers.NotifierStub{},
		gateway:  &testhelpers.GatewayStub{},
	}
	categories := testhelpers.NewCategoryRepositoryStub()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{PublicBaseURL: "http://shop.local"}

	authUC := usecase.NewAuthUseCase(f.users, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, f.notifier, cfg)
	catalogUC := usecase.NewCatalogUseCase(f.products, categories)
	cartUC := usecase.NewCartUseCase(f.carts, f.products)
	checkoutUC := usecase.NewCheckoutUseCase(f.carts, f.products, f.orders)
	paymentUC := usecase.NewPaymentUseCase(f.orders, f.users, f.carts, f.gateway, testhelpers.VerifierStub{Valid: true}, f.notifier, logger)
	orderUC := usecase.NewOrderUseCase(f.orders)

	return NewShopFacade(authUC, catalogUC, cartUC, checkoutUC, paymentUC, orderUC), f
}

func TestShopFacadeAuth(t *testing.T) {
	facade, f := newFacade()

	user, err := facade.Register(context.Background(), "Asha", "asha@example.com", "secret")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if len(f.notifier.Queued) != 1 {
		t.Fatalf("expected verification email, got %d queued", len(f.notifier.Queued))
	}

	if _, err := facade.VerifyEmail(context.Background(), user.VerifyToken); err != nil {
		t.Fatalf("verify returned error: %v", err)
	}

	logged, token, err := facade.Login(context.Background(), "asha@example.com", "secret")
	if err != nil || token == "" || logged.ID != user.ID {
		t.Fatalf("unexpected login result: user=%+v token=%q err=%v", logged, token, err)
	}

	id, role, err := facade.ParseToken("anything")
	if err != nil || id != 1 || role != model.RoleCustomer {
		t.Fatalf("unexpected parse result: id=%d role=%q err=%v", id, role, err)
	}

	profile, err := facade.Profile(context.Background(), user.ID)
	if err != nil || profile.Email != "asha@example.com" {
		t.Fatalf("unexpected profile: %+v err=%v", profile, err)
	}

	if err := facade.ForgotPassword(context.Background(), "asha@example.com"); err != nil {
		t.Fatalf("forgot password returned error: %v", err)
	}
	stored := f.users.ByID[user.ID]
	if err := facade.ResetPassword(context.Background(), stored.ResetToken, "newpass"); err != nil {
		t.Fatalf("reset password returned error: %v", err)
	}
}

func TestShopFacadeCatalog(t *testing.T) {
	facade, _ := newFacade()

	created, err := facade.CreateProduct(context.Background(), &model.Product{Name: "Oud Royale", Price: decimal.NewFromInt(1499), Stock: 10})
	if err != nil {
		t.Fatalf("create product returned error: %v", err)
	}

	created.Stock = 7
	if _, err := facade.UpdateProduct(context.Background(), created); err != nil {
		t.Fatalf("update product returned error: %v", err)
	}

	got, err := facade.Product(context.Background(), created.ID)
	if err != nil || got.Stock != 7 {
		t.Fatalf("unexpected product: %+v err=%v", got, err)
	}

	list, total, err := facade.Products(context.Background(), repository.ProductFilter{}, 1, 20)
	if err != nil || total != 1 || len(list) != 1 {
		t.Fatalf("unexpected listing: %v total=%d err=%v", list, total, err)
	}

	category, err := facade.CreateCategory(context.Background(), "Woody")
	if err != nil {
		t.Fatalf("create category returned error: %v", err)
	}
	categories, err := facade.Categories(context.Background())
	if err != nil || len(categories) != 1 {
		t.Fatalf("unexpected categories: %v err=%v", categories, err)
	}
	if err := facade.DeleteCategory(context.Background(), category.ID); err != nil {
		t.Fatalf("delete category returned error: %v", err)
	}
	if err := facade.DeleteProduct(context.Background(), created.ID); err != nil {
		t.Fatalf("delete product returned error: %v", err)
	}
}

func TestShopFacadeCartToPayment(t *testing.T) {
	facade, f := newFacade()
	product := f.products.Add(model.Product{Name: "Oud Royale", Price: decimal.NewFromInt(1499), Stock: 10})

	if err := facade.AddCartItem(context.Background(), 7, product.ID, 2); err != nil {
		t.Fatalf("add cart item returned error: %v", err)
	}
	if err := facade.UpdateCartItem(context.Background(), 7, product.ID, 3); err != nil {
		t.Fatalf("update cart item returned error: %v", err)
	}
	lines, total, err := facade.Cart(context.Background(), 7)
	if err != nil || len(lines) != 1 || !total.Equal(decimal.NewFromInt(1499*3)) {
		t.Fatalf("unexpected cart: %v total=%s err=%v", lines, total, err)
	}

	order, err := facade.Checkout(context.Background(), 7, model.Address{FullName: "Asha", City: "Pune", PostalCode: "411001"})
	if err != nil {
		t.Fatalf("checkout returned error: %v", err)
	}

	f.gateway.OrderID = "rzp_abc"
	withGateway, err := facade.CreatePaymentOrder(context.Background(), 7, order.ID)
	if err != nil || withGateway.RazorpayOrderID != "rzp_abc" {
		t.Fatalf("unexpected payment order: %+v err=%v", withGateway, err)
	}

	paid, err := facade.VerifyPayment(context.Background(), 7, "rzp_abc", "pay_1", "sig")
	if err != nil || !paid.IsPaid {
		t.Fatalf("unexpected verify result: %+v err=%v", paid, err)
	}

	mine, err := facade.MyOrders(context.Background(), 7, 1, 20)
	if err != nil || len(mine) != 1 {
		t.Fatalf("unexpected my orders: %v err=%v", mine, err)
	}
	got, err := facade.MyOrder(context.Background(), 7, order.ID)
	if err != nil || got.ID != order.ID {
		t.Fatalf("unexpected my order: %+v err=%v", got, err)
	}
}

func TestShopFacadeOrderAdmin(t *testing.T) {
	facade, f := newFacade()
	seeded := f.orders.Add(model.Order{UserID: 7, Status: model.OrderStatusPaid, IsPaid: true})

	all, total, err := facade.AllOrders(context.Background(), repository.OrderFilter{}, 1, 20)
	if err != nil || total != 1 || len(all) != 1 {
		t.Fatalf("unexpected admin listing: %v total=%d err=%v", all, total, err)
	}

	shipped, err := facade.UpdateOrderStatus(context.Background(), seeded.ID, model.OrderStatusShipped, "handed over", &model.Shipment{TrackingNumber: "TRK1", Courier: "BlueDart"})
	if err != nil || shipped.Status != model.OrderStatusShipped {
		t.Fatalf("unexpected shipped order: %+v err=%v", shipped, err)
	}

	pending := f.orders.Add(model.Order{UserID: 7, Status: model.OrderStatusPending})
	cancelled, err := facade.CancelOrder(context.Background(), 7, pending.ID)
	if err != nil || cancelled.Status != model.OrderStatusCancelled {
		t.Fatalf("unexpected cancel result: %+v err=%v", cancelled, err)
	}

	if err := facade.ClearCart(context.Background(), 7); err != nil {
		t.Fatalf("clear cart returned error: %v", err)
	}
	if err := facade.RemoveCartItem(context.Background(), 7, 1); err == nil {
		t.Fatal("expected error removing from missing cart")
	}
}
