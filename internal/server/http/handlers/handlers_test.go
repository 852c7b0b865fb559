package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/scentshop/internal/domain/errors"
	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
	"github.com/polkiloo/scentshop/internal/server/http/dto"
	"github.com/polkiloo/scentshop/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/scentshop/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, url string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
		c.Set(middleware.UserRoleContextKey, model.RoleCustomer)
	}
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestCurrentRole(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentRole(c); got != "" {
		t.Fatalf("expected empty role when not set, got %q", got)
	}

	c.Set(middleware.UserRoleContextKey, model.RoleAdmin)
	if got := CurrentRole(c); got != model.RoleAdmin {
		t.Fatalf("expected admin, got %q", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret"})
	resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var decoded dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Email != "asha@example.com" || decoded.Verified {
		t.Fatalf("unexpected user payload: %+v", decoded)
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "validation", body: []byte(`{"email":"x"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (*model.User, error) {
			return nil, domainErrors.ErrValidation
		}}, status: http.StatusBadRequest},
		{name: "already exists", body: []byte(`{"name":"A","email":"a@b.c","password":"pw"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (*model.User, error) {
			return nil, domainErrors.ErrAlreadyExists
		}}, status: http.StatusConflict},
		{name: "internal", body: []byte(`{"name":"A","email":"a@b.c","password":"pw"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (*model.User, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(tt.facade).Register, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "asha@example.com", Password: "secret"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") != "Bearer token" {
		t.Fatalf("expected auth header, got %q", resp.Header().Get("Authorization"))
	}

	result := resp.Result()
	t.Cleanup(func() { _ = result.Body.Close() })
	found := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "scentshop_token" && cookie.Value == "token" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected auth cookie named scentshop_token")
	}

	var decoded dto.AuthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Token != "token" {
		t.Fatalf("unexpected token in body: %q", decoded.Token)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "invalid", body: []byte(`{"email":"a@b.c","password":"b"}`), facade: testhelpers.AuthFacadeStub{LoginFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized},
		{name: "unverified", body: []byte(`{"email":"a@b.c","password":"b"}`), facade: testhelpers.AuthFacadeStub{LoginFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrEmailNotVerified
		}}, status: http.StatusForbidden},
		{name: "internal", body: []byte(`{"email":"a@b.c","password":"b"}`), facade: testhelpers.AuthFacadeStub{LoginFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(tt.facade).Login, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerVerify(t *testing.T) {
	var gotToken string
	facade := testhelpers.AuthFacadeStub{VerifyEmailFn: func(_ context.Context, token string) (*model.User, error) {
		gotToken = token
		return &model.User{ID: 1, IsVerified: true}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/verify", "/verify?token=abc", NewAuthHandler(facade).Verify, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotToken != "abc" {
		t.Fatalf("expected token passed through, got %q", gotToken)
	}

	facade = testhelpers.AuthFacadeStub{VerifyEmailFn: func(context.Context, string) (*model.User, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodGet, "/verify", "/verify?token=stale", NewAuthHandler(facade).Verify, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestAuthHandlerForgotPassword(t *testing.T) {
	body := []byte(`{"email":"nobody@example.com"}`)
	resp := performRequest(t, http.MethodPost, "/forgot", "/forgot", NewAuthHandler(testhelpers.AuthFacadeStub{}).ForgotPassword, nil, body, jsonHeaders)
	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d", resp.Code)
	}
}

func TestAuthHandlerResetPassword(t *testing.T) {
	body := []byte(`{"token":"abc","password":"new"}`)
	resp := performRequest(t, http.MethodPost, "/reset", "/reset", NewAuthHandler(testhelpers.AuthFacadeStub{}).ResetPassword, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	facade := testhelpers.AuthFacadeStub{ResetPasswordFn: func(context.Context, string, string) error {
		return domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodPost, "/reset", "/reset", NewAuthHandler(facade).ResetPassword, nil, body, jsonHeaders)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCatalogHandlerListProducts(t *testing.T) {
	var gotFilter repository.ProductFilter
	facade := testhelpers.CatalogFacadeStub{ProductsFn: func(_ context.Context, filter repository.ProductFilter, page, pageSize int) ([]model.Product, int, error) {
		gotFilter = filter
		return []model.Product{{ID: 1, Name: "Oud Royale", Price: decimal.NewFromInt(1499)}}, 1, nil
	}}
	resp := performRequest(t, http.MethodGet, "/products", "/products?category_id=3&search=oud", NewCatalogHandler(facade).ListProducts, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotFilter.CategoryID == nil || *gotFilter.CategoryID != 3 || gotFilter.Search != "oud" {
		t.Fatalf("unexpected filter: %+v", gotFilter)
	}

	var decoded dto.ProductListResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded.Items) != 1 || decoded.Total != 1 {
		t.Fatalf("unexpected listing: %+v", decoded)
	}

	resp = performRequest(t, http.MethodGet, "/products", "/products?category_id=abc", NewCatalogHandler(facade).ListProducts, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad category, got %d", resp.Code)
	}
}

func TestCatalogHandlerGetProduct(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/products/:id", "/products/5", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).GetProduct, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/products/:id", "/products/abc", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).GetProduct, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad id, got %d", resp.Code)
	}

	facade := testhelpers.CatalogFacadeStub{ProductFn: func(context.Context, int64) (*model.Product, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodGet, "/products/:id", "/products/404", NewCatalogHandler(facade).GetProduct, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCatalogHandlerCreateProduct(t *testing.T) {
	body, _ := json.Marshal(dto.ProductRequest{Name: "Oud Royale", Price: decimal.NewFromInt(1499), Stock: 10})
	resp := performRequest(t, http.MethodPost, "/products", "/products", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).CreateProduct, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	facade := testhelpers.CatalogFacadeStub{CreateProductFn: func(context.Context, *model.Product) (*model.Product, error) {
		return nil, domainErrors.ErrValidation
	}}
	resp = performRequest(t, http.MethodPost, "/products", "/products", NewCatalogHandler(facade).CreateProduct, nil, body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestCatalogHandlerDeleteProduct(t *testing.T) {
	resp := performRequest(t, http.MethodDelete, "/products/:id", "/products/5", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).DeleteProduct, nil, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestCatalogHandlerCategories(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/categories", "/categories", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).ListCategories, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	body := []byte(`{"name":"Woody"}`)
	resp = performRequest(t, http.MethodPost, "/categories", "/categories", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).CreateCategory, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	facade := testhelpers.CatalogFacadeStub{CreateCategoryFn: func(context.Context, string) (*model.Category, error) {
		return nil, domainErrors.ErrAlreadyExists
	}}
	resp = performRequest(t, http.MethodPost, "/categories", "/categories", NewCatalogHandler(facade).CreateCategory, nil, body, jsonHeaders)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestCartHandlerView(t *testing.T) {
	facade := testhelpers.CartFacadeStub{CartFn: func(context.Context, int64) ([]model.CartLine, decimal.Decimal, error) {
		return []model.CartLine{{ProductID: 1, Name: "Oud Royale", Price: decimal.NewFromInt(1499), Quantity: 2, Subtotal: decimal.NewFromInt(2998)}}, decimal.NewFromInt(2998), nil
	}}
	resp := performRequest(t, http.MethodGet, "/cart", "/cart", NewCartHandler(facade).View, asUser(7), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.CartResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded.Items) != 1 || !decoded.Total.Equal(decimal.NewFromInt(2998)) {
		t.Fatalf("unexpected cart: %+v", decoded)
	}
}

func TestCartHandlerAddItem(t *testing.T) {
	var gotProduct int64
	var gotQty int
	facade := testhelpers.CartFacadeStub{AddCartItemFn: func(_ context.Context, _ int64, productID int64, qty int) error {
		gotProduct, gotQty = productID, qty
		return nil
	}}
	body := []byte(`{"product_id":3,"quantity":2}`)
	resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items", NewCartHandler(facade).AddItem, asUser(7), body, jsonHeaders)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	if gotProduct != 3 || gotQty != 2 {
		t.Fatalf("unexpected call: product=%d qty=%d", gotProduct, gotQty)
	}

	facade = testhelpers.CartFacadeStub{AddCartItemFn: func(context.Context, int64, int64, int) error {
		return domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodPost, "/cart/items", "/cart/items", NewCartHandler(facade).AddItem, asUser(7), body, jsonHeaders)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown product, got %d", resp.Code)
	}
}

func TestCartHandlerUpdateAndRemove(t *testing.T) {
	body := []byte(`{"quantity":5}`)
	resp := performRequest(t, http.MethodPut, "/cart/items/:productID", "/cart/items/3", NewCartHandler(testhelpers.CartFacadeStub{}).UpdateItem, asUser(7), body, jsonHeaders)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodDelete, "/cart/items/:productID", "/cart/items/3", NewCartHandler(testhelpers.CartFacadeStub{}).RemoveItem, asUser(7), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodDelete, "/cart/items/:productID", "/cart/items/abc", NewCartHandler(testhelpers.CartFacadeStub{}).RemoveItem, asUser(7), nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad id, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodDelete, "/cart", "/cart", NewCartHandler(testhelpers.CartFacadeStub{}).Clear, asUser(7), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestOrderHandlerCheckout(t *testing.T) {
	body := []byte(`{"address":{"full_name":"Asha","city":"Pune","postal_code":"411001"}}`)
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(testhelpers.OrderFacadeStub{}).Checkout, asUser(7), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
}

func TestOrderHandlerCheckoutFailures(t *testing.T) {
	body := []byte(`{"address":{"city":"Pune","postal_code":"411001"}}`)
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "empty cart", err: domainErrors.ErrEmptyCart, status: http.StatusBadRequest},
		{name: "out of stock", err: &domainErrors.OutOfStockError{Product: "Oud Royale"}, status: http.StatusBadRequest},
		{name: "validation", err: domainErrors.ErrValidation, status: http.StatusBadRequest},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.OrderFacadeStub{CheckoutFn: func(context.Context, int64, model.Address) (*model.Order, error) {
				return nil, tt.err
			}}
			resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(facade).Checkout, asUser(7), body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerListAndGet(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/orders", "/orders", NewOrderHandler(testhelpers.OrderFacadeStub{}).List, asUser(7), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 order, got %d", len(decoded))
	}

	resp = performRequest(t, http.MethodGet, "/orders/:id", "/orders/1", NewOrderHandler(testhelpers.OrderFacadeStub{}).Get, asUser(7), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestOrderHandlerCancel(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/orders/:id/cancel", "/orders/1/cancel", NewOrderHandler(testhelpers.OrderFacadeStub{}).Cancel, asUser(7), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	facade := testhelpers.OrderFacadeStub{CancelOrderFn: func(context.Context, int64, int64) (*model.Order, error) {
		return nil, domainErrors.ErrNotCancellable
	}}
	resp = performRequest(t, http.MethodPost, "/orders/:id/cancel", "/orders/1/cancel", NewOrderHandler(facade).Cancel, asUser(7), nil, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestOrderHandlerListAll(t *testing.T) {
	var gotFilter repository.OrderFilter
	facade := testhelpers.OrderFacadeStub{AllOrdersFn: func(_ context.Context, filter repository.OrderFilter, page, pageSize int) ([]model.Order, int, error) {
		gotFilter = filter
		return []model.Order{{ID: 1, Status: model.OrderStatusPaid}}, 1, nil
	}}
	resp := performRequest(t, http.MethodGet, "/admin/orders", "/admin/orders?status=paid&search=asha", NewOrderHandler(facade).ListAll, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotFilter.Status == nil || *gotFilter.Status != model.OrderStatusPaid || gotFilter.Search != "asha" {
		t.Fatalf("unexpected filter: %+v", gotFilter)
	}

	resp = performRequest(t, http.MethodGet, "/admin/orders", "/admin/orders?status=teleported", NewOrderHandler(facade).ListAll, asUser(1), nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad status, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	var gotShipment *model.Shipment
	var gotStatus model.OrderStatus
	facade := testhelpers.OrderFacadeStub{UpdateOrderStatusFn: func(_ context.Context, _ int64, to model.OrderStatus, _ string, shipment *model.Shipment) (*model.Order, error) {
		gotStatus, gotShipment = to, shipment
		return &model.Order{ID: 1, Status: to}, nil
	}}
	body := []byte(`{"status":"shipped","tracking_number":"TRK1","courier":"BlueDart"}`)
	resp := performRequest(t, http.MethodPatch, "/admin/orders/:id/status", "/admin/orders/1/status", NewOrderHandler(facade).UpdateStatus, asUser(1), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotStatus != model.OrderStatusShipped {
		t.Fatalf("expected shipped, got %q", gotStatus)
	}
	if gotShipment == nil || gotShipment.TrackingNumber != "TRK1" || gotShipment.Courier != "BlueDart" {
		t.Fatalf("unexpected shipment: %+v", gotShipment)
	}

	facade = testhelpers.OrderFacadeStub{UpdateOrderStatusFn: func(context.Context, int64, model.OrderStatus, string, *model.Shipment) (*model.Order, error) {
		return nil, domainErrors.ErrInvalidTransition
	}}
	body = []byte(`{"status":"delivered"}`)
	resp = performRequest(t, http.MethodPatch, "/admin/orders/:id/status", "/admin/orders/1/status", NewOrderHandler(facade).UpdateStatus, asUser(1), body, jsonHeaders)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}

	facade = testhelpers.OrderFacadeStub{UpdateOrderStatusFn: func(context.Context, int64, model.OrderStatus, string, *model.Shipment) (*model.Order, error) {
		return nil, domainErrors.ErrUnpaidShipment
	}}
	body = []byte(`{"status":"shipped"}`)
	resp = performRequest(t, http.MethodPatch, "/admin/orders/:id/status", "/admin/orders/1/status", NewOrderHandler(facade).UpdateStatus, asUser(1), body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unpaid shipment, got %d", resp.Code)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestPaymentHandlerCreate(t *testing.T) {
	logger := discardLogger()
	resp := performRequest(t, http.MethodPost, "/orders/:id/payment", "/orders/1/payment", NewPaymentHandler(testhelpers.PaymentFacadeStub{}, logger).Create, asUser(7), nil, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var decoded dto.PaymentOrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.RazorpayOrderID != "rzp_stub" || decoded.Currency != "INR" {
		t.Fatalf("unexpected payment order: %+v", decoded)
	}

	facade := testhelpers.PaymentFacadeStub{CreatePaymentOrderFn: func(context.Context, int64, int64) (*model.Order, error) {
		return nil, domainErrors.ErrAlreadyPaid
	}}
	resp = performRequest(t, http.MethodPost, "/orders/:id/payment", "/orders/1/payment", NewPaymentHandler(facade, logger).Create, asUser(7), nil, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409 when already paid, got %d", resp.Code)
	}
}

func TestPaymentHandlerVerify(t *testing.T) {
	logger := discardLogger()
	body := []byte(`{"razorpay_order_id":"rzp_abc","razorpay_payment_id":"pay_1","razorpay_signature":"sig"}`)
	resp := performRequest(t, http.MethodPost, "/payments/verify", "/payments/verify", NewPaymentHandler(testhelpers.PaymentFacadeStub{}, logger).Verify, asUser(7), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !decoded.IsPaid || decoded.Status != string(model.OrderStatusPaid) {
		t.Fatalf("unexpected order: %+v", decoded)
	}

	facade := testhelpers.PaymentFacadeStub{VerifyPaymentFn: func(context.Context, int64, string, string, string) (*model.Order, error) {
		return nil, domainErrors.ErrPaymentVerification
	}}
	resp = performRequest(t, http.MethodPost, "/payments/verify", "/payments/verify", NewPaymentHandler(facade, logger).Verify, asUser(7), body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for rejected signature, got %d", resp.Code)
	}
}
