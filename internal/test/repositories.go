package test

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/scentshop/internal/domain/errors"
	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string, role model.UserRole, verifyToken string, verifyExpires time.Time) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	expires := verifyExpires
	user := &model.User{
		ID:            s.Next,
		Name:          name,
		Email:         email,
		PasswordHash:  passwordHash,
		Role:          role,
		VerifyToken:   verifyToken,
		VerifyExpires: &expires,
	}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// VerifyByToken marks a user with the matching unexpired token verified.
func (s *UserRepositoryStub) VerifyByToken(ctx context.Context, token string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, user := range s.ByID {
		if user.VerifyToken == token && user.VerifyExpires != nil && user.VerifyExpires.After(time.Now()) {
			user.IsVerified = true
			user.VerifyToken = ""
			user.VerifyExpires = nil
			return user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// SetResetToken stores the reset token for a known user.
func (s *UserRepositoryStub) SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	exp := expires
	user.ResetToken = token
	user.ResetExpires = &exp
	return nil
}

// ResetPassword swaps the hash for the matching unexpired reset token.
func (s *UserRepositoryStub) ResetPassword(ctx context.Context, token, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, user := range s.ByID {
		if user.ResetToken == token && user.ResetExpires != nil && user.ResetExpires.After(time.Now()) {
			user.PasswordHash = passwordHash
			user.ResetToken = ""
			user.ResetExpires = nil
			return user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	Next     int64
	Err      error

	ListFn func(context.Context, repository.ProductFilter, int, int) ([]model.Product, int, error)
}

// NewProductRepositoryStub constructs stub repository with initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
}

// Add seeds a product and returns it.
func (s *ProductRepositoryStub) Add(p model.Product) *model.Product {
	if p.ID == 0 {
		p.ID = s.Next
		s.Next++
	} else if p.ID >= s.Next {
		s.Next = p.ID + 1
	}
	stored := p
	s.Products[stored.ID] = &stored
	return &stored
}

// Create stores a new product.
func (s *ProductRepositoryStub) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Add(*p), nil
}

// Update replaces an existing product.
func (s *ProductRepositoryStub) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Products[p.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *p
	s.Products[p.ID] = &stored
	return &stored, nil
}

// Delete removes a product.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

// GetByID fetches a product or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List filters the stored products.
func (s *ProductRepositoryStub) List(ctx context.Context, filter repository.ProductFilter, page, pageSize int) ([]model.Product, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter, page, pageSize)
	}
	if s.Err != nil {
		return nil, 0, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		if filter.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		result = append(result, *p)
	}
	return result, len(result), nil
}

// CategoryRepositoryStub stores categories in-memory for tests.
type CategoryRepositoryStub struct {
	Categories map[int64]*model.Category
	Next       int64
	Err        error
}

// NewCategoryRepositoryStub constructs stub repository with initialized map.
func NewCategoryRepositoryStub() *CategoryRepositoryStub {
	return &CategoryRepositoryStub{Categories: make(map[int64]*model.Category), Next: 1}
}

// Create stores a category unless the name already exists.
func (s *CategoryRepositoryStub) Create(ctx context.Context, name string) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Categories {
		if c.Name == name {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	c := &model.Category{ID: s.Next, Name: name}
	s.Next++
	s.Categories[c.ID] = c
	return c, nil
}

// Delete removes a category.
func (s *CategoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Categories[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Categories, id)
	return nil
}

// List returns all stored categories.
func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Category
	for _, c := range s.Categories {
		result = append(result, *c)
	}
	return result, nil
}

// CartRepositoryStub stores carts in-memory for tests.
type CartRepositoryStub struct {
	Carts   map[int64]*model.Cart
	GetErr  error
	SaveErr error
	DelErr  error

	Deleted []int64
}

// NewCartRepositoryStub constructs stub repository with initialized map.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Carts: make(map[int64]*model.Cart)}
}

// Get fetches the user's cart or returns not found.
func (s *CartRepositoryStub) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	if cart, ok := s.Carts[userID]; ok {
		return cart, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Save stores the cart.
func (s *CartRepositoryStub) Save(ctx context.Context, cart *model.Cart) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Carts[cart.UserID] = cart
	return nil
}

// Delete drops the cart and records the call.
func (s *CartRepositoryStub) Delete(ctx context.Context, userID int64) error {
	if s.DelErr != nil {
		return s.DelErr
	}
	delete(s.Carts, userID)
	s.Deleted = append(s.Deleted, userID)
	return nil
}

// OrderRepositoryStub allows tests to customize order ledger behaviour.
type OrderRepositoryStub struct {
	CreateFn               func(context.Context, int64, []model.OrderItem, decimal.Decimal, model.Address) (*model.Order, error)
	GetByIDFn              func(context.Context, int64) (*model.Order, error)
	GetByRazorpayOrderIDFn func(context.Context, string) (*model.Order, error)
	ListByUserFn           func(context.Context, int64, int, int) ([]model.Order, error)
	ListAllFn              func(context.Context, repository.OrderFilter, int, int) ([]model.Order, int, error)
	SetRazorpayOrderIDFn   func(context.Context, int64, string) error
	UpdateStatusFn         func(context.Context, int64, model.OrderStatus, model.OrderStatus, string, *model.Shipment) error
	ConfirmPaymentFn       func(context.Context, int64, string) (*model.Order, error)

	Orders      map[int64]*model.Order
	Next        int64
	UpdateCalls []OrderStatusCall
}

// OrderStatusCall records an UpdateStatus invocation.
type OrderStatusCall struct {
	OrderID  int64
	From     model.OrderStatus
	To       model.OrderStatus
	Note     string
	Shipment *model.Shipment
}

// NewOrderRepositoryStub constructs stub repository with initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.Order), Next: 1}
}

// Add seeds an order and returns it.
func (s *OrderRepositoryStub) Add(o model.Order) *model.Order {
	if o.ID == 0 {
		o.ID = s.Next
		s.Next++
	} else if o.ID >= s.Next {
		s.Next = o.ID + 1
	}
	stored := o
	s.Orders[stored.ID] = &stored
	return &stored
}

// Create stores a new pending order.
func (s *OrderRepositoryStub) Create(ctx context.Context, userID int64, items []model.OrderItem, total decimal.Decimal, addr model.Address) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, items, total, addr)
	}
	return s.Add(model.Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		Status:          model.OrderStatusPending,
		ShippingAddress: addr,
		StatusHistory:   []model.StatusChange{{Status: model.OrderStatusPending}},
	}), nil
}

// GetByID returns a stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if o, ok := s.Orders[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByRazorpayOrderID looks an order up by its gateway order id.
func (s *OrderRepositoryStub) GetByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*model.Order, error) {
	if s.GetByRazorpayOrderIDFn != nil {
		return s.GetByRazorpayOrderIDFn(ctx, razorpayOrderID)
	}
	for _, o := range s.Orders {
		if o.RazorpayOrderID == razorpayOrderID {
			copied := *o
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns the user's stored orders.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID, page, pageSize)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, *o)
		}
	}
	return result, nil
}

// ListAll returns all stored orders.
func (s *OrderRepositoryStub) ListAll(ctx context.Context, filter repository.OrderFilter, page, pageSize int) ([]model.Order, int, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx, filter, page, pageSize)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		result = append(result, *o)
	}
	return result, len(result), nil
}

// SetRazorpayOrderID stores the gateway order id.
func (s *OrderRepositoryStub) SetRazorpayOrderID(ctx context.Context, orderID int64, razorpayOrderID string) error {
	if s.SetRazorpayOrderIDFn != nil {
		return s.SetRazorpayOrderIDFn(ctx, orderID, razorpayOrderID)
	}
	o, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	o.RazorpayOrderID = razorpayOrderID
	return nil
}

// UpdateStatus applies the transition when the stored status matches.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus, note string, shipment *model.Shipment) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, from, to, note, shipment)
	}
	o, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if o.Status != from {
		return domainErrors.ErrStatusConflict
	}
	o.Status = to
	o.StatusHistory = append(o.StatusHistory, model.StatusChange{Status: to, Note: note})
	if shipment != nil {
		o.TrackingNumber = shipment.TrackingNumber
		o.Courier = shipment.Courier
	}
	s.UpdateCalls = append(s.UpdateCalls, OrderStatusCall{OrderID: orderID, From: from, To: to, Note: note, Shipment: shipment})
	return nil
}

// ConfirmPayment marks the stored order paid.
func (s *OrderRepositoryStub) ConfirmPayment(ctx context.Context, orderID int64, paymentID string) (*model.Order, error) {
	if s.ConfirmPaymentFn != nil {
		return s.ConfirmPaymentFn(ctx, orderID, paymentID)
	}
	o, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if o.IsPaid {
		return nil, domainErrors.ErrAlreadyPaid
	}
	o.IsPaid = true
	o.Status = model.OrderStatusPaid
	o.RazorpayPaymentID = paymentID
	o.StatusHistory = append(o.StatusHistory, model.StatusChange{Status: model.OrderStatusPaid})
	copied := *o
	return &copied, nil
}
