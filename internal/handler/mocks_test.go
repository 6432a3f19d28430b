package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"stitchkart/internal/auth"
	"stitchkart/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCheckoutService is a mock implementation of service.CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, customerID uuid.UUID, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	args := m.Called(ctx, customerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CheckoutResponse), args.Error(1)
}

// MockCartService is a mock implementation of service.CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, customerID uuid.UUID) (*model.CartView, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartView), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, customerID uuid.UUID, req *model.AddCartItemRequest) (*model.CartItem, error) {
	args := m.Called(ctx, customerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *MockCartService) UpdateItem(ctx context.Context, customerID, itemID uuid.UUID, quantity int) error {
	args := m.Called(ctx, customerID, itemID, quantity)
	return args.Error(0)
}

func (m *MockCartService) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) error {
	args := m.Called(ctx, customerID, itemID)
	return args.Error(0)
}

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) GetForCustomer(ctx context.Context, customerID, orderID uuid.UUID) (*model.OrderResponse, error) {
	args := m.Called(ctx, customerID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) ListAll(ctx context.Context, limit, offset int) ([]model.Order, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, req *model.UpdateOrderStatusRequest) error {
	args := m.Called(ctx, orderID, req)
	return args.Error(0)
}

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

// MockSettingService is a mock implementation of service.SettingService.
type MockSettingService struct {
	mock.Mock
}

func (m *MockSettingService) Get(ctx context.Context, key string) (*model.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Setting), args.Error(1)
}

func (m *MockSettingService) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockSettingService) Add(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockSettingService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// authedRequest builds a request carrying an authenticated identity the way
// the auth middleware would.
func authedRequest(req *http.Request, id uuid.UUID, realm auth.Realm) *http.Request {
	ctx := auth.WithIdentity(req.Context(), &auth.Identity{ID: id, Realm: realm})
	return req.WithContext(ctx)
}

// serve routes the request through a chi mux so URL parameters resolve.
func serve(method, pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux := chi.NewRouter()
	mux.Method(method, pattern, h)
	mux.ServeHTTP(rec, req)
	return rec
}
