package service

import (
	"context"

	"stitchkart/internal/model"

	"github.com/google/uuid"
)

// CheckoutService converts a customer's cart into a persisted order plus an
// external payment session.
type CheckoutService interface {
	// Checkout validates the shipping address, snapshots the cart, prices
	// shipping, persists the order with its items, and creates the
	// payment session, all inside one transaction.
	Checkout(ctx context.Context, customerID uuid.UUID, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
}

// CartService defines customer cart management operations.
type CartService interface {
	// GetCart retrieves the customer's cart with product details.
	GetCart(ctx context.Context, customerID uuid.UUID) (*model.CartView, error)

	// AddItem adds a product to the cart, creating the cart on first use.
	AddItem(ctx context.Context, customerID uuid.UUID, req *model.AddCartItemRequest) (*model.CartItem, error)

	// UpdateItem changes a cart line's quantity.
	UpdateItem(ctx context.Context, customerID, itemID uuid.UUID, quantity int) error

	// RemoveItem deletes a cart line.
	RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) error
}

// OrderService defines order lifecycle operations for both realms.
type OrderService interface {
	// ListForCustomer retrieves the customer's own orders.
	ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error)

	// GetForCustomer retrieves one of the customer's orders with items
	// and product details.
	GetForCustomer(ctx context.Context, customerID, orderID uuid.UUID) (*model.OrderResponse, error)

	// ListAll retrieves all orders (admin).
	ListAll(ctx context.Context, limit, offset int) ([]model.Order, error)

	// UpdateStatus sets an order's status and tracking fields (admin).
	UpdateStatus(ctx context.Context, orderID uuid.UUID, req *model.UpdateOrderStatusRequest) error
}

// CatalogService defines read operations over the product catalogue.
type CatalogService interface {
	// GetAll retrieves products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
}

// SettingService defines admin operations on the config key/value store.
type SettingService interface {
	Get(ctx context.Context, key string) (*model.Setting, error)
	Set(ctx context.Context, key, value string) error
	Add(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
