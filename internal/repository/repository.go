package repository

import (
	"context"

	"stitchkart/internal/model"
	"stitchkart/internal/shipping"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)
}

// CartRepository defines the interface for cart data access operations.
type CartRepository interface {
	// GetByCustomer retrieves a customer's cart. Returns nil when the
	// customer has no cart record.
	GetByCustomer(ctx context.Context, customerID uuid.UUID) (*model.Cart, error)

	// Create creates an empty cart for the customer.
	Create(ctx context.Context, customerID uuid.UUID) (*model.Cart, error)

	// GetLines retrieves the cart's items joined with product details.
	GetLines(ctx context.Context, cartID uuid.UUID) ([]model.CartLine, error)

	// AddItem adds a cart line for the given product, incrementing the
	// quantity when the product is already carted.
	AddItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) (*model.CartItem, error)

	// UpdateItemQuantity changes a cart line's quantity. Returns
	// model.ErrCartItemMissing when the line does not belong to the cart.
	UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error

	// RemoveItem deletes a cart line. Returns model.ErrCartItemMissing
	// when the line does not belong to the cart.
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error

	// GetSnapshot materialises the customer's cart with live product
	// prices inside the provided transaction. Returns
	// model.ErrNoActiveCart when the customer has no cart and
	// model.ErrEmptyCart when the cart has zero items.
	GetSnapshot(ctx context.Context, tx pgx.Tx, customerID uuid.UUID) (*model.CartSnapshot, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// ListByCustomer retrieves all orders placed by a customer.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error)

	// ListAll retrieves all orders with pagination support.
	ListAll(ctx context.Context, limit, offset int) ([]model.Order, error)

	// UpdateStatus sets an order's lifecycle status and optional tracking
	// fields. Returns model.ErrOrderNotFound when the order is absent.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, trackingID, trackingDescription *string) error
}

// SettingRepository defines the interface for the config key/value store.
type SettingRepository interface {
	// Get retrieves a setting by key. Returns nil when absent.
	Get(ctx context.Context, key string) (*model.Setting, error)

	// Set updates an existing setting's value. Returns
	// model.ErrSettingNotFound when the key is absent.
	Set(ctx context.Context, key, value string) error

	// Add inserts a new setting.
	Add(ctx context.Context, key, value string) error

	// Delete removes a setting. Returns model.ErrSettingNotFound when the
	// key is absent.
	Delete(ctx context.Context, key string) error

	// ShippingRates resolves the shipping parameters into a typed struct.
	// Returns model.ErrConfigMissing when either key is absent or not a
	// valid decimal.
	ShippingRates(ctx context.Context) (shipping.Rates, error)
}
