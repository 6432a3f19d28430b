package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is owned one-to-one by a customer. It persists across checkouts;
// only its items are consumed (clearing is deferred to payment confirmation).
type Cart struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CustomerID uuid.UUID `json:"customerId" db:"customer_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// CartItem is a single cart line referencing a product by identifier.
type CartItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CartID    uuid.UUID `json:"-" db:"cart_id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CartLine joins a cart item with its product for display.
type CartLine struct {
	ItemID    uuid.UUID `json:"itemId"`
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unitPrice"`
	Quantity  int       `json:"quantity"`
}

// CartView is the customer-facing cart payload.
type CartView struct {
	CartID uuid.UUID  `json:"cartId"`
	Items  []CartLine `json:"items"`
}

// SnapshotItem is one cart line materialised with the product's live
// attributes at checkout time.
type SnapshotItem struct {
	ProductID   uuid.UUID
	Name        string
	Description string
	ImageURL    *string
	UnitPrice   float64
	Quantity    int
}

// CartSnapshot is a read-time materialisation of a customer's cart used by
// checkout. Subtotal is computed from the live unit prices, not from any
// cached value.
type CartSnapshot struct {
	CartID        uuid.UUID
	Items         []SnapshotItem
	TotalQuantity int
	Subtotal      decimal.Decimal
}

// AddCartItemRequest is the payload for adding a product to the cart.
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// UpdateCartItemRequest is the payload for changing a cart line's quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
