package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the order lifecycle state. Transitions beyond "pending" are
// admin-driven; "paid" is set by the payment-confirmation webhook.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
	StatusPaid      OrderStatus = "paid"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled, StatusPaid:
		return true
	}
	return false
}

// AdminSettable reports whether an administrator may set s directly. "paid"
// is excluded; only the payment-confirmation path assigns it.
func (s OrderStatus) AdminSettable() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is created exactly once per successful checkout. TotalPrice equals
// the sum of its items' price_at_checkout × quantity plus the shipping cost
// computed at creation time.
type Order struct {
	ID                  uuid.UUID   `json:"id" db:"id"`
	CustomerID          uuid.UUID   `json:"customerId" db:"customer_id"`
	TotalPrice          float64     `json:"totalPrice" db:"total_price"`
	Status              OrderStatus `json:"status" db:"status"`
	ShippingAddress     string      `json:"shippingAddress" db:"shipping_address"`
	ShippingCity        string      `json:"shippingCity" db:"shipping_city"`
	ShippingState       string      `json:"shippingState" db:"shipping_state"`
	ShippingZip         string      `json:"shippingZip" db:"shipping_zip"`
	ShippingCountry     string      `json:"shippingCountry" db:"shipping_country"`
	TrackingID          *string     `json:"trackingId,omitempty" db:"tracking_id"`
	TrackingDescription *string     `json:"trackingDescription,omitempty" db:"tracking_description"`
	CreatedAt           time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderItem freezes quantity and unit price at checkout time; immutable
// thereafter.
type OrderItem struct {
	ID              uuid.UUID `json:"-" db:"id"`
	OrderID         uuid.UUID `json:"-" db:"order_id"`
	ProductID       uuid.UUID `json:"productId" db:"product_id"`
	Quantity        int       `json:"quantity" db:"quantity"`
	PriceAtCheckout float64   `json:"priceAtCheckout" db:"price_at_checkout"`
}

// CheckoutRequest carries the shipping address for a checkout attempt.
// All fields are required.
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address"`
	ShippingCity    string `json:"shipping_city"`
	ShippingState   string `json:"shipping_state"`
	ShippingZip     string `json:"shipping_zip"`
	ShippingCountry string `json:"shipping_country"`
}

// CheckoutResponse is returned on a successful checkout: the created order
// and the payment provider's redirect target.
type CheckoutResponse struct {
	Message    string    `json:"message"`
	OrderID    uuid.UUID `json:"order_id"`
	SessionURL string    `json:"session_url"`
}

// OrderResponse aggregates an order with its items and product details.
type OrderResponse struct {
	Order    Order       `json:"order"`
	Items    []OrderItem `json:"items"`
	Products []Product   `json:"products"`
}

// UpdateOrderStatusRequest is the admin payload for order lifecycle updates.
type UpdateOrderStatusRequest struct {
	Status              string  `json:"status"`
	TrackingID          *string `json:"tracking_id,omitempty"`
	TrackingDescription *string `json:"tracking_description,omitempty"`
}
