package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a storefront product as exposed to the catalogue and
// consumed by checkout. Price is the live unit price; checkout copies it
// into the order item so later price changes never alter historical orders.
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`
	Stock       int       `json:"stock" db:"stock"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
