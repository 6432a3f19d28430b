package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stitchkart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// GetByCustomer retrieves a customer's cart.
func (r *cartRepository) GetByCustomer(ctx context.Context, customerID uuid.UUID) (*model.Cart, error) {
	query := `
		SELECT id, customer_id, created_at, updated_at
		FROM carts
		WHERE customer_id = $1
	`

	var cart model.Cart
	err := r.pool.QueryRow(ctx, query, customerID).Scan(
		&cart.ID, &cart.CustomerID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("customer_id", customerID.String()).Msg("no cart for customer")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("customer_id", customerID.String()).Msg("failed to query cart")
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}

	return &cart, nil
}

// Create creates an empty cart for the customer.
func (r *cartRepository) Create(ctx context.Context, customerID uuid.UUID) (*model.Cart, error) {
	now := time.Now()
	cart := &model.Cart{
		ID:         uuid.New(),
		CustomerID: customerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	query := `
		INSERT INTO carts (id, customer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, cart.ID, cart.CustomerID, cart.CreatedAt, cart.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("customer_id", customerID.String()).Msg("failed to create cart")
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	r.logger.Debug().Str("cart_id", cart.ID.String()).Msg("cart created")

	return cart, nil
}

// GetLines retrieves the cart's items joined with product details.
func (r *cartRepository) GetLines(ctx context.Context, cartID uuid.UUID) ([]model.CartLine, error) {
	query := `
		SELECT ci.id, ci.product_id, p.name, p.price, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at
	`

	rows, err := r.pool.Query(ctx, query, cartID)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to query cart lines")
		return nil, fmt.Errorf("failed to query cart lines: %w", err)
	}
	defer rows.Close()

	var lines []model.CartLine
	for rows.Next() {
		var line model.CartLine
		if err := rows.Scan(&line.ItemID, &line.ProductID, &line.Name, &line.UnitPrice, &line.Quantity); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart line")
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart lines")
		return nil, fmt.Errorf("error iterating cart lines: %w", err)
	}

	return lines, nil
}

// AddItem adds a cart line for the given product. A product already in the
// cart gets its quantity incremented instead of a second line.
func (r *cartRepository) AddItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) (*model.CartItem, error) {
	item := &model.CartItem{
		CartID:    cartID,
		ProductID: productID,
	}

	query := `
		INSERT INTO cart_items (id, cart_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, quantity, created_at
	`

	err := r.pool.QueryRow(ctx, query, uuid.New(), cartID, productID, quantity, time.Now()).
		Scan(&item.ID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).
			Str("cart_id", cartID.String()).
			Str("product_id", productID.String()).
			Msg("failed to add cart item")
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	return item, nil
}

// UpdateItemQuantity changes a cart line's quantity.
func (r *cartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error {
	query := `
		UPDATE cart_items
		SET quantity = $1
		WHERE id = $2 AND cart_id = $3
	`

	tag, err := r.pool.Exec(ctx, query, quantity, itemID, cartID)
	if err != nil {
		r.logger.Error().Err(err).Str("item_id", itemID.String()).Msg("failed to update cart item")
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCartItemMissing
	}

	return nil
}

// RemoveItem deletes a cart line.
func (r *cartRepository) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	query := `DELETE FROM cart_items WHERE id = $1 AND cart_id = $2`

	tag, err := r.pool.Exec(ctx, query, itemID, cartID)
	if err != nil {
		r.logger.Error().Err(err).Str("item_id", itemID.String()).Msg("failed to remove cart item")
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCartItemMissing
	}

	return nil
}

// GetSnapshot materialises the customer's cart with live product prices
// inside the provided transaction, so a concurrent price update either fully
// precedes or fully follows this checkout's read.
func (r *cartRepository) GetSnapshot(ctx context.Context, tx pgx.Tx, customerID uuid.UUID) (*model.CartSnapshot, error) {
	var cartID uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM carts WHERE customer_id = $1`, customerID).Scan(&cartID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn().Str("customer_id", customerID.String()).Msg("no active cart for customer")
			return nil, model.ErrNoActiveCart
		}
		r.logger.Error().Err(err).Str("customer_id", customerID.String()).Msg("failed to query cart")
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}

	query := `
		SELECT ci.product_id, p.name, p.description, p.image_url, p.price, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at
	`

	rows, err := tx.Query(ctx, query, cartID)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to query cart snapshot")
		return nil, fmt.Errorf("failed to query cart snapshot: %w", err)
	}
	defer rows.Close()

	snapshot := &model.CartSnapshot{
		CartID:   cartID,
		Subtotal: decimal.Zero,
	}

	for rows.Next() {
		var item model.SnapshotItem
		err := rows.Scan(&item.ProductID, &item.Name, &item.Description, &item.ImageURL, &item.UnitPrice, &item.Quantity)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan snapshot item")
			return nil, fmt.Errorf("failed to scan snapshot item: %w", err)
		}

		snapshot.Items = append(snapshot.Items, item)
		snapshot.TotalQuantity += item.Quantity
		snapshot.Subtotal = snapshot.Subtotal.Add(
			decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating snapshot items")
		return nil, fmt.Errorf("error iterating snapshot items: %w", err)
	}

	if len(snapshot.Items) == 0 {
		r.logger.Warn().Str("cart_id", cartID.String()).Msg("cart has no items")
		return nil, model.ErrEmptyCart
	}

	return snapshot, nil
}
