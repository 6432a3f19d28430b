package repository

import (
	"context"
	"errors"
	"fmt"

	"stitchkart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

const orderColumns = `id, customer_id, total_price, status, shipping_address, shipping_city,
		shipping_state, shipping_zip, shipping_country, tracking_id, tracking_description,
		created_at, updated_at`

func scanOrder(row pgx.Row, order *model.Order) error {
	return row.Scan(
		&order.ID,
		&order.CustomerID,
		&order.TotalPrice,
		&order.Status,
		&order.ShippingAddress,
		&order.ShippingCity,
		&order.ShippingState,
		&order.ShippingZip,
		&order.ShippingCountry,
		&order.TrackingID,
		&order.TrackingDescription,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
}

// CreateOrder inserts a new order within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, total_price, status, shipping_address,
			shipping_city, shipping_state, shipping_zip, shipping_country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := tx.Exec(ctx, query,
		order.ID,
		order.CustomerID,
		order.TotalPrice,
		order.Status,
		order.ShippingAddress,
		order.ShippingCity,
		order.ShippingState,
		order.ShippingZip,
		order.ShippingCountry,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Str("customer_id", order.CustomerID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Msg("order created successfully")

	return nil
}

// CreateOrderItems inserts multiple order items within the provided transaction.
func (r *orderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, price_at_checkout)
		VALUES ($1, $2, $3, $4, $5)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.ID, item.OrderID, item.ProductID, item.Quantity, item.PriceAtCheckout)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", items[i].OrderID.String()).
				Str("product_id", items[i].ProductID.String()).
				Msg("failed to create order item")
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("order items created successfully")

	return nil
}

// GetByID retrieves an order by its ID along with its items.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error) {
	orderQuery := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var order model.Order
	err := scanOrder(r.pool.QueryRow(ctx, orderQuery, id), &order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, nil, fmt.Errorf("failed to query order: %w", err)
	}

	itemsQuery := `
		SELECT id, order_id, product_id, quantity, price_at_checkout
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Msg("failed to query order items")
		return nil, nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.PriceAtCheckout)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return &order, items, nil
}

// ListByCustomer retrieves all orders placed by a customer, newest first.
func (r *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		r.logger.Error().Err(err).Str("customer_id", customerID.String()).Msg("failed to query customer orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows, r.logger)
}

// ListAll retrieves all orders with pagination support, newest first.
func (r *orderRepository) ListAll(ctx context.Context, limit, offset int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows, r.logger)
}

func collectOrders(rows pgx.Rows, logger zerolog.Logger) ([]model.Order, error) {
	var orders []model.Order
	for rows.Next() {
		var order model.Order
		if err := scanOrder(rows, &order); err != nil {
			logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus sets an order's lifecycle status and optional tracking fields.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, trackingID, trackingDescription *string) error {
	query := `
		UPDATE orders
		SET status = $1,
			tracking_id = COALESCE($2, tracking_id),
			tracking_description = COALESCE($3, tracking_description),
			updated_at = NOW()
		WHERE id = $4
	`

	tag, err := r.pool.Exec(ctx, query, status, trackingID, trackingDescription, id)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	r.logger.Info().
		Str("order_id", id.String()).
		Str("status", string(status)).
		Msg("order status updated")

	return nil
}
