package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"stitchkart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema applies the migration file so tests exercise the same schema
// as production.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	schema, err := os.ReadFile(filepath.Join("..", "..", "migrations", "001_init.sql"))
	if err != nil {
		t.Fatalf("failed to read migration: %v", err)
	}

	if _, err := pool.Exec(context.Background(), string(schema)); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedCustomer inserts a customer row and returns its ID.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO customers (id, email, name) VALUES ($1, $2, $3)`,
		id, fmt.Sprintf("%s@example.com", id), "Test Customer",
	)
	if err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	return id
}

// SeedProducts inserts test products and returns them in insertion order.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) []model.Product {
	t.Helper()

	ctx := context.Background()

	products := []model.Product{
		{ID: uuid.New(), Name: "Classic Tee", Description: "Plain cotton tee", Price: 10.00, Stock: 120},
		{ID: uuid.New(), Name: "Linen Shirt", Description: "Relaxed-fit linen shirt", Price: 24.99, Stock: 45},
		{ID: uuid.New(), Name: "Wool Scarf", Description: "Hand-loomed merino scarf", Price: 15.50, Stock: 60},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx,
			`INSERT INTO products (id, name, description, price, stock) VALUES ($1, $2, $3, $4, $5)`,
			p.ID, p.Name, p.Description, p.Price, p.Stock,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.Name, err)
		}
	}

	return products
}

// SeedShippingConfig inserts the shipping rate configuration checkout needs.
func SeedShippingConfig(t *testing.T, pool *pgxpool.Pool, baseCost, additionalRatio string) {
	t.Helper()

	ctx := context.Background()

	settings := map[string]string{
		model.SettingShippingBaseCost:       baseCost,
		model.SettingShippingAdditionalRate: additionalRatio,
	}

	for key, value := range settings {
		_, err := pool.Exec(ctx,
			`INSERT INTO configs (config_key, config_value) VALUES ($1, $2)
			 ON CONFLICT (config_key) DO UPDATE SET config_value = EXCLUDED.config_value`,
			key, value,
		)
		if err != nil {
			t.Fatalf("failed to seed config %s: %v", key, err)
		}
	}
}

// SeedCartWithItems creates a cart for the customer holding the given
// product quantities, keyed by position in products.
func SeedCartWithItems(t *testing.T, pool *pgxpool.Pool, customerID uuid.UUID, products []model.Product, quantities []int) uuid.UUID {
	t.Helper()

	ctx := context.Background()

	cartID := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO carts (id, customer_id) VALUES ($1, $2)`,
		cartID, customerID,
	)
	if err != nil {
		t.Fatalf("failed to seed cart: %v", err)
	}

	for i, qty := range quantities {
		if qty == 0 {
			continue
		}
		_, err := pool.Exec(ctx,
			`INSERT INTO cart_items (id, cart_id, product_id, quantity) VALUES ($1, $2, $3, $4)`,
			uuid.New(), cartID, products[i].ID, qty,
		)
		if err != nil {
			t.Fatalf("failed to seed cart item: %v", err)
		}
	}

	return cartID
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "cart_items", "carts", "configs", "products", "customers"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
