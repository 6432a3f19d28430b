package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"stitchkart/internal/config"
	"stitchkart/internal/database"
	"stitchkart/internal/model"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Seeds a development database with a demo customer, a small catalogue and
// the shipping configuration checkout depends on.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, zerolog.Nop())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	customerID := uuid.New()
	if _, err := pool.Exec(ctx,
		`INSERT INTO customers (id, email, name) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`,
		customerID, "demo@example.com", "Demo Customer",
	); err != nil {
		log.Fatalf("Failed to seed customer: %v", err)
	}

	products := []struct {
		name        string
		description string
		price       float64
		stock       int
	}{
		{"Classic Tee", "Plain cotton tee in washed grey", 10.00, 120},
		{"Linen Shirt", "Relaxed-fit linen shirt", 24.99, 45},
		{"Wool Scarf", "Hand-loomed merino scarf", 15.50, 60},
		{"Canvas Tote", "Heavy canvas tote with internal pocket", 18.75, 80},
		{"Denim Jacket", "Mid-wash denim jacket", 59.00, 25},
	}

	for _, p := range products {
		if _, err := pool.Exec(ctx,
			`INSERT INTO products (id, name, description, price, stock) VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), p.name, p.description, p.price, p.stock,
		); err != nil {
			log.Fatalf("Failed to seed product %q: %v", p.name, err)
		}
	}

	settings := map[string]string{
		model.SettingShippingBaseCost:       "10.50",
		model.SettingShippingAdditionalRate: "40",
	}

	for key, value := range settings {
		if _, err := pool.Exec(ctx,
			`INSERT INTO configs (config_key, config_value) VALUES ($1, $2)
			 ON CONFLICT (config_key) DO UPDATE SET config_value = EXCLUDED.config_value`,
			key, value,
		); err != nil {
			log.Fatalf("Failed to seed config %q: %v", key, err)
		}
	}

	fmt.Fprintf(os.Stdout, "Seeded %d products, demo customer %s and shipping configuration\n",
		len(products), customerID)
}
