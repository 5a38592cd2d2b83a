// Seeds the database with a small sample data set for local development.
package main

import (
	"context"
	"fmt"
	"os"

	"commerce-admin/internal/config"
	"commerce-admin/internal/database"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
		os.Exit(1)
	}

	customers := [][2]string{
		{"Alice Johnson", "alice@example.com"},
		{"Bruno Diaz", "bruno@example.com"},
		{"Carla Mendez", "carla@example.com"},
	}
	for _, c := range customers {
		_, err := pool.Exec(ctx,
			`INSERT INTO customers (name, email) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING`,
			c[0], c[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed customer %s: %v\n", c[0], err)
			os.Exit(1)
		}
	}

	products := []struct {
		name  string
		price float64
		stock int
	}{
		{"Notebook", 4.50, 120},
		{"Ballpoint Pen", 1.25, 400},
		{"Desk Lamp", 23.90, 35},
		{"Office Chair", 149.00, 12},
	}
	for _, p := range products {
		_, err := pool.Exec(ctx,
			`INSERT INTO products (name, price, stock) VALUES ($1, $2, $3)`,
			p.name, p.price, p.stock)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed product %s: %v\n", p.name, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Seeded %d customers and %d products\n", len(customers), len(products))
}
