package main

import (
	"context"
	"fmt"
	"os"

	"github.com/davidcastanon/shopmart-backend/internal/products"
	"github.com/davidcastanon/shopmart-backend/internal/users"
	"github.com/davidcastanon/shopmart-backend/pkg/config"
	"github.com/davidcastanon/shopmart-backend/pkg/db"
	pkgerrors "github.com/davidcastanon/shopmart-backend/pkg/errors"
	"github.com/davidcastanon/shopmart-backend/pkg/logger"
	"github.com/davidcastanon/shopmart-backend/pkg/migrate"
	"github.com/davidcastanon/shopmart-backend/pkg/pagination"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type seedProduct struct {
	name        string
	description string
	price       string
	image       string
	category    string
	stock       int
	rating      float64
}

var catalog = []seedProduct{
	{"Wireless Headphones", "Premium noise-cancelling wireless headphones with 30-hour battery life and superior sound quality.", "299.99", "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop", "Electronics", 45, 4.5},
	{"Smart Watch Pro", "Advanced fitness tracking smartwatch with heart rate monitor, GPS, and water resistance.", "399.99", "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&h=500&fit=crop", "Electronics", 32, 4.7},
	{"Leather Backpack", "Handcrafted genuine leather backpack with multiple compartments and laptop sleeve.", "159.99", "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500&h=500&fit=crop", "Fashion", 18, 4.3},
	{"Running Shoes", "Lightweight professional running shoes with breathable mesh and cushioned sole.", "129.99", "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&h=500&fit=crop", "Sports", 67, 4.6},
	{"Coffee Maker Deluxe", "Programmable coffee maker with thermal carafe and brew strength control.", "89.99", "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=500&h=500&fit=crop", "Home", 54, 4.4},
	{"Yoga Mat Premium", "Extra-thick yoga mat with non-slip surface and eco-friendly materials.", "49.99", "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500&h=500&fit=crop", "Sports", 89, 4.8},
	{"Desk Lamp LED", "Modern LED desk lamp with adjustable brightness and USB charging port.", "45.99", "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500&h=500&fit=crop", "Home", 41, 4.2},
	{"Sunglasses Classic", "Polarized sunglasses with UV protection and stylish aviator design.", "79.99", "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=500&h=500&fit=crop", "Fashion", 73, 4.5},
	{"Bluetooth Speaker", "Portable waterproof Bluetooth speaker with 360-degree sound and 12-hour battery.", "79.99", "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500&h=500&fit=crop", "Electronics", 56, 4.6},
	{"Plant Pot Set", "Set of 3 ceramic plant pots with drainage holes and saucers.", "34.99", "https://images.unsplash.com/photo-1485955900006-10f4d324d411?w=500&h=500&fit=crop", "Home", 92, 4.1},
	{"Wireless Mouse", "Ergonomic wireless mouse with precision tracking and rechargeable battery.", "39.99", "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&h=500&fit=crop", "Electronics", 128, 4.3},
	{"Water Bottle Insulated", "Stainless steel insulated water bottle keeps drinks cold for 24 hours.", "29.99", "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=500&h=500&fit=crop", "Sports", 156, 4.7},
}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := migrate.AutoMigrate(dbClient); err != nil {
		logg.Error(ctx, "failed to migrate schema", err)
		os.Exit(1)
	}

	userService, err := users.NewService(users.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(ctx, "failed to create user service", err)
		os.Exit(1)
	}

	productService, err := products.NewService(products.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(ctx, "failed to create product service", err)
		os.Exit(1)
	}

	// Demo account: seeding twice must not fail on the unique email.
	if _, err := userService.CreateCredentialUser(ctx, "test@example.com", "password123", "Test User"); err != nil {
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
			logg.Error(ctx, "failed to seed demo user", err)
			os.Exit(1)
		}
		fmt.Println("demo user already exists")
	} else {
		fmt.Println("demo user created (test@example.com / password123)")
	}

	existing, err := productService.List(ctx, "", pagination.Params{Page: 1, Limit: 1})
	if err != nil {
		logg.Error(ctx, "failed to inspect catalog", err)
		os.Exit(1)
	}
	if existing.Pagination.TotalItems > 0 {
		fmt.Printf("catalog already has %d products, skipping\n", existing.Pagination.TotalItems)
		return
	}

	seeded := 0
	for _, p := range catalog {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			logg.Error(ctx, "invalid seed price", err)
			os.Exit(1)
		}
		stock := p.stock
		rating := p.rating
		if _, err := productService.Create(ctx, products.CreateProductInput{
			Name:        p.name,
			Description: p.description,
			Price:       price,
			Category:    p.category,
			Image:       p.image,
			Stock:       &stock,
			Rating:      &rating,
		}); err != nil {
			logg.Error(ctx, "failed to seed product", err)
			os.Exit(1)
		}
		seeded++
	}

	fmt.Printf("seeded %d products\n", seeded)
}
