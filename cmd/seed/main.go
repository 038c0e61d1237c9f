// Command seed resets the product catalogue to the sample shoe
// line-up. Existing products are removed first, so it is meant for
// development and demo environments only.
package main

import (
	"context"
	"fmt"
	"os"

	"shoestore/internal/config"
	"shoestore/internal/database"
	"shoestore/internal/model"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var sampleProducts = []model.Product{
	{
		Name:        "Converse Chuck Taylor All Star II Hi",
		Description: "The Chuck Taylor All Star II Hi features a durable canvas upper with a cushioned Lunarlon sockliner for all-day comfort.",
		Price:       75.00,
		Image:       "https://images.unsplash.com/photo-1607522370275-f14206abe5d3?w=800",
		Variants: []model.VariantGroup{
			{Type: "Size", Options: []string{"US 7", "US 8", "US 9", "US 10", "US 11"}},
			{Type: "Color", Options: []string{"Black", "White", "Red", "Navy"}},
		},
		Inventory: 50,
	},
	{
		Name:        "Nike Air Max 270",
		Description: "Experience ultimate comfort with the Nike Air Max 270, featuring Nike's largest heel Air unit yet for a super-soft ride.",
		Price:       150.00,
		Image:       "https://images.unsplash.com/photo-1600185365926-3a2ce3cdb9eb?w=800",
		Variants: []model.VariantGroup{
			{Type: "Size", Options: []string{"US 7", "US 8", "US 9", "US 10", "US 11"}},
			{Type: "Color", Options: []string{"Black/White", "Blue/Orange", "Grey/Pink"}},
		},
		Inventory: 30,
	},
	{
		Name:        "Adidas Ultraboost 22",
		Description: "Run with incredible energy return in the Ultraboost 22. These running shoes combine comfort and responsiveness for a smooth ride.",
		Price:       190.00,
		Image:       "https://images.unsplash.com/photo-1562183241-b937e95585b6?w=800",
		Variants: []model.VariantGroup{
			{Type: "Size", Options: []string{"US 7", "US 8", "US 9", "US 10", "US 11"}},
			{Type: "Color", Options: []string{"Core Black", "Cloud White", "Solar Red"}},
		},
		Inventory: 25,
	},
	{
		Name:        "Vans Old Skool",
		Description: "The Vans Old Skool is the original and now iconic Vans side stripe skate shoe. A low-top lace-up with durable suede and canvas uppers.",
		Price:       65.00,
		Image:       "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=800",
		Variants: []model.VariantGroup{
			{Type: "Size", Options: []string{"US 7", "US 8", "US 9", "US 10", "US 11", "US 12"}},
			{Type: "Color", Options: []string{"Black/White", "All Black", "Checkerboard", "Navy/White"}},
		},
		Inventory: 40,
	},
	{
		Name:        "Jordan 1 Mid",
		Description: "Inspired by the original AJ1, this mid-top edition maintains the iconic look while choice colors give it a distinct identity.",
		Price:       110.00,
		Image:       "https://images.unsplash.com/photo-1584735175315-9d5df23860e6?w=800",
		Variants: []model.VariantGroup{
			{Type: "Size", Options: []string{"US 7", "US 8", "US 9", "US 10", "US 11", "US 12"}},
			{Type: "Color", Options: []string{"Chicago", "Bred", "Royal Blue", "Shadow Grey"}},
		},
		Inventory: 20,
	},
	{
		Name:        "Nike Air Force 1 '07",
		Description: "The radiance lives on in the Nike Air Force 1 '07, the basketball original that puts a fresh spin on what you know best.",
		Price:       90.00,
		Image:       "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=800",
		Variants: []model.VariantGroup{
			{Type: "Size", Options: []string{"US 7", "US 8", "US 9", "US 10", "US 11", "US 12"}},
			{Type: "Color", Options: []string{"Triple White", "Triple Black", "White/Black", "White/Red"}},
		},
		Inventory: 55,
	},
	{
		Name:        "New Balance 997H",
		Description: "A heritage-inspired running silhouette with modern comfort. Features a cushioned midsole and retro styling that works with any outfit.",
		Price:       80.00,
		Image:       "https://images.unsplash.com/photo-1551107696-a4b0c5a0d9a2?w=800",
		Variants: []model.VariantGroup{
			{Type: "Size", Options: []string{"US 7", "US 8", "US 9", "US 10", "US 11"}},
			{Type: "Color", Options: []string{"Grey/Navy", "White/Red", "Black/Silver", "Tan/Brown"}},
		},
		Inventory: 35,
	},
	{
		Name:        "On Cloud 5",
		Description: "The next generation of the On Cloud features improved comfort and performance. CloudTec technology provides a smooth and responsive ride.",
		Price:       140.00,
		Image:       "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=800",
		Variants: []model.VariantGroup{
			{Type: "Size", Options: []string{"US 7", "US 8", "US 9", "US 10", "US 11"}},
			{Type: "Color", Options: []string{"All White", "Black/White", "Grey/Orange", "Navy/White"}},
		},
		Inventory: 22,
	},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx := context.Background()
	pool, err := database.Get(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Reset()

	if _, err := pool.Exec(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}

	query := `
		INSERT INTO products (id, name, description, price, image, variants, inventory)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, p := range sampleProducts {
		id := uuid.NewString()
		if _, err := pool.Exec(ctx, query, id, p.Name, p.Description, p.Price, p.Image, p.Variants, p.Inventory); err != nil {
			return fmt.Errorf("failed to insert product %q: %w", p.Name, err)
		}
		logger.Info().Str("product_id", id).Str("name", p.Name).Msg("product seeded")
	}

	logger.Info().Int("count", len(sampleProducts)).Msg("catalogue seeded successfully")
	return nil
}
