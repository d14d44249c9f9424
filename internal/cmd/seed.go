package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pasardb/pasardb/internal/database"
	"github.com/pasardb/pasardb/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo seed into an existing empty schema",
	Long: `Inserts the deterministic demo rows into already-created tables, all
inside one transaction: 4 categories, 5 products, and 1 order with 2 line
items snapshotting their products.

The tables must be empty; a second run fails on the category slug
uniqueness constraint. Use 'setup' to drop and recreate first.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	fmt.Println("🌱 Seeding storefront data...")

	cfg, err := loadRuntime()
	if err != nil {
		return err
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	result, err := seed.NewLoader(db).Seed(seed.Default())
	if err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}

	fmt.Printf("✅ Seeded %d categories, %d products, %d order with %d items (order id %d)\n",
		result.Categories, result.Products, result.Orders, result.Items, result.OrderID)
	return nil
}
