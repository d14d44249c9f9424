package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pasardb/pasardb/internal/database"
	"github.com/pasardb/pasardb/internal/seed"
)

var (
	schemaOnly bool
	skipDrop   bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Drop, create, and seed the storefront schema",
	Long: `Provisions the storefront database from scratch: drops any existing
tables in reverse dependency order, creates the four tables, and loads the
deterministic demo seed (4 categories, 5 products, 1 order with 2 items).

Dropping first is what makes re-running safe. With --skip-drop against an
already-seeded database the seed fails on the category slug uniqueness
constraint.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&schemaOnly, "schema-only", false, "Create schema only, skip seed data")
	setupCmd.Flags().BoolVar(&skipDrop, "skip-drop", false, "Keep existing tables instead of dropping first")
}

func runSetup(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up storefront database...")

	cfg, err := loadRuntime()
	if err != nil {
		return err
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if !skipDrop {
		fmt.Println("🗑️  Dropping existing tables...")
		if err := db.DropSchema(); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	fmt.Println("📋 Creating schema...")
	if err := db.CreateSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if !schemaOnly {
		fmt.Println("🌱 Loading seed data...")
		result, err := seed.NewLoader(db).Seed(seed.Default())
		if err != nil {
			return fmt.Errorf("failed to seed: %w", err)
		}
		fmt.Printf("   📦 %d categories, %d products, %d order with %d items (order id %d)\n",
			result.Categories, result.Products, result.Orders, result.Items, result.OrderID)
	}

	fmt.Println("✅ Storefront database ready!")
	return nil
}
