package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pasardb/pasardb/internal/database"
	"github.com/pasardb/pasardb/internal/migrate"
)

var migrateStatusOnly bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the schema and seed as ordered migrations",
	Long: `Applies the storefront schema as five migrations in a fixed total
order: categories, products, orders, order_items, then the demo seed.
Applied versions are recorded in a schema_migrations table, so re-running
only applies the pending tail.

Each migration runs inside its own transaction. MySQL auto-commits DDL, so
that guarantee is real for the seed step and best effort for the CREATE
TABLE steps.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().BoolVar(&migrateStatusOnly, "status", false, "List applied and pending migrations without applying")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime()
	if err != nil {
		return err
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	runner := migrate.NewRunner(db)

	if migrateStatusOnly {
		statuses, err := runner.Status()
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}

		fmt.Println("🚚 Migration status:")
		for _, s := range statuses {
			marker := "⏳ pending"
			if s.Applied {
				marker = "✅ applied"
			}
			fmt.Printf("   %s  %s_%s\n", marker, s.Version, s.Name)
		}
		return nil
	}

	fmt.Println("🚚 Applying migrations...")
	applied, err := runner.Up()
	if err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	if applied == 0 {
		fmt.Println("✅ Nothing to apply, schema is up to date")
	} else {
		fmt.Printf("✅ Applied %d migration(s)\n", applied)
	}
	return nil
}
