package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pasardb/pasardb/internal/database"
	"github.com/pasardb/pasardb/internal/migrate"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show connection, table, and migration status",
	Long: `Reports whether the database is reachable, which storefront tables
exist with their column and row counts, and which migrations have been
applied.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Println("📊 Storefront database status")

	cfg, err := loadRuntime()
	if err != nil {
		return err
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("🔌 Connection: OK")

	tables, err := db.DescribeTables()
	if err != nil {
		return fmt.Errorf("failed to describe tables: %w", err)
	}

	fmt.Println("📋 Tables:")
	for _, t := range tables {
		if !t.Exists {
			fmt.Printf("   ⚠️  %s: missing (run 'pasardb setup' or 'pasardb migrate')\n", t.Name)
			continue
		}
		fmt.Printf("   📦 %s: %d rows, %d columns\n", t.Name, t.Rows, t.Columns)
	}

	statuses, err := migrate.NewRunner(db).Status()
	if err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}

	applied := 0
	for _, s := range statuses {
		if s.Applied {
			applied++
		}
	}
	fmt.Printf("🚚 Migrations: %d/%d applied\n", applied, len(statuses))

	return nil
}
