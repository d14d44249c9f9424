package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pasardb/pasardb/internal/database"
	"github.com/pasardb/pasardb/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the introspection server",
	Long: `Start the read-only operational server:
- GET /api/health  database connectivity
- GET /api/schema  tables with column/row counts and migration status
- GET /api/seed    seeded rows checked against the expected fixtures

This is a provisioning aid, not the storefront API; catalog and checkout
endpoints belong to the application built on top of this schema.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 PasarDB introspection server starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := loadRuntime()
	if err != nil {
		return err
	}

	fmt.Println("🔌 Connecting to database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("✅ Database connected successfully")

	srv := server.NewServer(db)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
