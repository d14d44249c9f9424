package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pasardb/pasardb/internal/config"
	"github.com/pasardb/pasardb/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "pasardb",
	Short: "PasarDB - Supermarket Storefront Schema & Seed",
	Long: `PasarDB owns the relational schema and demo seed data for a small
supermarket storefront: categories, products, orders, and order items.

It provisions the four tables from scratch or as ordered migrations, loads
a deterministic seed, verifies the seeded state, exports the whole artifact
as a plain SQL script, and serves a small introspection API.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadRuntime loads configuration and installs the global logger; every
// command starts here.
func loadRuntime() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Setup(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return cfg, nil
}
