package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pasardb/pasardb/internal/export"
	"github.com/pasardb/pasardb/internal/seed"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export-sql",
	Short: "Render the schema and seed as a plain SQL script",
	Long: `Renders the whole artifact as one MySQL script: drops, the four
CREATE TABLE statements, and the seed inserts, with the order items bound
to the order via a session variable right after the order insert.

The output is deterministic and needs no pasardb at import time; paste it
into an administrative tool or pipe it through the mysql client.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	script := export.Script(seed.Default())

	if exportOut == "" {
		fmt.Print(script)
		return nil
	}

	if err := os.WriteFile(exportOut, []byte(script), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOut, err)
	}

	fmt.Printf("✅ Wrote %s (%d bytes)\n", exportOut, len(script))
	return nil
}
