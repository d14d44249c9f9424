package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pasardb/pasardb/internal/database"
	"github.com/pasardb/pasardb/internal/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the seeded schema against the expected state",
	Long: `Runs read-only checks against the seeded database: exact row counts
(4 categories, 5 products, 1 order, 2 items), pairwise-distinct category
slugs, product and order item referential closure, and the demo order's
exact money breakdown and status.

Exits non-zero if any check fails. Nothing is written.`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Verifying storefront data...")

	cfg, err := loadRuntime()
	if err != nil {
		return err
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	report, err := verify.New(db).Run()
	if err != nil {
		return fmt.Errorf("failed to verify: %w", err)
	}

	for _, check := range report.Checks {
		marker := "✅"
		if !check.Passed {
			marker = "❌"
		}
		fmt.Printf("   %s %s: %s\n", marker, check.Name, check.Detail)
	}

	if !report.Passed() {
		return fmt.Errorf("%d check(s) failed", report.Failed())
	}

	fmt.Println("✅ All checks passed!")
	return nil
}
