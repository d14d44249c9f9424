package migrate

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/pasardb/pasardb/internal/database"
	"github.com/pasardb/pasardb/internal/seed"
)

const createMigrationsTableSQL = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version VARCHAR(32) PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// Migration is one step in the fixed total order.
type Migration struct {
	Version string
	Name    string
	Apply   func(tx *sql.Tx) error
}

// Migrations returns the ordered steps. MySQL auto-commits DDL, so the
// per-step transaction is a real guarantee for the seed step and best effort
// for the CREATE TABLE steps.
func Migrations() []Migration {
	ddl := func(stmt string) func(*sql.Tx) error {
		return func(tx *sql.Tx) error {
			_, err := tx.Exec(stmt)
			return err
		}
	}

	return []Migration{
		{Version: "0001", Name: "create_categories", Apply: ddl(database.CreateCategoriesTableSQL)},
		{Version: "0002", Name: "create_products", Apply: ddl(database.CreateProductsTableSQL)},
		{Version: "0003", Name: "create_orders", Apply: ddl(database.CreateOrdersTableSQL)},
		{Version: "0004", Name: "create_order_items", Apply: ddl(database.CreateOrderItemsTableSQL)},
		{Version: "0005", Name: "seed_demo_data", Apply: func(tx *sql.Tx) error {
			_, err := seed.Insert(tx, seed.Default())
			return err
		}},
	}
}

// Runner applies migrations in order and records them in schema_migrations.
type Runner struct {
	db *database.DB
}

// NewRunner creates a migration runner backed by the given connection.
func NewRunner(db *database.DB) *Runner {
	return &Runner{db: db}
}

// Status describes one migration and whether it has been applied.
type Status struct {
	Version string `json:"version"`
	Name    string `json:"name"`
	Applied bool   `json:"applied"`
}

// Status reports every migration in order with its applied state.
func (r *Runner) Status() ([]Status, error) {
	applied, err := r.applied()
	if err != nil {
		return nil, err
	}

	migrations := Migrations()
	statuses := make([]Status, 0, len(migrations))
	for _, m := range migrations {
		statuses = append(statuses, Status{
			Version: m.Version,
			Name:    m.Name,
			Applied: applied[m.Version],
		})
	}

	return statuses, nil
}

// Up applies every pending migration in order and returns how many ran. Each
// step runs inside its own transaction and is recorded in that same
// transaction, so a step either fully applies or fully rolls back.
func (r *Runner) Up() (int, error) {
	applied, err := r.applied()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, m := range Migrations() {
		if applied[m.Version] {
			continue
		}
		if err := r.apply(m); err != nil {
			return count, fmt.Errorf("migration %s_%s: %w", m.Version, m.Name, err)
		}
		count++
	}

	return count, nil
}

func (r *Runner) applied() (map[string]bool, error) {
	if _, err := r.db.Exec(createMigrationsTableSQL); err != nil {
		return nil, fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	rows, err := r.db.Query("SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read schema_migrations: %w", err)
	}

	return applied, nil
}

func (r *Runner) apply(m Migration) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := m.Apply(tx); err != nil {
		return err
	}

	if _, err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}

	zap.L().Info("applied migration", zap.String("version", m.Version), zap.String("name", m.Name))
	return nil
}
