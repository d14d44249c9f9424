package database

import (
	"fmt"
)

// DDL for the four storefront tables. Each constant is a single statement so
// it can be passed to Exec directly; creation order follows TableNames and
// drops run in reverse so foreign keys never dangle.

const CreateCategoriesTableSQL = `CREATE TABLE IF NOT EXISTS categories (
    id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
    name VARCHAR(100) NOT NULL,
    slug VARCHAR(100) NOT NULL,
    icon VARCHAR(64),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
    UNIQUE KEY uq_categories_slug (slug)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

const CreateProductsTableSQL = `CREATE TABLE IF NOT EXISTS products (
    id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
    title VARCHAR(255) NOT NULL,
    description TEXT,
    price DECIMAL(12,2) NOT NULL DEFAULT 0.00,
    category_slug VARCHAR(100) NOT NULL,
    in_stock BOOLEAN NOT NULL DEFAULT TRUE,
    image VARCHAR(512),
    rating DECIMAL(3,2) DEFAULT 4.50,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
    INDEX idx_products_category_slug (category_slug),
    CONSTRAINT fk_products_category_slug FOREIGN KEY (category_slug)
        REFERENCES categories (slug)
        ON UPDATE CASCADE
        ON DELETE RESTRICT
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

const CreateOrdersTableSQL = `CREATE TABLE IF NOT EXISTS orders (
    id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
    buyer_name VARCHAR(150) NOT NULL,
    buyer_email VARCHAR(255) NOT NULL,
    buyer_address VARCHAR(500) NOT NULL,
    subtotal DECIMAL(12,2) NOT NULL DEFAULT 0.00,
    discount DECIMAL(12,2) NOT NULL DEFAULT 0.00,
    delivery_fee DECIMAL(12,2) NOT NULL DEFAULT 0.00,
    total DECIMAL(12,2) NOT NULL DEFAULT 0.00,
    status ENUM('pending', 'paid', 'shipped', 'completed', 'cancelled') NOT NULL DEFAULT 'pending',
    coupon_code VARCHAR(64),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
    INDEX idx_orders_status (status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// order_items.product_id is free text on purpose: items snapshot the product
// at order time, so order history survives catalog edits and deletions.
const CreateOrderItemsTableSQL = `CREATE TABLE IF NOT EXISTS order_items (
    id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
    order_id BIGINT UNSIGNED NOT NULL,
    product_id VARCHAR(64),
    title VARCHAR(255) NOT NULL,
    price DECIMAL(12,2) NOT NULL DEFAULT 0.00,
    quantity INT UNSIGNED NOT NULL DEFAULT 1,
    image VARCHAR(512),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
    INDEX idx_order_items_order_id (order_id),
    CONSTRAINT fk_order_items_order_id FOREIGN KEY (order_id)
        REFERENCES orders (id)
        ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// TableNames lists the storefront tables in creation order.
var TableNames = []string{"categories", "products", "orders", "order_items"}

// CreateStatements returns the table DDL in creation order.
func CreateStatements() []string {
	return []string{
		CreateCategoriesTableSQL,
		CreateProductsTableSQL,
		CreateOrdersTableSQL,
		CreateOrderItemsTableSQL,
	}
}

// CreateSchema creates the four storefront tables
func (db *DB) CreateSchema() error {
	statements := CreateStatements()
	for i, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table %s: %w", TableNames[i], err)
		}
	}

	return nil
}

// DropSchema removes all storefront tables
func (db *DB) DropSchema() error {
	for i := len(TableNames) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", TableNames[i])
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", TableNames[i], err)
		}
	}

	return nil
}

// CleanupData removes all rows (but keeps schema)
func (db *DB) CleanupData() error {
	for i := len(TableNames) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DELETE FROM %s", TableNames[i])
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to clean table %s: %w", TableNames[i], err)
		}
	}

	return nil
}

// TableExists reports whether the named table exists in the current schema.
func (db *DB) TableExists(name string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?"
	if err := db.QueryRow(query, name).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", name, err)
	}

	return count > 0, nil
}

// TableInfo summarizes one table for status reporting.
type TableInfo struct {
	Name    string `json:"name" db:"name"`
	Exists  bool   `json:"exists" db:"exists"`
	Columns int    `json:"columns" db:"columns"`
	Rows    int64  `json:"rows" db:"rows"`
}

// DescribeTables reports existence, column count, and row count for every
// storefront table, in creation order.
func (db *DB) DescribeTables() ([]TableInfo, error) {
	infos := make([]TableInfo, 0, len(TableNames))
	for _, name := range TableNames {
		info := TableInfo{Name: name}

		exists, err := db.TableExists(name)
		if err != nil {
			return nil, err
		}
		info.Exists = exists

		if exists {
			query := "SELECT COUNT(*) FROM information_schema.columns WHERE table_schema = DATABASE() AND table_name = ?"
			if err := db.QueryRow(query, name).Scan(&info.Columns); err != nil {
				return nil, fmt.Errorf("failed to count columns of %s: %w", name, err)
			}

			// Table names come from the fixed list above, never from input.
			if err := db.QueryRow("SELECT COUNT(*) FROM " + name).Scan(&info.Rows); err != nil {
				return nil, fmt.Errorf("failed to count rows of %s: %w", name, err)
			}
		}

		infos = append(infos, info)
	}

	return infos, nil
}
