package database

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &DB{db}, mock
}

func TestCreateSchemaExecutesInOrder(t *testing.T) {
	db, mock := newMockDB(t)

	for _, stmt := range CreateStatements() {
		mock.ExpectExec(stmt).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, db.CreateSchema())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSchemaWrapsError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(CreateCategoriesTableSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(CreateProductsTableSQL).WillReturnError(errors.New("boom"))

	err := db.CreateSchema()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create table products")
}

func TestDropSchemaReverseOrder(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("DROP TABLE IF EXISTS order_items").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DROP TABLE IF EXISTS orders").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DROP TABLE IF EXISTS products").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DROP TABLE IF EXISTS categories").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, db.DropSchema())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCleanupDataReverseOrder(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("DELETE FROM order_items").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM orders").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM products").WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec("DELETE FROM categories").WillReturnResult(sqlmock.NewResult(0, 4))

	require.NoError(t, db.CleanupData())
	require.NoError(t, mock.ExpectationsWereMet())
}

// The DDL constants are the storage contract; pin the clauses an application
// layer depends on.
func TestSchemaContract(t *testing.T) {
	assert.Contains(t, CreateCategoriesTableSQL, "UNIQUE KEY uq_categories_slug (slug)")
	assert.Contains(t, CreateCategoriesTableSQL, "ON UPDATE CURRENT_TIMESTAMP")

	assert.Contains(t, CreateProductsTableSQL, "REFERENCES categories (slug)")
	assert.Contains(t, CreateProductsTableSQL, "ON UPDATE CASCADE")
	assert.Contains(t, CreateProductsTableSQL, "ON DELETE RESTRICT")
	assert.Contains(t, CreateProductsTableSQL, "price DECIMAL(12,2) NOT NULL DEFAULT 0.00")
	assert.Contains(t, CreateProductsTableSQL, "rating DECIMAL(3,2) DEFAULT 4.50")
	assert.Contains(t, CreateProductsTableSQL, "in_stock BOOLEAN NOT NULL DEFAULT TRUE")

	assert.Contains(t, CreateOrdersTableSQL, "ENUM('pending', 'paid', 'shipped', 'completed', 'cancelled')")
	assert.Contains(t, CreateOrdersTableSQL, "DEFAULT 'pending'")
	for _, column := range []string{"subtotal", "discount", "delivery_fee", "total"} {
		assert.Contains(t, CreateOrdersTableSQL, column+" DECIMAL(12,2) NOT NULL DEFAULT 0.00")
	}

	assert.Contains(t, CreateOrderItemsTableSQL, "REFERENCES orders (id)")
	assert.Contains(t, CreateOrderItemsTableSQL, "ON DELETE CASCADE")
	assert.Contains(t, CreateOrderItemsTableSQL, "quantity INT UNSIGNED NOT NULL DEFAULT 1")
	// product_id is a nullable free-text snapshot, never a hard FK
	assert.Contains(t, CreateOrderItemsTableSQL, "product_id VARCHAR(64),")
	assert.NotContains(t, CreateOrderItemsTableSQL, "REFERENCES products")

	for _, stmt := range CreateStatements() {
		assert.Contains(t, stmt, "id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT")
		assert.Contains(t, stmt, "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4")
	}
}

func TestTableNamesOrder(t *testing.T) {
	assert.Equal(t, []string{"categories", "products", "orders", "order_items"}, TableNames)
	assert.Len(t, CreateStatements(), len(TableNames))
}

func TestTableExists(t *testing.T) {
	db, mock := newMockDB(t)

	query := "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?"
	mock.ExpectQuery(query).WithArgs("categories").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(query).WithArgs("orders").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := db.TableExists("categories")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = db.TableExists("orders")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDescribeTables(t *testing.T) {
	db, mock := newMockDB(t)

	existsQuery := "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?"
	columnsQuery := "SELECT COUNT(*) FROM information_schema.columns WHERE table_schema = DATABASE() AND table_name = ?"

	rowCounts := map[string]int64{"categories": 4, "products": 5, "orders": 1, "order_items": 2}
	for _, name := range TableNames {
		mock.ExpectQuery(existsQuery).WithArgs(name).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(columnsQuery).WithArgs(name).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))
		mock.ExpectQuery("SELECT COUNT(*) FROM " + name).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(rowCounts[name]))
	}

	infos, err := db.DescribeTables()
	require.NoError(t, err)
	require.Len(t, infos, 4)

	for i, name := range TableNames {
		assert.Equal(t, name, infos[i].Name)
		assert.True(t, infos[i].Exists)
		assert.Equal(t, 8, infos[i].Columns)
		assert.Equal(t, rowCounts[name], infos[i].Rows)
	}
}

func TestDescribeTablesMissingTable(t *testing.T) {
	db, mock := newMockDB(t)

	existsQuery := "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?"
	columnsQuery := "SELECT COUNT(*) FROM information_schema.columns WHERE table_schema = DATABASE() AND table_name = ?"

	for _, name := range TableNames {
		exists := int64(0)
		if name == "categories" {
			exists = 1
		}
		mock.ExpectQuery(existsQuery).WithArgs(name).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(exists))
		if exists == 1 {
			mock.ExpectQuery(columnsQuery).WithArgs(name).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))
			mock.ExpectQuery("SELECT COUNT(*) FROM " + name).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
		}
	}

	infos, err := db.DescribeTables()
	require.NoError(t, err)
	require.Len(t, infos, 4)

	assert.True(t, infos[0].Exists)
	for _, info := range infos[1:] {
		assert.False(t, info.Exists)
		assert.Zero(t, info.Rows)
	}
}
