package seed

import (
	"database/sql"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/pasardb/pasardb/internal/database"
)

const (
	insertCategorySQL  = "INSERT INTO categories (name, slug, icon) VALUES (?, ?, ?)"
	insertProductSQL   = "INSERT INTO products (title, description, price, category_slug, in_stock, image, rating) VALUES (?, ?, ?, ?, ?, ?, ?)"
	insertOrderSQL     = "INSERT INTO orders (buyer_name, buyer_email, buyer_address, subtotal, discount, delivery_fee, total, status, coupon_code) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
	insertOrderItemSQL = "INSERT INTO order_items (order_id, product_id, title, price, quantity, image) VALUES (?, ?, ?, ?, ?, ?)"
)

// Execer is the slice of database/sql the inserts need; both *sql.Tx and
// *sql.DB satisfy it.
type Execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// Loader inserts the fixture set into an already-created schema.
type Loader struct {
	db *database.DB
}

// NewLoader creates a seed loader backed by the given connection.
func NewLoader(db *database.DB) *Loader {
	return &Loader{db: db}
}

// Result reports what a seed run inserted.
type Result struct {
	Categories int   `json:"categories"`
	Products   int   `json:"products"`
	Orders     int   `json:"orders"`
	Items      int   `json:"items"`
	OrderID    int64 `json:"order_id"`
}

// Seed runs Insert inside one transaction: the fixture set fully applies or
// fully rolls back.
func (l *Loader) Seed(f Fixtures) (*Result, error) {
	tx, err := l.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := Insert(tx, f)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit seed: %w", err)
	}

	return result, nil
}

// Insert validates the fixtures and writes them in dependency order:
// categories, products, the order, then its items. New ids are captured from
// each insert result and passed to the dependent inserts directly, so nothing
// rides on session-implicit LAST_INSERT_ID() state.
func Insert(e Execer, f Fixtures) (*Result, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixtures: %w", err)
	}

	for _, c := range f.Categories {
		if _, err := e.Exec(insertCategorySQL, c.Name, c.Slug, c.Icon); err != nil {
			if database.IsDuplicateEntry(err) {
				return nil, fmt.Errorf("category slug %q is already seeded, drop or clean the schema first: %w", c.Slug, err)
			}
			return nil, fmt.Errorf("failed to insert category %q: %w", c.Slug, err)
		}
		zap.L().Info("seeded category", zap.String("slug", c.Slug))
	}

	productIDs := make(map[string]int64, len(f.Products))
	for _, p := range f.Products {
		res, err := e.Exec(insertProductSQL, p.Title, p.Description, p.Price, p.CategorySlug, p.InStock, p.Image, p.Rating)
		if err != nil {
			if database.IsForeignKeyViolation(err) {
				return nil, fmt.Errorf("product %q references missing category %q: %w", p.Title, p.CategorySlug, err)
			}
			return nil, fmt.Errorf("failed to insert product %q: %w", p.Title, err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to read product id for %q: %w", p.Title, err)
		}
		productIDs[p.Title] = id
		zap.L().Info("seeded product", zap.String("title", p.Title), zap.Int64("id", id))
	}

	o := f.Order
	res, err := e.Exec(insertOrderSQL,
		o.BuyerName, o.BuyerEmail, o.BuyerAddress,
		o.Subtotal, o.Discount, o.DeliveryFee, o.Total,
		o.Status, o.CouponCode)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read order id: %w", err)
	}
	zap.L().Info("seeded order", zap.Int64("id", orderID), zap.String("buyer", o.BuyerName))

	for _, item := range f.Items {
		// The snapshot keeps the product id as text; a missing match leaves
		// it NULL, which the schema allows.
		var productID interface{}
		if id, ok := productIDs[item.Title]; ok {
			productID = strconv.FormatInt(id, 10)
		}

		if _, err := e.Exec(insertOrderItemSQL, orderID, productID, item.Title, item.Price, item.Quantity, item.Image); err != nil {
			if database.IsForeignKeyViolation(err) {
				return nil, fmt.Errorf("order item %q references missing order %d: %w", item.Title, orderID, err)
			}
			return nil, fmt.Errorf("failed to insert order item %q: %w", item.Title, err)
		}
		zap.L().Info("seeded order item", zap.String("title", item.Title), zap.Int("quantity", item.Quantity))
	}

	return &Result{
		Categories: len(f.Categories),
		Products:   len(f.Products),
		Orders:     1,
		Items:      len(f.Items),
		OrderID:    orderID,
	}, nil
}
