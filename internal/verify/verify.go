package verify

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pasardb/pasardb/internal/database"
	"github.com/pasardb/pasardb/internal/seed"
)

// Check is one verification result.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// Report collects the checks from one verification run.
type Report struct {
	Checks []Check `json:"checks"`
}

func (r *Report) add(name string, passed bool, format string, args ...interface{}) {
	r.Checks = append(r.Checks, Check{
		Name:   name,
		Passed: passed,
		Detail: fmt.Sprintf(format, args...),
	})
}

// Passed reports whether every check passed.
func (r *Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Failed returns the number of failed checks.
func (r *Report) Failed() int {
	failed := 0
	for _, c := range r.Checks {
		if !c.Passed {
			failed++
		}
	}
	return failed
}

// Verifier runs read-only checks of a seeded schema against the pinned
// fixtures: exact row counts, slug uniqueness, referential closure, and the
// demo order's money breakdown. It never writes.
type Verifier struct {
	db       *database.DB
	expected seed.Fixtures
}

// New creates a verifier comparing the database against the default fixtures.
func New(db *database.DB) *Verifier {
	return &Verifier{db: db, expected: seed.Default()}
}

// Run executes every check and returns the report. A query failure (missing
// table, dead connection) aborts with an error; value mismatches come back as
// failed checks instead.
func (v *Verifier) Run() (*Report, error) {
	report := &Report{}

	if err := v.checkRowCounts(report); err != nil {
		return nil, err
	}
	if err := v.checkSlugUniqueness(report); err != nil {
		return nil, err
	}
	if err := v.checkProductClosure(report); err != nil {
		return nil, err
	}
	orderID, err := v.checkOrderValues(report)
	if err != nil {
		return nil, err
	}
	if err := v.checkItems(report, orderID); err != nil {
		return nil, err
	}

	return report, nil
}

func (v *Verifier) checkRowCounts(report *Report) error {
	expected := []struct {
		table string
		want  int64
	}{
		{"categories", int64(len(v.expected.Categories))},
		{"products", int64(len(v.expected.Products))},
		{"orders", 1},
		{"order_items", int64(len(v.expected.Items))},
	}

	for _, e := range expected {
		var got int64
		if err := v.db.QueryRow("SELECT COUNT(*) FROM " + e.table).Scan(&got); err != nil {
			return fmt.Errorf("failed to count %s (is the schema set up?): %w", e.table, err)
		}
		report.add(e.table+" row count", got == e.want, "want %d, got %d", e.want, got)
	}

	return nil
}

func (v *Verifier) checkSlugUniqueness(report *Report) error {
	var total, distinct int64
	query := "SELECT COUNT(slug), COUNT(DISTINCT slug) FROM categories"
	if err := v.db.QueryRow(query).Scan(&total, &distinct); err != nil {
		return fmt.Errorf("failed to check slug uniqueness: %w", err)
	}

	report.add("category slug uniqueness", total == distinct, "%d slugs, %d distinct", total, distinct)
	return nil
}

func (v *Verifier) checkProductClosure(report *Report) error {
	var orphans int64
	query := "SELECT COUNT(*) FROM products p LEFT JOIN categories c ON p.category_slug = c.slug WHERE c.id IS NULL"
	if err := v.db.QueryRow(query).Scan(&orphans); err != nil {
		return fmt.Errorf("failed to check product references: %w", err)
	}

	report.add("product category closure", orphans == 0, "%d products with unknown category slug", orphans)
	return nil
}

func (v *Verifier) checkOrderValues(report *Report) (int64, error) {
	var id int64
	var subtotal, discount, deliveryFee, total decimal.Decimal
	var status string
	var coupon sql.NullString
	query := "SELECT id, subtotal, discount, delivery_fee, total, status, coupon_code FROM orders ORDER BY id LIMIT 1"
	if err := v.db.QueryRow(query).Scan(&id, &subtotal, &discount, &deliveryFee, &total, &status, &coupon); err != nil {
		return 0, fmt.Errorf("failed to read seeded order: %w", err)
	}

	want := v.expected.Order
	valuesOK := subtotal.Equal(want.Subtotal) &&
		discount.Equal(want.Discount) &&
		deliveryFee.Equal(want.DeliveryFee) &&
		total.Equal(want.Total) &&
		status == want.Status &&
		coupon.Valid && coupon.String == want.CouponCode
	report.add("seeded order values", valuesOK,
		"subtotal %s, discount %s, delivery_fee %s, total %s, status %s, coupon %s",
		subtotal, discount, deliveryFee, total, status, coupon.String)

	computed := subtotal.Sub(discount).Add(deliveryFee)
	report.add("order total arithmetic", computed.Equal(total),
		"subtotal - discount + delivery_fee = %s, total = %s", computed, total)

	return id, nil
}

func (v *Verifier) checkItems(report *Report, orderID int64) error {
	var orphans int64
	query := "SELECT COUNT(*) FROM order_items i LEFT JOIN orders o ON i.order_id = o.id WHERE o.id IS NULL"
	if err := v.db.QueryRow(query).Scan(&orphans); err != nil {
		return fmt.Errorf("failed to check order item references: %w", err)
	}
	report.add("order item closure", orphans == 0, "%d items with unknown order id", orphans)

	rows, err := v.db.Query("SELECT order_id, title, price, quantity FROM order_items ORDER BY id")
	if err != nil {
		return fmt.Errorf("failed to read seeded items: %w", err)
	}
	defer rows.Close()

	type itemRow struct {
		orderID  int64
		title    string
		price    decimal.Decimal
		quantity int
	}
	var got []itemRow
	for rows.Next() {
		var row itemRow
		if err := rows.Scan(&row.orderID, &row.title, &row.price, &row.quantity); err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		got = append(got, row)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read seeded items: %w", err)
	}

	itemsOK := len(got) == len(v.expected.Items)
	if itemsOK {
		for i, want := range v.expected.Items {
			row := got[i]
			if row.orderID != orderID || row.title != want.Title ||
				!row.price.Equal(want.Price) || row.quantity != want.Quantity {
				itemsOK = false
				break
			}
		}
	}
	report.add("seeded item values", itemsOK, "%d items, all bound to order %d", len(got), orderID)

	return nil
}
