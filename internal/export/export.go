package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/pasardb/pasardb/internal/database"
	"github.com/pasardb/pasardb/internal/seed"
)

// Script renders the whole artifact as one MySQL script: drops in reverse
// dependency order, table DDL in creation order, then the seed rows. The
// output is deterministic and meant to be pasted into an administrative tool
// or piped through the mysql client.
func Script(f seed.Fixtures) string {
	var b strings.Builder

	b.WriteString("-- pasardb: supermarket storefront schema and demo seed\n")
	b.WriteString("-- Import with: mysql -u <user> -p <database> < pasardb.sql\n\n")

	b.WriteString("-- Schema\n")
	for i := len(database.TableNames) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "DROP TABLE IF EXISTS %s;\n", database.TableNames[i])
	}
	b.WriteString("\n")
	for _, stmt := range database.CreateStatements() {
		b.WriteString(stmt)
		b.WriteString(";\n\n")
	}

	b.WriteString("-- Seed data\n")
	writeCategories(&b, f)
	writeProducts(&b, f)
	writeOrder(&b, f)

	return b.String()
}

// Write renders the script to w.
func Write(w io.Writer, f seed.Fixtures) error {
	if _, err := io.WriteString(w, Script(f)); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	return nil
}

func writeCategories(b *strings.Builder, f seed.Fixtures) {
	b.WriteString("INSERT INTO categories (name, slug, icon) VALUES\n")
	for i, c := range f.Categories {
		fmt.Fprintf(b, "    (%s, %s, %s)%s\n",
			quote(c.Name), quote(c.Slug), quote(c.Icon), rowEnd(i, len(f.Categories)))
	}
	b.WriteString("\n")
}

func writeProducts(b *strings.Builder, f seed.Fixtures) {
	b.WriteString("INSERT INTO products (title, description, price, category_slug, in_stock, image, rating) VALUES\n")
	for i, p := range f.Products {
		fmt.Fprintf(b, "    (%s, %s, %s, %s, %s, %s, %s)%s\n",
			quote(p.Title), quote(p.Description), p.Price.StringFixed(2),
			quote(p.CategorySlug), boolLit(p.InStock), quote(p.Image),
			p.Rating.StringFixed(2), rowEnd(i, len(f.Products)))
	}
	b.WriteString("\n")
}

func writeOrder(b *strings.Builder, f seed.Fixtures) {
	o := f.Order
	b.WriteString("INSERT INTO orders (buyer_name, buyer_email, buyer_address, subtotal, discount, delivery_fee, total, status, coupon_code) VALUES\n")
	fmt.Fprintf(b, "    (%s, %s, %s, %s, %s, %s, %s, %s, %s);\n\n",
		quote(o.BuyerName), quote(o.BuyerEmail), quote(o.BuyerAddress),
		o.Subtotal.StringFixed(2), o.Discount.StringFixed(2),
		o.DeliveryFee.StringFixed(2), o.Total.StringFixed(2),
		quote(o.Status), quote(o.CouponCode))

	// Items must reference the order inserted just above, so its id is
	// captured before any further statements run.
	b.WriteString("SET @seed_order_id = LAST_INSERT_ID();\n\n")

	b.WriteString("INSERT INTO order_items (order_id, product_id, title, price, quantity, image) VALUES\n")
	for i, item := range f.Items {
		fmt.Fprintf(b, "    (@seed_order_id, %s, %s, %s, %d, %s)%s\n",
			productRef(f, item.Title), quote(item.Title),
			item.Price.StringFixed(2), item.Quantity, quote(item.Image),
			rowEnd(i, len(f.Items)))
	}
}

// productRef returns the id a product will receive in a fresh import: the
// script always drops and recreates, so AUTO_INCREMENT assigns 1..n in
// insert order. Items without a matching product keep a NULL reference.
func productRef(f seed.Fixtures, title string) string {
	for i, p := range f.Products {
		if p.Title == title {
			return quote(fmt.Sprintf("%d", i+1))
		}
	}
	return "NULL"
}

func rowEnd(i, n int) string {
	if i == n-1 {
		return ";"
	}
	return ","
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", "''")
	return "'" + s + "'"
}

func boolLit(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
