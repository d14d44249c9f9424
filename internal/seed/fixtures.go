package seed

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"

	"github.com/pasardb/pasardb/internal/models"
)

// Fixtures is the deterministic seed set: exactly four categories, five
// products, and one demo order with two line items.
type Fixtures struct {
	Categories []models.Category
	Products   []models.Product
	Order      models.Order
	Items      []models.OrderItem
}

// Default returns the pinned storefront fixtures. Item rows copy title,
// price, and image from the product they snapshot; the loader fills in
// product and order ids after the parent inserts.
func Default() Fixtures {
	categories := []models.Category{
		{Name: "Buah & Sayur", Slug: "buah-sayur", Icon: "apple"},
		{Name: "Makanan Ringan", Slug: "makanan-ringan", Icon: "cookie"},
		{Name: "Minuman", Slug: "minuman", Icon: "cup-soda"},
		{Name: "Sembako", Slug: "sembako", Icon: "wheat"},
	}

	products := []models.Product{
		{
			Title:        "Apel Fuji 1kg",
			Description:  "Apel Fuji segar kemasan 1 kg, manis dan renyah.",
			Price:        decimal.RequireFromString("35000.00"),
			CategorySlug: "buah-sayur",
			InStock:      true,
			Rating:       decimal.RequireFromString("4.80"),
		},
		{
			Title:        "Keripik Kentang 100g",
			Description:  "Keripik kentang gurih kemasan 100 g.",
			Price:        decimal.RequireFromString("12000.00"),
			CategorySlug: "makanan-ringan",
			InStock:      true,
			Rating:       decimal.RequireFromString("4.50"),
		},
		{
			Title:        "Teh Melati Botol 450ml",
			Description:  "Teh melati siap minum botol 450 ml.",
			Price:        decimal.RequireFromString("5500.00"),
			CategorySlug: "minuman",
			InStock:      true,
			Rating:       decimal.RequireFromString("4.30"),
		},
		{
			Title:        "Beras Pulen 5kg",
			Description:  "Beras pulen kualitas premium karung 5 kg.",
			Price:        decimal.RequireFromString("68000.00"),
			CategorySlug: "sembako",
			InStock:      true,
			Rating:       decimal.RequireFromString("4.90"),
		},
		{
			Title:        "Minyak Goreng 2L",
			Description:  "Minyak goreng sawit jernih pouch 2 liter.",
			Price:        decimal.RequireFromString("44500.00"),
			CategorySlug: "sembako",
			InStock:      false,
			Rating:       decimal.RequireFromString("4.60"),
		},
	}
	for i := range products {
		products[i].Image = "/images/products/" + slug.Make(products[i].Title) + ".jpg"
	}

	order := models.Order{
		BuyerName:    "Budi Santoso",
		BuyerEmail:   "budi.santoso@example.com",
		BuyerAddress: "Jl. Melati No. 12, Bandung 40132",
		Subtotal:     decimal.RequireFromString("87000.00"),
		Discount:     decimal.RequireFromString("8700.00"),
		DeliveryFee:  decimal.RequireFromString("15000.00"),
		Total:        decimal.RequireFromString("93300.00"),
		Status:       models.OrderStatusPending,
		CouponCode:   "HEMAT10",
	}

	items := []models.OrderItem{
		{
			Title:    products[0].Title,
			Price:    products[0].Price,
			Quantity: 1,
			Image:    products[0].Image,
		},
		{
			Title:    products[1].Title,
			Price:    products[1].Price,
			Quantity: 2,
			Image:    products[1].Image,
		},
	}

	return Fixtures{
		Categories: categories,
		Products:   products,
		Order:      order,
		Items:      items,
	}
}

// NewValidator builds the fixture validator: decimal fields compare as
// numbers and the slug rule accepts URL-safe identifiers only.
func NewValidator() (*validator.Validate, error) {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})
	if err := v.RegisterValidation("slug", validateSlug); err != nil {
		return nil, fmt.Errorf("failed to register slug rule: %w", err)
	}

	return v, nil
}

func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validateSlug(fl validator.FieldLevel) bool {
	return slug.IsSlug(fl.Field().String())
}

// Validate checks every fixture struct against its field constraints, then
// the set-level properties the engine would otherwise reject later: category
// slugs are pairwise distinct and every product references a fixture
// category.
func (f Fixtures) Validate() error {
	v, err := NewValidator()
	if err != nil {
		return err
	}

	slugs := make(map[string]bool, len(f.Categories))
	for _, c := range f.Categories {
		if err := v.Struct(c); err != nil {
			return fmt.Errorf("invalid category %q: %w", c.Slug, err)
		}
		if slugs[c.Slug] {
			return fmt.Errorf("duplicate category slug %q", c.Slug)
		}
		slugs[c.Slug] = true
	}

	for _, p := range f.Products {
		if err := v.Struct(p); err != nil {
			return fmt.Errorf("invalid product %q: %w", p.Title, err)
		}
		if !slugs[p.CategorySlug] {
			return fmt.Errorf("product %q references unknown category slug %q", p.Title, p.CategorySlug)
		}
	}

	if err := v.Struct(f.Order); err != nil {
		return fmt.Errorf("invalid order: %w", err)
	}

	for _, item := range f.Items {
		if err := v.Struct(item); err != nil {
			return fmt.Errorf("invalid order item %q: %w", item.Title, err)
		}
	}

	return nil
}
