package seed

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasardb/pasardb/internal/models"
)

func TestDefaultShape(t *testing.T) {
	f := Default()

	require.Len(t, f.Categories, 4)
	require.Len(t, f.Products, 5)
	require.Len(t, f.Items, 2)

	// Slugs are pairwise distinct and every product references one of them.
	slugs := make(map[string]bool)
	for _, c := range f.Categories {
		assert.False(t, slugs[c.Slug], "slug %q appears twice", c.Slug)
		slugs[c.Slug] = true
	}
	for _, p := range f.Products {
		assert.True(t, slugs[p.CategorySlug], "product %q references unknown slug %q", p.Title, p.CategorySlug)
	}
}

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefaultOrderMoney(t *testing.T) {
	o := Default().Order

	assert.True(t, o.Subtotal.Equal(decimal.RequireFromString("87000.00")))
	assert.True(t, o.Discount.Equal(decimal.RequireFromString("8700.00")))
	assert.True(t, o.DeliveryFee.Equal(decimal.RequireFromString("15000.00")))
	assert.True(t, o.Total.Equal(decimal.RequireFromString("93300.00")))
	assert.Equal(t, models.OrderStatusPending, o.Status)
	assert.Equal(t, "HEMAT10", o.CouponCode)

	// total = subtotal - discount + delivery_fee
	computed := o.Subtotal.Sub(o.Discount).Add(o.DeliveryFee)
	assert.True(t, computed.Equal(o.Total), "computed %s, pinned %s", computed, o.Total)
}

func TestDefaultItemsSnapshotProducts(t *testing.T) {
	f := Default()

	apel, keripik := f.Products[0], f.Products[1]
	require.Equal(t, "Apel Fuji 1kg", apel.Title)
	require.Equal(t, "Keripik Kentang 100g", keripik.Title)

	assert.Equal(t, apel.Title, f.Items[0].Title)
	assert.True(t, f.Items[0].Price.Equal(apel.Price))
	assert.Equal(t, 1, f.Items[0].Quantity)
	assert.Equal(t, apel.Image, f.Items[0].Image)

	assert.Equal(t, keripik.Title, f.Items[1].Title)
	assert.True(t, f.Items[1].Price.Equal(keripik.Price))
	assert.Equal(t, 2, f.Items[1].Quantity)
	assert.Equal(t, keripik.Image, f.Items[1].Image)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *Fixtures)
	}{
		{
			name: "duplicate category slug",
			mutate: func(f *Fixtures) {
				f.Categories[1].Slug = f.Categories[0].Slug
			},
		},
		{
			name: "slug with spaces",
			mutate: func(f *Fixtures) {
				f.Categories[0].Slug = "buah sayur"
			},
		},
		{
			name: "product references unknown category",
			mutate: func(f *Fixtures) {
				f.Products[0].CategorySlug = "tidak-ada"
			},
		},
		{
			name: "negative price",
			mutate: func(f *Fixtures) {
				f.Products[0].Price = decimal.RequireFromString("-1.00")
			},
		},
		{
			name: "rating above five",
			mutate: func(f *Fixtures) {
				f.Products[0].Rating = decimal.RequireFromString("5.10")
			},
		},
		{
			name: "zero quantity",
			mutate: func(f *Fixtures) {
				f.Items[0].Quantity = 0
			},
		},
		{
			name: "invalid buyer email",
			mutate: func(f *Fixtures) {
				f.Order.BuyerEmail = "not-an-email"
			},
		},
		{
			name: "empty buyer name",
			mutate: func(f *Fixtures) {
				f.Order.BuyerName = ""
			},
		},
		{
			name: "unknown order status",
			mutate: func(f *Fixtures) {
				f.Order.Status = "delivered"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Default()
			tt.mutate(&f)
			assert.Error(t, f.Validate())
		})
	}
}

func TestSlugRule(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	type subject struct {
		Slug string `validate:"slug"`
	}

	tests := []struct {
		slug  string
		valid bool
	}{
		{"buah-sayur", true},
		{"makanan-ringan", true},
		{"sembako", true},
		{"Buah-Sayur", false},
		{"buah sayur", false},
		{"buah_sayur&", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			err := v.Struct(subject{Slug: tt.slug})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
