package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category represents a product category in the storefront catalog
type Category struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required,max=100"`
	Slug      string    `json:"slug" db:"slug" validate:"required,slug,max=100"`
	Icon      string    `json:"icon" db:"icon" validate:"omitempty,max=64"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Product represents a catalog product tagged to one category by slug
type Product struct {
	ID           int64           `json:"id" db:"id"`
	Title        string          `json:"title" db:"title" validate:"required,max=255"`
	Description  string          `json:"description" db:"description"`
	Price        decimal.Decimal `json:"price" db:"price" validate:"gte=0"`
	CategorySlug string          `json:"category_slug" db:"category_slug" validate:"required,slug,max=100"`
	InStock      bool            `json:"in_stock" db:"in_stock"`
	Image        string          `json:"image" db:"image" validate:"omitempty,max=512"`
	Rating       decimal.Decimal `json:"rating" db:"rating" validate:"gte=0,lte=5"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}
