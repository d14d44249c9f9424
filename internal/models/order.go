package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a placed order with its money breakdown. The schema does
// not enforce that Total equals Subtotal - Discount + DeliveryFee, nor valid
// status transitions; both belong to the application layer on top.
type Order struct {
	ID           int64           `json:"id" db:"id"`
	BuyerName    string          `json:"buyer_name" db:"buyer_name" validate:"required,max=150"`
	BuyerEmail   string          `json:"buyer_email" db:"buyer_email" validate:"required,email,max=255"`
	BuyerAddress string          `json:"buyer_address" db:"buyer_address" validate:"required,max=500"`
	Subtotal     decimal.Decimal `json:"subtotal" db:"subtotal" validate:"gte=0"`
	Discount     decimal.Decimal `json:"discount" db:"discount" validate:"gte=0"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee" db:"delivery_fee" validate:"gte=0"`
	Total        decimal.Decimal `json:"total" db:"total" validate:"gte=0"`
	Status       string          `json:"status" db:"status" validate:"required,oneof=pending paid shipped completed cancelled"`
	CouponCode   string          `json:"coupon_code" db:"coupon_code" validate:"omitempty,max=64"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// OrderItem represents one line of an order. ProductID is a free-text
// snapshot reference, not a foreign key: title, price, and image are copied
// from the product at order time so history survives catalog changes.
type OrderItem struct {
	ID        int64           `json:"id" db:"id"`
	OrderID   int64           `json:"order_id" db:"order_id"`
	ProductID string          `json:"product_id" db:"product_id" validate:"omitempty,max=64"`
	Title     string          `json:"title" db:"title" validate:"required,max=255"`
	Price     decimal.Decimal `json:"price" db:"price" validate:"gte=0"`
	Quantity  int             `json:"quantity" db:"quantity" validate:"gte=1"`
	Image     string          `json:"image" db:"image" validate:"omitempty,max=512"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)
