package catalog

import (
	"database/sql"
	"time"

	"shopadmin-service/internal/domain/pricing"
)

type ProductStatus string

const (
	ProductStatusEnabled  ProductStatus = "enabled"
	ProductStatusDisabled ProductStatus = "disabled"
)

type Category struct {
	ID          int64          `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Description sql.NullString `json:"description,omitempty" db:"description"`
	ImageURL    sql.NullString `json:"image_url,omitempty" db:"image_url"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

type Subcategory struct {
	ID         int64          `json:"id" db:"id"`
	CategoryID int64          `json:"category_id" db:"category_id"`
	Name       string         `json:"name" db:"name"`
	ImageURL   sql.NullString `json:"image_url,omitempty" db:"image_url"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"`
}

type Product struct {
	ID            int64          `json:"id" db:"id"`
	Name          string         `json:"name" db:"name"`
	Description   sql.NullString `json:"description,omitempty" db:"description"`
	ImageURL      sql.NullString `json:"image_url,omitempty" db:"image_url"`
	CategoryID    sql.NullInt64  `json:"category_id,omitempty" db:"category_id"`
	SubcategoryID sql.NullInt64  `json:"subcategory_id,omitempty" db:"subcategory_id"`

	// Pricing: final_price is derived from the three fields above it plus
	// the attached deal; it is a cached value, never authoritative.
	BasePrice      float64              `json:"base_price" db:"base_price"`
	DiscountAmount float64              `json:"discount" db:"discount"`
	DiscountKind   pricing.DiscountKind `json:"discount_type" db:"discount_type"`
	DealID         sql.NullInt64        `json:"deal_id,omitempty" db:"deal_id"`
	FinalPrice     float64              `json:"final_price" db:"final_price"`

	Stock     int           `json:"stock" db:"stock"`
	Status    ProductStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}
