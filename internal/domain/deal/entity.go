package deal

import (
	"database/sql"
	"time"
)

type DealStatus string

const (
	DealStatusEnabled  DealStatus = "enabled"
	DealStatusDisabled DealStatus = "disabled"
)

// Deal is a time/status-gated additional discount percentage applied on top
// of a product's own discount.
type Deal struct {
	ID              int64          `json:"id" db:"id"`
	Title           string         `json:"title" db:"title"`
	Description     sql.NullString `json:"description,omitempty" db:"description"`
	ImageURL        sql.NullString `json:"image_url,omitempty" db:"image_url"`
	DiscountPercent float64        `json:"discount_percent" db:"discount_percent"`
	StartDate       time.Time      `json:"start_date" db:"start_date"`
	EndDate         time.Time      `json:"end_date" db:"end_date"`
	Status          DealStatus     `json:"status" db:"status"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// Enabled reports whether the deal may contribute its discount to product pricing.
func (d *Deal) Enabled() bool {
	return d.Status == DealStatusEnabled
}
