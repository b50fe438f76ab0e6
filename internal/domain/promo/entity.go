package promo

import (
	"database/sql"
	"time"
)

type PromoStatus string

const (
	PromoStatusActive   PromoStatus = "active"
	PromoStatusInactive PromoStatus = "inactive"
)

// Promo is a redeemable discount code with a validity window and usage limits.
type Promo struct {
	ID              int64          `json:"id" db:"id"`
	Code            string         `json:"code" db:"code"`
	Description     sql.NullString `json:"description,omitempty" db:"description"`
	DiscountPercent float64        `json:"discount_percent" db:"discount_percent"`
	MaxUses         sql.NullInt32  `json:"max_uses,omitempty" db:"max_uses"`
	CurrentUses     int            `json:"current_uses" db:"current_uses"`
	StartDate       time.Time      `json:"start_date" db:"start_date"`
	EndDate         time.Time      `json:"end_date" db:"end_date"`
	Status          PromoStatus    `json:"status" db:"status"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// Exhausted reports whether the promo has reached its usage limit.
func (p *Promo) Exhausted() bool {
	return p.MaxUses.Valid && p.CurrentUses >= int(p.MaxUses.Int32)
}

type CreatePromoRequest struct {
	Code            string    `json:"code" binding:"omitempty,max=40"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discount_percent" binding:"min=0,max=100"`
	MaxUses         *int32    `json:"max_uses,omitempty" binding:"omitempty,min=1"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
}

type UpdatePromoRequest struct {
	Description     *string    `json:"description,omitempty"`
	DiscountPercent *float64   `json:"discount_percent,omitempty" binding:"omitempty,min=0,max=100"`
	MaxUses         *int32     `json:"max_uses,omitempty" binding:"omitempty,min=1"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	Status          *PromoStatus `json:"status,omitempty"`
}

type ValidatePromoResponse struct {
	Code            string  `json:"code"`
	DiscountPercent float64 `json:"discount_percent"`
	Valid           bool    `json:"valid"`
}
