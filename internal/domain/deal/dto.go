package deal

import "time"

type CreateDealRequest struct {
	Title           string    `json:"title" binding:"required,max=255"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"image_url"`
	DiscountPercent float64   `json:"discount_percent" binding:"min=0,max=100"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
}

type UpdateDealRequest struct {
	Title           *string    `json:"title,omitempty" binding:"omitempty,max=255"`
	Description     *string    `json:"description,omitempty"`
	ImageURL        *string    `json:"image_url,omitempty"`
	DiscountPercent *float64   `json:"discount_percent,omitempty" binding:"omitempty,min=0,max=100"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
}
