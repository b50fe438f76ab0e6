package catalog

import "shopadmin-service/internal/domain/pricing"

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=120"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type CreateSubcategoryRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	ImageURL string `json:"image_url"`
}

type UpdateSubcategoryRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=120"`
	ImageURL *string `json:"image_url,omitempty"`
}

type CreateProductRequest struct {
	Name           string               `json:"name" binding:"required,max=255"`
	Description    string               `json:"description"`
	ImageURL       string               `json:"image_url"`
	CategoryID     *int64               `json:"category_id,omitempty"`
	SubcategoryID  *int64               `json:"subcategory_id,omitempty"`
	BasePrice      float64              `json:"base_price" binding:"min=0"`
	DiscountAmount float64              `json:"discount" binding:"min=0"`
	DiscountKind   pricing.DiscountKind `json:"discount_type" binding:"required"`
	DealID         *int64               `json:"deal_id,omitempty"`
	Stock          int                  `json:"stock" binding:"min=0"`
}

type UpdateProductRequest struct {
	Name           *string               `json:"name,omitempty" binding:"omitempty,max=255"`
	Description    *string               `json:"description,omitempty"`
	ImageURL       *string               `json:"image_url,omitempty"`
	CategoryID     *int64                `json:"category_id,omitempty"`
	SubcategoryID  *int64                `json:"subcategory_id,omitempty"`
	BasePrice      *float64              `json:"base_price,omitempty" binding:"omitempty,min=0"`
	DiscountAmount *float64              `json:"discount,omitempty" binding:"omitempty,min=0"`
	DiscountKind   *pricing.DiscountKind `json:"discount_type,omitempty"`
	DealID         *int64                `json:"deal_id,omitempty"`
	ClearDeal      bool                  `json:"clear_deal,omitempty"`
	Stock          *int                  `json:"stock,omitempty" binding:"omitempty,min=0"`
}

type ProductListFilters struct {
	CategoryID    *int64         `form:"category_id"`
	SubcategoryID *int64         `form:"subcategory_id"`
	DealID        *int64         `form:"deal_id"`
	Status        *ProductStatus `form:"status"`
	Page          int            `form:"page"`
	PageSize      int            `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type ProductListResponse struct {
	Products   []Product `json:"products"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}
