package order

import (
	"database/sql"
	"time"
)

type OrderStatus string

const (
	StatusPlaced    OrderStatus = "placed"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// allowedTransitions is the order status pipeline. Delivered and cancelled
// are terminal.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusPlaced:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered},
}

// CanTransition reports whether moving from one status to another is allowed.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID            int64          `json:"id" db:"id"`
	Reference     string         `json:"reference" db:"reference"`
	CustomerName  string         `json:"customer_name" db:"customer_name"`
	CustomerPhone string         `json:"customer_phone" db:"customer_phone"`
	CustomerEmail sql.NullString `json:"customer_email,omitempty" db:"customer_email"`
	Address       sql.NullString `json:"address,omitempty" db:"address"`
	PromoCode     sql.NullString `json:"promo_code,omitempty" db:"promo_code"`
	Total         float64        `json:"total" db:"total"`
	Status        OrderStatus    `json:"status" db:"status"`
	Items         []OrderItem    `json:"items"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// OrderItem captures the unit price at order time; later product re-pricing
// never rewrites placed orders.
type OrderItem struct {
	ID        int64   `json:"id" db:"id"`
	OrderID   int64   `json:"order_id" db:"order_id"`
	ProductID int64   `json:"product_id" db:"product_id"`
	Quantity  int     `json:"quantity" db:"quantity"`
	UnitPrice float64 `json:"unit_price" db:"unit_price"`
}

type CreateOrderItem struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerName  string            `json:"customer_name" binding:"required,max=255"`
	CustomerPhone string            `json:"customer_phone" binding:"required,max=30"`
	CustomerEmail string            `json:"customer_email" binding:"omitempty,email"`
	Address       string            `json:"address"`
	PromoCode     string            `json:"promo_code"`
	Items         []CreateOrderItem `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
}

type OrderListFilters struct {
	Status   *OrderStatus `form:"status"`
	Page     int          `form:"page"`
	PageSize int          `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type OrderListResponse struct {
	Orders     []Order `json:"orders"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
}
