package notification

import (
	"database/sql"
	"time"
)

type NotificationType string

const (
	TypeSystem NotificationType = "system"
	TypeOrder  NotificationType = "order"
	TypeStock  NotificationType = "stock"
	TypeInfo   NotificationType = "info"
)

// Notification is a stored admin-facing record; this service does not
// deliver notifications anywhere.
type Notification struct {
	ID        int64                  `json:"id" db:"id"`
	Title     string                 `json:"title" db:"title"`
	Message   string                 `json:"message" db:"message"`
	Type      NotificationType       `json:"type" db:"type"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" db:"metadata"`
	IsRead    bool                   `json:"is_read" db:"is_read"`
	CreatedAt time.Time              `json:"created_at" db:"created_at"`
	ReadAt    sql.NullTime           `json:"read_at,omitempty" db:"read_at"`
}

type CreateNotificationRequest struct {
	Title    string                 `json:"title" binding:"required,max=255"`
	Message  string                 `json:"message" binding:"required"`
	Type     NotificationType       `json:"type"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type NotificationListFilters struct {
	IsRead   *bool             `form:"is_read"`
	Type     *NotificationType `form:"type"`
	Page     int               `form:"page"`
	PageSize int               `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
	Total         int64          `json:"total"`
	Page          int            `json:"page"`
	PageSize      int            `json:"page_size"`
	TotalPages    int            `json:"total_pages"`
}
