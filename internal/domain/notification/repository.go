package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	FindByID(ctx context.Context, id int64) (*Notification, error)
	List(ctx context.Context, filters *NotificationListFilters) ([]Notification, int64, error)
	Latest(ctx context.Context, limit int) ([]Notification, error)
	UnreadCount(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}
