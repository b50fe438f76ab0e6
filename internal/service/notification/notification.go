package notification

import (
	"context"

	"go.uber.org/zap"

	"shopadmin-service/internal/domain/notification"
)

type Service struct {
	notifications notification.Repository
	logger        *zap.Logger
}

func NewService(notifications notification.Repository, logger *zap.Logger) *Service {
	return &Service{notifications: notifications, logger: logger}
}

func (s *Service) CreateNotification(ctx context.Context, req *notification.CreateNotificationRequest) (*notification.Notification, error) {
	typ := req.Type
	if typ == "" {
		typ = notification.TypeSystem
	}

	n := &notification.Notification{
		Title:    req.Title,
		Message:  req.Message,
		Type:     typ,
		Metadata: req.Metadata,
	}

	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Error("failed to create notification", zap.Error(err))
		return nil, err
	}

	return n, nil
}

func (s *Service) ListNotifications(ctx context.Context, filters *notification.NotificationListFilters) (*notification.NotificationListResponse, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}

	notifications, total, err := s.notifications.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.PageSize) - 1) / int64(filters.PageSize))
	return &notification.NotificationListResponse{
		Notifications: notifications,
		Total:         total,
		Page:          filters.Page,
		PageSize:      filters.PageSize,
		TotalPages:    totalPages,
	}, nil
}

func (s *Service) LatestNotifications(ctx context.Context, limit int) ([]notification.Notification, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.notifications.Latest(ctx, limit)
}

func (s *Service) UnreadCount(ctx context.Context) (int64, error) {
	return s.notifications.UnreadCount(ctx)
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	return s.notifications.MarkRead(ctx, id)
}

func (s *Service) MarkAllRead(ctx context.Context) (int64, error) {
	count, err := s.notifications.MarkAllRead(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.Info("notifications marked read", zap.Int64("count", count))
	return count, nil
}

func (s *Service) DeleteNotification(ctx context.Context, id int64) error {
	return s.notifications.Delete(ctx, id)
}
