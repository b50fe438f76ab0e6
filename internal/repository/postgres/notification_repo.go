package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"shopadmin-service/internal/domain/notification"
	xerrors "shopadmin-service/internal/pkg/errors"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	query := `
		INSERT INTO notifications (title, message, type, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	var metadataJSON []byte
	var err error
	if n.Metadata != nil {
		metadataJSON, err = json.Marshal(n.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
	}

	err = r.db.QueryRow(ctx, query, n.Title, n.Message, n.Type, metadataJSON).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id int64) (*notification.Notification, error) {
	query := `
		SELECT id, title, message, type, metadata, is_read, created_at, read_at
		FROM notifications
		WHERE id = $1
	`

	var n notification.Notification
	var metadataJSON []byte

	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.Title, &n.Message, &n.Type, &metadataJSON, &n.IsRead, &n.CreatedAt, &n.ReadAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find notification %d: %w", id, classifyError(err))
	}

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &n.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	return &n, nil
}

func (r *NotificationRepository) List(ctx context.Context, filters *notification.NotificationListFilters) ([]notification.Notification, int64, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filters.IsRead != nil {
		conditions = append(conditions, fmt.Sprintf("is_read = $%d", argPos))
		args = append(args, *filters.IsRead)
		argPos++
	}
	if filters.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argPos))
		args = append(args, *filters.Type)
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM notifications WHERE %s", whereClause)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}
	offset := (filters.Page - 1) * filters.PageSize

	query := fmt.Sprintf(`
		SELECT id, title, message, type, metadata, is_read, created_at, read_at
		FROM notifications
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)
	args = append(args, filters.PageSize, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		var metadataJSON []byte
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &metadataJSON, &n.IsRead, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &n.Metadata); err != nil {
				return nil, 0, fmt.Errorf("failed to unmarshal metadata: %w", err)
			}
		}
		notifications = append(notifications, n)
	}

	return notifications, total, rows.Err()
}

func (r *NotificationRepository) Latest(ctx context.Context, limit int) ([]notification.Notification, error) {
	filters := &notification.NotificationListFilters{Page: 1, PageSize: limit}
	notifications, _, err := r.List(ctx, filters)
	return notifications, err
}

func (r *NotificationRepository) UnreadCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE NOT is_read`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE notifications SET is_read = TRUE, read_at = NOW() WHERE id = $1 AND NOT is_read`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either absent or already read; distinguish for the caller.
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE, read_at = NOW() WHERE NOT is_read`)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %d: %w", id, xerrors.ErrNotFound)
	}

	return nil
}
