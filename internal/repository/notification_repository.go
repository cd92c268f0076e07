package repository

import (
	"context"
	"errors"
	"fmt"

	"barbershop-api/internal/domain"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification data access.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	List(ctx context.Context) ([]*domain.Notification, error)
	ListUnread(ctx context.Context) ([]*domain.Notification, error)
	CountUnread(ctx context.Context) (int, error)
	MarkAsRead(ctx context.Context, id int64) error
}

type notificationRepository struct {
	db DBTX
}

// NewNotificationRepository creates a new instance of NotificationRepository.
func NewNotificationRepository(db DBTX) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create inserts a new notification and fills in the generated ID.
func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	query := `
		INSERT INTO notifications (title, message, type, is_read, related_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		notification.Title,
		notification.Message,
		notification.Type,
		notification.IsRead,
		notification.RelatedID,
		notification.CreatedAt,
	).Scan(&notification.ID)

	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// List retrieves all notifications, newest first.
func (r *notificationRepository) List(ctx context.Context) ([]*domain.Notification, error) {
	return r.queryNotifications(ctx, `
		SELECT id, title, message, type, is_read, related_id, created_at
		FROM notifications
		ORDER BY created_at DESC
	`)
}

// ListUnread retrieves notifications not yet seen by an admin, newest first.
func (r *notificationRepository) ListUnread(ctx context.Context) ([]*domain.Notification, error) {
	return r.queryNotifications(ctx, `
		SELECT id, title, message, type, is_read, related_id, created_at
		FROM notifications
		WHERE is_read = FALSE
		ORDER BY created_at DESC
	`)
}

// CountUnread counts notifications not yet seen by an admin.
func (r *notificationRepository) CountUnread(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications WHERE is_read = FALSE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkAsRead flags a notification as seen.
func (r *notificationRepository) MarkAsRead(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

func (r *notificationRepository) queryNotifications(ctx context.Context, query string, args ...any) ([]*domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*domain.Notification{}
	for rows.Next() {
		notification := &domain.Notification{}
		err := rows.Scan(
			&notification.ID,
			&notification.Title,
			&notification.Message,
			&notification.Type,
			&notification.IsRead,
			&notification.RelatedID,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, notification)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}
