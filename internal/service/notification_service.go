package service

import (
	"context"
	"time"

	"barbershop-api/internal/domain"
	"barbershop-api/internal/repository"
)

// NotificationService defines the interface for admin notification logic.
// Emit is invoked synchronously after each domain-event commit; it is not
// transactional with the triggering write.
type NotificationService interface {
	Emit(ctx context.Context, typ domain.NotificationType, title, message string, relatedID *int64) (*domain.Notification, error)
	List(ctx context.Context) ([]*domain.Notification, error)
	ListUnread(ctx context.Context) ([]*domain.Notification, error)
	MarkAsRead(ctx context.Context, id int64) error
}

type notificationService struct {
	repo *repository.Repository
	now  func() time.Time
}

// NewNotificationService creates a new instance of NotificationService.
func NewNotificationService(repo *repository.Repository) NotificationService {
	return &notificationService{repo: repo, now: time.Now}
}

// Emit records a notification for a domain event.
func (s *notificationService) Emit(ctx context.Context, typ domain.NotificationType, title, message string, relatedID *int64) (*domain.Notification, error) {
	notification := &domain.Notification{
		Title:     title,
		Message:   message,
		Type:      typ,
		IsRead:    false,
		RelatedID: relatedID,
		CreatedAt: s.now(),
	}

	if err := s.repo.Notifications.Create(ctx, notification); err != nil {
		return nil, err
	}

	return notification, nil
}

// List retrieves all notifications.
func (s *notificationService) List(ctx context.Context) ([]*domain.Notification, error) {
	return s.repo.Notifications.List(ctx)
}

// ListUnread retrieves notifications not yet seen by an admin.
func (s *notificationService) ListUnread(ctx context.Context) ([]*domain.Notification, error) {
	return s.repo.Notifications.ListUnread(ctx)
}

// MarkAsRead flags a notification as seen.
func (s *notificationService) MarkAsRead(ctx context.Context, id int64) error {
	return s.repo.Notifications.MarkAsRead(ctx, id)
}
