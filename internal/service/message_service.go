package service

import (
	"context"
	"fmt"
	"time"

	"barbershop-api/internal/domain"
	"barbershop-api/internal/repository"
)

// CreateMessageInput carries a contact-form submission.
type CreateMessageInput struct {
	Name    string
	Email   string
	Phone   *string
	Subject *string
	Message string
}

// MessageService defines the interface for contact message business logic.
type MessageService interface {
	Create(ctx context.Context, in CreateMessageInput) (*domain.Message, error)
	List(ctx context.Context) ([]*domain.Message, error)
	ListByMonth(ctx context.Context, month int) ([]*domain.Message, error)
	UpdateStatus(ctx context.Context, id int64, status domain.MessageStatus) error
}

type messageService struct {
	repo     *repository.Repository
	notifier NotificationService
	now      func() time.Time
}

// NewMessageService creates a new instance of MessageService.
func NewMessageService(repo *repository.Repository, notifier NotificationService) MessageService {
	return &messageService{repo: repo, notifier: notifier, now: time.Now}
}

// Create persists a contact message and emits a message notification.
func (s *messageService) Create(ctx context.Context, in CreateMessageInput) (*domain.Message, error) {
	now := s.now()
	message := &domain.Message{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    domain.MessageStatusUnread,
		CreatedAt: now,
		Month:     domain.MonthBucket(now),
	}

	if err := s.repo.Messages.Create(ctx, message); err != nil {
		return nil, err
	}

	_, _ = s.notifier.Emit(
		ctx,
		domain.NotificationTypeMessage,
		"New message",
		fmt.Sprintf("New message from %s", message.Name),
		&message.ID,
	)

	return message, nil
}

// List retrieves all messages.
func (s *messageService) List(ctx context.Context) ([]*domain.Message, error) {
	return s.repo.Messages.List(ctx)
}

// ListByMonth retrieves the messages bucketed under a YYYYMM month.
func (s *messageService) ListByMonth(ctx context.Context, month int) ([]*domain.Message, error) {
	return s.repo.Messages.ListByMonth(ctx, month)
}

// UpdateStatus marks a message unread, read or replied. The read-tracking
// flag is free-form; no transition guard applies.
func (s *messageService) UpdateStatus(ctx context.Context, id int64, status domain.MessageStatus) error {
	if !domain.ValidMessageStatus(status) {
		return ErrInvalidStatus
	}
	return s.repo.Messages.UpdateStatus(ctx, id, status)
}
