package repository

import (
	"context"
	"errors"
	"fmt"

	"barbershop-api/internal/domain"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the interface for contact message data access.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	List(ctx context.Context) ([]*domain.Message, error)
	ListByMonth(ctx context.Context, month int) ([]*domain.Message, error)
	CountByMonth(ctx context.Context, month int) (int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.MessageStatus) error
}

type messageRepository struct {
	db DBTX
}

// NewMessageRepository creates a new instance of MessageRepository.
func NewMessageRepository(db DBTX) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts a new message and fills in the generated ID.
func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (name, email, phone, subject, message, status, created_at, month)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		message.Name,
		message.Email,
		message.Phone,
		message.Subject,
		message.Message,
		message.Status,
		message.CreatedAt,
		message.Month,
	).Scan(&message.ID)

	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

// List retrieves all messages, newest first.
func (r *messageRepository) List(ctx context.Context) ([]*domain.Message, error) {
	return r.queryMessages(ctx, `
		SELECT id, name, email, phone, subject, message, status, created_at, month
		FROM messages
		ORDER BY created_at DESC
	`)
}

// ListByMonth retrieves the messages bucketed under the given YYYYMM month.
func (r *messageRepository) ListByMonth(ctx context.Context, month int) ([]*domain.Message, error) {
	return r.queryMessages(ctx, `
		SELECT id, name, email, phone, subject, message, status, created_at, month
		FROM messages
		WHERE month = $1
		ORDER BY created_at DESC
	`, month)
}

// CountByMonth counts the messages bucketed under the given YYYYMM month.
func (r *messageRepository) CountByMonth(ctx context.Context, month int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages WHERE month = $1`, month).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}

// UpdateStatus marks a message unread, read or replied.
func (r *messageRepository) UpdateStatus(ctx context.Context, id int64, status domain.MessageStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE messages SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrMessageNotFound
	}

	return nil
}

func (r *messageRepository) queryMessages(ctx context.Context, query string, args ...any) ([]*domain.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []*domain.Message{}
	for rows.Next() {
		message := &domain.Message{}
		err := rows.Scan(
			&message.ID,
			&message.Name,
			&message.Email,
			&message.Phone,
			&message.Subject,
			&message.Message,
			&message.Status,
			&message.CreatedAt,
			&message.Month,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}

	return messages, nil
}
