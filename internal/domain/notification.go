package domain

import "time"

// NotificationType identifies which domain event produced a notification.
type NotificationType string

const (
	NotificationTypeOrder       NotificationType = "order"
	NotificationTypeAppointment NotificationType = "appointment"
	NotificationTypeMessage     NotificationType = "message"
	NotificationTypeStock       NotificationType = "stock"
	NotificationTypeSystem      NotificationType = "system"
)

// Notification is an admin-facing event record. Created by domain events,
// later marked read; never otherwise updated or deleted.
type Notification struct {
	ID        int64            `json:"id" db:"id"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Type      NotificationType `json:"type" db:"type"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	RelatedID *int64           `json:"related_id,omitempty" db:"related_id"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
