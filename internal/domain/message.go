package domain

import "time"

// MessageStatus tracks how far an admin has processed a contact message.
type MessageStatus string

const (
	MessageStatusUnread  MessageStatus = "unread"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

// ValidMessageStatus reports whether s is a known message status.
func ValidMessageStatus(s MessageStatus) bool {
	switch s {
	case MessageStatusUnread, MessageStatusRead, MessageStatusReplied:
		return true
	}
	return false
}

// Message is a contact-form submission.
type Message struct {
	ID        int64         `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Email     string        `json:"email" db:"email"`
	Phone     *string       `json:"phone,omitempty" db:"phone"`
	Subject   *string       `json:"subject,omitempty" db:"subject"`
	Message   string        `json:"message" db:"message"`
	Status    MessageStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	Month     int           `json:"month" db:"month"` // YYYYMM, from creation time
}
