package domain

import "time"

// Customer is identified by phone number; at most one record exists per phone.
type Customer struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     *string   `json:"email,omitempty" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Address   *string   `json:"address,omitempty" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
