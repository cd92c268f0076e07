package domain

import "time"

// Product represents a retail product. All monetary amounts are stored in
// millimes (1/1000 of the major currency unit) to avoid floating point.
type Product struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     string    `json:"description" db:"description"`
	Price           int64     `json:"price" db:"price"`
	Category        string    `json:"category" db:"category"`
	ImageURL        string    `json:"image_url" db:"image_url"`
	Stock           int       `json:"stock" db:"stock"`
	InStock         bool      `json:"in_stock" db:"in_stock"`
	Featured        bool      `json:"featured" db:"featured"`
	PromotionPrice  *int64    `json:"promotion_price,omitempty" db:"promotion_price"`
	PromotionActive bool      `json:"promotion_active" db:"promotion_active"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Service represents a bookable barbershop service.
type Service struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       int64     `json:"price" db:"price"`
	Duration    int       `json:"duration" db:"duration"` // minutes
	Active      bool      `json:"active" db:"active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
