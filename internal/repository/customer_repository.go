package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"barbershop-api/internal/domain"
)

var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	FindByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}

type customerRepository struct {
	db DBTX
}

// NewCustomerRepository creates a new instance of CustomerRepository.
func NewCustomerRepository(db DBTX) CustomerRepository {
	return &customerRepository{db: db}
}

// Create inserts a new customer and fills in the generated ID.
func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `
		INSERT INTO customers (name, email, phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.Address,
		customer.CreatedAt,
	).Scan(&customer.ID)

	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// FindByPhone retrieves a customer by exact phone match.
func (r *customerRepository) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	query := `
		SELECT id, name, email, phone, address, created_at
		FROM customers
		WHERE phone = $1
	`

	customer := &domain.Customer{}
	err := r.db.QueryRowContext(ctx, query, phone).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
		&customer.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer by phone: %w", err)
	}

	return customer, nil
}

// FindByID retrieves a customer by ID.
func (r *customerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `
		SELECT id, name, email, phone, address, created_at
		FROM customers
		WHERE id = $1
	`

	customer := &domain.Customer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
		&customer.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID: %w", err)
	}

	return customer, nil
}

// List retrieves all customers, newest first.
func (r *customerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	query := `
		SELECT id, name, email, phone, address, created_at
		FROM customers
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []*domain.Customer{}
	for rows.Next() {
		customer := &domain.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.Phone,
			&customer.Address,
			&customer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}
