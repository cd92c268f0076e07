package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"barbershop-api/internal/domain"
)

var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository defines the interface for barbershop service data access.
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) error
	Update(ctx context.Context, service *domain.Service) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	ListActive(ctx context.Context) ([]*domain.Service, error)
}

type serviceRepository struct {
	db DBTX
}

// NewServiceRepository creates a new instance of ServiceRepository.
func NewServiceRepository(db DBTX) ServiceRepository {
	return &serviceRepository{db: db}
}

// Create inserts a new service and fills in the generated ID.
func (r *serviceRepository) Create(ctx context.Context, service *domain.Service) error {
	query := `
		INSERT INTO services (name, description, price, duration, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		service.Name,
		service.Description,
		service.Price,
		service.Duration,
		service.Active,
		service.CreatedAt,
	).Scan(&service.ID)

	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	return nil
}

// Update persists all mutable service fields.
func (r *serviceRepository) Update(ctx context.Context, service *domain.Service) error {
	query := `
		UPDATE services
		SET name = $2, description = $3, price = $4, duration = $5, active = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		service.ID,
		service.Name,
		service.Description,
		service.Price,
		service.Duration,
		service.Active,
	)

	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// Delete removes a service.
func (r *serviceRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// FindByID retrieves a service by ID.
func (r *serviceRepository) FindByID(ctx context.Context, id int64) (*domain.Service, error) {
	query := `
		SELECT id, name, description, price, duration, active, created_at
		FROM services
		WHERE id = $1
	`

	service := &domain.Service{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&service.ID,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.Duration,
		&service.Active,
		&service.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to find service by ID: %w", err)
	}

	return service, nil
}

// List retrieves all services.
func (r *serviceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	return r.queryServices(ctx, `
		SELECT id, name, description, price, duration, active, created_at
		FROM services
		ORDER BY created_at DESC
	`)
}

// ListActive retrieves services currently offered for booking.
func (r *serviceRepository) ListActive(ctx context.Context) ([]*domain.Service, error) {
	return r.queryServices(ctx, `
		SELECT id, name, description, price, duration, active, created_at
		FROM services
		WHERE active = TRUE
		ORDER BY created_at DESC
	`)
}

func (r *serviceRepository) queryServices(ctx context.Context, query string, args ...any) ([]*domain.Service, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	services := []*domain.Service{}
	for rows.Next() {
		service := &domain.Service{}
		err := rows.Scan(
			&service.ID,
			&service.Name,
			&service.Description,
			&service.Price,
			&service.Duration,
			&service.Active,
			&service.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, service)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating services: %w", err)
	}

	return services, nil
}
