package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"barbershop-api/internal/domain"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentRepository defines the interface for appointment data access.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	FindByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	ListByMonth(ctx context.Context, month int) ([]*domain.Appointment, error)
	CountByMonth(ctx context.Context, month int) (int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

type appointmentRepository struct {
	db DBTX
}

// NewAppointmentRepository creates a new instance of AppointmentRepository.
func NewAppointmentRepository(db DBTX) AppointmentRepository {
	return &appointmentRepository{db: db}
}

const appointmentColumns = `id, customer_id, customer_name, customer_email, customer_phone,
	service_id, service_name, appointment_date, status, notes, created_at, month`

func scanAppointment(row interface{ Scan(dest ...any) error }) (*domain.Appointment, error) {
	appointment := &domain.Appointment{}
	err := row.Scan(
		&appointment.ID,
		&appointment.CustomerID,
		&appointment.CustomerName,
		&appointment.CustomerEmail,
		&appointment.CustomerPhone,
		&appointment.ServiceID,
		&appointment.ServiceName,
		&appointment.AppointmentDate,
		&appointment.Status,
		&appointment.Notes,
		&appointment.CreatedAt,
		&appointment.Month,
	)
	return appointment, err
}

// Create inserts a new appointment and fills in the generated ID.
func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	query := `
		INSERT INTO appointments (customer_id, customer_name, customer_email, customer_phone,
			service_id, service_name, appointment_date, status, notes, created_at, month)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		appointment.CustomerID,
		appointment.CustomerName,
		appointment.CustomerEmail,
		appointment.CustomerPhone,
		appointment.ServiceID,
		appointment.ServiceName,
		appointment.AppointmentDate,
		appointment.Status,
		appointment.Notes,
		appointment.CreatedAt,
		appointment.Month,
	).Scan(&appointment.ID)

	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	return nil
}

// FindByID retrieves an appointment by ID.
func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE id = $1`, appointmentColumns)

	appointment, err := scanAppointment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to find appointment by ID: %w", err)
	}

	return appointment, nil
}

// List retrieves all appointments, latest scheduled first.
func (r *appointmentRepository) List(ctx context.Context) ([]*domain.Appointment, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointments ORDER BY appointment_date DESC`, appointmentColumns)
	return r.queryAppointments(ctx, query)
}

// ListByMonth retrieves the appointments bucketed under the given YYYYMM
// month, latest scheduled first.
func (r *appointmentRepository) ListByMonth(ctx context.Context, month int) ([]*domain.Appointment, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE month = $1 ORDER BY appointment_date DESC`, appointmentColumns)
	return r.queryAppointments(ctx, query, month)
}

// CountByMonth counts the appointments bucketed under the given YYYYMM month.
func (r *appointmentRepository) CountByMonth(ctx context.Context, month int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointments WHERE month = $1`, month).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}

// UpdateStatus persists an appointment status transition.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE appointments SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *appointmentRepository) queryAppointments(ctx context.Context, query string, args ...any) ([]*domain.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	appointments := []*domain.Appointment{}
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, appointment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointments: %w", err)
	}

	return appointments, nil
}
