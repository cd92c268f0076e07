package service

import (
	"context"
	"fmt"
	"time"

	"barbershop-api/internal/domain"
	"barbershop-api/internal/repository"
)

// CreateAppointmentInput carries a storefront booking request.
type CreateAppointmentInput struct {
	CustomerName    string
	CustomerEmail   *string
	CustomerPhone   string
	ServiceID       int64
	ServiceName     string
	AppointmentDate time.Time
	Notes           *string
}

// AppointmentService defines the interface for booking business logic.
type AppointmentService interface {
	Create(ctx context.Context, in CreateAppointmentInput) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	ListByMonth(ctx context.Context, month int) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error)
}

type appointmentService struct {
	repo     *repository.Repository
	notifier NotificationService
	now      func() time.Time
}

// NewAppointmentService creates a new instance of AppointmentService.
func NewAppointmentService(repo *repository.Repository, notifier NotificationService) AppointmentService {
	return &appointmentService{repo: repo, notifier: notifier, now: time.Now}
}

// Create resolves the customer and persists the booking in one transaction,
// then emits an appointment notification. The month bucket derives from the
// scheduled date so future bookings report against the month they occur in.
func (s *appointmentService) Create(ctx context.Context, in CreateAppointmentInput) (*domain.Appointment, error) {
	var appointment *domain.Appointment

	err := s.repo.WithTx(ctx, func(r *repository.Repository) error {
		customer, err := resolveCustomer(ctx, r.Customers, in.CustomerName, in.CustomerEmail, in.CustomerPhone, nil)
		if err != nil {
			return err
		}

		appointment = &domain.Appointment{
			CustomerID:      &customer.ID,
			CustomerName:    in.CustomerName,
			CustomerEmail:   in.CustomerEmail,
			CustomerPhone:   in.CustomerPhone,
			ServiceID:       in.ServiceID,
			ServiceName:     in.ServiceName,
			AppointmentDate: in.AppointmentDate,
			Status:          domain.AppointmentStatusPending,
			Notes:           in.Notes,
			CreatedAt:       s.now(),
			Month:           domain.MonthBucket(in.AppointmentDate),
		}

		return r.Appointments.Create(ctx, appointment)
	})

	if err != nil {
		return nil, err
	}

	_, _ = s.notifier.Emit(
		ctx,
		domain.NotificationTypeAppointment,
		"New appointment",
		fmt.Sprintf("New appointment from %s for %s", appointment.CustomerName, appointment.ServiceName),
		&appointment.ID,
	)

	return appointment, nil
}

// List retrieves all appointments.
func (s *appointmentService) List(ctx context.Context) ([]*domain.Appointment, error) {
	return s.repo.Appointments.List(ctx)
}

// ListByMonth retrieves the appointments bucketed under a YYYYMM month.
func (s *appointmentService) ListByMonth(ctx context.Context, month int) ([]*domain.Appointment, error) {
	return s.repo.Appointments.ListByMonth(ctx, month)
}

// UpdateStatus applies a guarded status transition. Bookings have no revenue
// or timestamp side effects.
func (s *appointmentService) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if !domain.ValidAppointmentStatus(status) {
		return nil, ErrInvalidStatus
	}

	appointment, err := s.repo.Appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransitionAppointment(appointment.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.Appointments.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	appointment.Status = status
	return appointment, nil
}
