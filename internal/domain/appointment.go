package domain

import "time"

// AppointmentStatus is the lifecycle of a service booking.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled},
}

// CanTransitionAppointment reports whether a booking may move between statuses.
func CanTransitionAppointment(from, to AppointmentStatus) bool {
	for _, s := range appointmentTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidAppointmentStatus reports whether s is a known appointment status.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is a service booking. The month bucket derives from the
// scheduled appointment date, not the booking time, so future bookings
// report against the month they occur in.
type Appointment struct {
	ID              int64             `json:"id" db:"id"`
	CustomerID      *int64            `json:"customer_id,omitempty" db:"customer_id"`
	CustomerName    string            `json:"customer_name" db:"customer_name"`
	CustomerEmail   *string           `json:"customer_email,omitempty" db:"customer_email"`
	CustomerPhone   string            `json:"customer_phone" db:"customer_phone"`
	ServiceID       int64             `json:"service_id" db:"service_id"`
	ServiceName     string            `json:"service_name" db:"service_name"`
	AppointmentDate time.Time         `json:"appointment_date" db:"appointment_date"`
	Status          AppointmentStatus `json:"status" db:"status"`
	Notes           *string           `json:"notes,omitempty" db:"notes"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
	Month           int               `json:"month" db:"month"` // YYYYMM, from appointment date
}
