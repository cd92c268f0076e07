package transport

import (
	"errors"
	"net/http"
	"time"

	"barbershop-api/internal/domain"
	"barbershop-api/internal/middleware"
	"barbershop-api/internal/repository"
	"barbershop-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateAppointmentRequest represents a storefront booking payload
type CreateAppointmentRequest struct {
	CustomerName    string  `json:"customer_name" validate:"required"`
	CustomerEmail   *string `json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerPhone   string  `json:"customer_phone" validate:"required"`
	ServiceID       int64   `json:"service_id" validate:"required"`
	ServiceName     string  `json:"service_name" validate:"required"`
	AppointmentDate string  `json:"appointment_date" validate:"required"`
	Notes           *string `json:"notes,omitempty"`
}

// UpdateAppointmentStatusRequest represents an admin status change
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AppointmentHandler handles HTTP requests for appointments
type AppointmentHandler struct {
	appointmentService service.AppointmentService
	logger             *zap.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler
func NewAppointmentHandler(appointmentService service.AppointmentService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
		logger:             logger,
	}
}

// RegisterRoutes registers all appointment routes. Booking is public (rate
// limited); listing and status changes are admin-only.
func (h *AppointmentHandler) RegisterRoutes(r chi.Router, rateLimit, authMiddleware, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/api/appointments", func(r chi.Router) {
		r.With(rateLimit).Post("/", h.Create)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(requireAdmin)
			r.Get("/", h.List)
			r.Patch("/{id}/status", h.UpdateStatus)
		})
	})
}

// Create handles storefront booking
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Appointment validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	appointmentDate, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid appointment date")
		return
	}

	appointment, err := h.appointmentService.Create(r.Context(), service.CreateAppointmentInput{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ServiceID:       req.ServiceID,
		ServiceName:     req.ServiceName,
		AppointmentDate: appointmentDate,
		Notes:           req.Notes,
	})
	if err != nil {
		h.logger.Error("Appointment creation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create appointment")
		return
	}

	h.logger.Info("Appointment created",
		zap.Int64("appointment_id", appointment.ID),
		zap.Int("month", appointment.Month),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, appointment)
}

// List handles listing appointments, optionally filtered by month
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	month, hasMonth, err := parseMonthQuery(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid month")
		return
	}

	var appointments []*domain.Appointment
	if hasMonth {
		appointments, err = h.appointmentService.ListByMonth(r.Context(), month)
	} else {
		appointments, err = h.appointmentService.List(r.Context())
	}
	if err != nil {
		h.logger.Error("Failed to list appointments", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list appointments")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, appointments)
}

// UpdateStatus handles admin lifecycle transitions
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid appointment ID")
		return
	}

	var req UpdateAppointmentStatusRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Status update validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	appointment, err := h.appointmentService.UpdateStatus(r.Context(), id, domain.AppointmentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAppointmentNotFound):
			middleware.RespondWithError(w, http.StatusNotFound, "appointment not found")
		case errors.Is(err, service.ErrInvalidStatus):
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid status")
		case errors.Is(err, service.ErrInvalidTransition):
			middleware.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("Failed to update appointment status", zap.Error(err), zap.Int64("appointment_id", id))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update appointment status")
		}
		return
	}

	h.logger.Info("Appointment status updated",
		zap.Int64("appointment_id", id),
		zap.String("status", string(appointment.Status)),
	)
	middleware.RespondWithJSON(w, http.StatusOK, appointment)
}
