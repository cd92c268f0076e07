package transport

import (
	"errors"
	"net/http"

	"barbershop-api/internal/domain"
	"barbershop-api/internal/middleware"
	"barbershop-api/internal/repository"
	"barbershop-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateMessageRequest represents a contact form payload
type CreateMessageRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message" validate:"required"`
}

// UpdateMessageStatusRequest represents an admin read-tracking change
type UpdateMessageStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// MessageHandler handles HTTP requests for contact messages
type MessageHandler struct {
	messageService service.MessageService
	logger         *zap.Logger
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService service.MessageService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		logger:         logger,
	}
}

// RegisterRoutes registers all message routes. Submission is public (rate
// limited); listing and status changes are admin-only.
func (h *MessageHandler) RegisterRoutes(r chi.Router, rateLimit, authMiddleware, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/api/messages", func(r chi.Router) {
		r.With(rateLimit).Post("/", h.Create)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(requireAdmin)
			r.Get("/", h.List)
			r.Patch("/{id}/status", h.UpdateStatus)
		})
	})
}

// Create handles contact form submission
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Message validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := h.messageService.Create(r.Context(), service.CreateMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.logger.Error("Message creation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create message")
		return
	}

	h.logger.Info("Message created", zap.Int64("message_id", message.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, message)
}

// List handles listing messages, optionally filtered by month
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	month, hasMonth, err := parseMonthQuery(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid month")
		return
	}

	var messages []*domain.Message
	if hasMonth {
		messages, err = h.messageService.ListByMonth(r.Context(), month)
	} else {
		messages, err = h.messageService.List(r.Context())
	}
	if err != nil {
		h.logger.Error("Failed to list messages", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list messages")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, messages)
}

// UpdateStatus handles admin read-tracking updates
func (h *MessageHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid message ID")
		return
	}

	var req UpdateMessageStatusRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Status update validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.messageService.UpdateStatus(r.Context(), id, domain.MessageStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, repository.ErrMessageNotFound):
			middleware.RespondWithError(w, http.StatusNotFound, "message not found")
		case errors.Is(err, service.ErrInvalidStatus):
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid status")
		default:
			h.logger.Error("Failed to update message status", zap.Error(err), zap.Int64("message_id", id))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update message status")
		}
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "status updated"})
}
