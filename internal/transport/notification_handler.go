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

// NotificationHandler handles HTTP requests for admin notifications
type NotificationHandler struct {
	notificationService service.NotificationService
	logger              *zap.Logger
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService service.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// RegisterRoutes registers all notification routes, all admin-only
func (h *NotificationHandler) RegisterRoutes(r chi.Router, authMiddleware, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(requireAdmin)
		r.Get("/", h.List)
		r.Patch("/{id}/read", h.MarkAsRead)
	})
}

// List handles listing notifications; ?unread=true narrows to unseen ones
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	var notifications []*domain.Notification
	var err error

	if r.URL.Query().Get("unread") == "true" {
		notifications, err = h.notificationService.ListUnread(r.Context())
	} else {
		notifications, err = h.notificationService.List(r.Context())
	}
	if err != nil {
		h.logger.Error("Failed to list notifications", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list notifications")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, notifications)
}

// MarkAsRead handles flagging a notification as seen
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid notification ID")
		return
	}

	if err := h.notificationService.MarkAsRead(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "notification not found")
			return
		}

		h.logger.Error("Failed to mark notification as read", zap.Error(err), zap.Int64("notification_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to mark notification as read")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "notification marked as read"})
}
