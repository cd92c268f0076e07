package transport

import (
	"net/http"

	"barbershop-api/internal/middleware"
	"barbershop-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CustomerHandler handles HTTP requests for the customer directory
type CustomerHandler struct {
	customerService service.CustomerService
	logger          *zap.Logger
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService service.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// RegisterRoutes registers all customer routes, all admin-only
func (h *CustomerHandler) RegisterRoutes(r chi.Router, authMiddleware, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/api/customers", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(requireAdmin)
		r.Get("/", h.List)
	})
}

// List handles listing the customer directory
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list customers", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list customers")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, customers)
}
