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

// CreateOrderItemRequest represents one line of a checkout request
type CreateOrderItemRequest struct {
	ProductID   int64  `json:"product_id" validate:"required"`
	ProductName string `json:"product_name" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Price       int64  `json:"price" validate:"required,gt=0"`
}

// CreateOrderRequest represents a storefront checkout payload
type CreateOrderRequest struct {
	CustomerName    string                   `json:"customer_name" validate:"required"`
	CustomerEmail   *string                  `json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerPhone   string                   `json:"customer_phone" validate:"required"`
	CustomerAddress string                   `json:"customer_address" validate:"required"`
	Items           []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount     int64                    `json:"total_amount" validate:"required,gt=0"`
}

// UpdateOrderStatusRequest represents an admin status change
type UpdateOrderStatusRequest struct {
	Status        string  `json:"status" validate:"required"`
	PaymentStatus *string `json:"payment_status,omitempty"`
}

// OrderDetailResponse bundles an order with its line items
type OrderDetailResponse struct {
	Order *domain.Order       `json:"order"`
	Items []*domain.OrderItem `json:"items"`
}

// OrderHandler handles HTTP requests for orders
type OrderHandler struct {
	orderService service.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// RegisterRoutes registers all order routes. Checkout and code lookup are
// public (checkout rate limited); everything else is admin-only.
func (h *OrderHandler) RegisterRoutes(r chi.Router, rateLimit, authMiddleware, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/api/orders", func(r chi.Router) {
		r.With(rateLimit).Post("/", h.Create)
		r.Get("/code/{code}", h.GetByCode)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(requireAdmin)
			r.Get("/", h.List)
			r.Get("/{id}", h.GetByID)
			r.Patch("/{id}/status", h.UpdateStatus)
		})
	})
}

// Create handles storefront checkout
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Order validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]service.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CreateOrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	order, err := h.orderService.Create(r.Context(), service.CreateOrderInput{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           items,
		TotalAmount:     req.TotalAmount,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyItems) || errors.Is(err, service.ErrQuantityInvalid) {
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		h.logger.Error("Order creation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	h.logger.Info("Order created",
		zap.String("order_code", order.OrderCode),
		zap.Int64("order_id", order.ID),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, order)
}

// List handles listing orders, optionally filtered by month
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	month, hasMonth, err := parseMonthQuery(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid month")
		return
	}

	var orders []*domain.Order
	if hasMonth {
		orders, err = h.orderService.ListByMonth(r.Context(), month)
	} else {
		orders, err = h.orderService.List(r.Context())
	}
	if err != nil {
		h.logger.Error("Failed to list orders", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

// GetByID handles fetching one order with its line items
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	order, items, err := h.orderService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
			return
		}

		h.logger.Error("Failed to get order", zap.Error(err), zap.Int64("order_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get order")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, OrderDetailResponse{Order: order, Items: items})
}

// GetByCode handles the public order tracking lookup
func (h *OrderHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	order, err := h.orderService.GetByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
			return
		}

		h.logger.Error("Failed to get order by code", zap.Error(err), zap.String("order_code", code))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get order")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, order)
}

// UpdateStatus handles admin lifecycle transitions
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	var req UpdateOrderStatusRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Status update validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var paymentStatus *domain.PaymentStatus
	if req.PaymentStatus != nil {
		ps := domain.PaymentStatus(*req.PaymentStatus)
		paymentStatus = &ps
	}

	order, err := h.orderService.UpdateStatus(r.Context(), id, domain.OrderStatus(req.Status), paymentStatus)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
		case errors.Is(err, service.ErrInvalidStatus):
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid status")
		case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrInvalidPaymentTransition):
			middleware.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("Failed to update order status", zap.Error(err), zap.Int64("order_id", id))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update order status")
		}
		return
	}

	h.logger.Info("Order status updated",
		zap.Int64("order_id", id),
		zap.String("status", string(order.Status)),
		zap.String("payment_status", string(order.PaymentStatus)),
	)
	middleware.RespondWithJSON(w, http.StatusOK, order)
}
