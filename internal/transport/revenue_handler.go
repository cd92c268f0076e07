package transport

import (
	"errors"
	"net/http"

	"barbershop-api/internal/middleware"
	"barbershop-api/internal/repository"
	"barbershop-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateAdjustmentRequest represents a manual ledger entry
type CreateAdjustmentRequest struct {
	Amount      int64  `json:"amount" validate:"required"`
	Description string `json:"description" validate:"required"`
	Month       int    `json:"month" validate:"required,gte=200001"`
}

// RevenueTotalResponse represents a month's summed ledger
type RevenueTotalResponse struct {
	Month int   `json:"month"`
	Total int64 `json:"total"`
}

// RevenueHandler handles HTTP requests for the revenue ledger
type RevenueHandler struct {
	revenueService service.RevenueService
	logger         *zap.Logger
}

// NewRevenueHandler creates a new RevenueHandler
func NewRevenueHandler(revenueService service.RevenueService, logger *zap.Logger) *RevenueHandler {
	return &RevenueHandler{
		revenueService: revenueService,
		logger:         logger,
	}
}

// RegisterRoutes registers all revenue routes, all admin-only
func (h *RevenueHandler) RegisterRoutes(r chi.Router, authMiddleware, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/api/revenue", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(requireAdmin)
		r.Get("/", h.ListByMonth)
		r.Get("/total", h.TotalByMonth)
		r.Post("/", h.CreateAdjustment)
		r.Delete("/{id}", h.Delete)
	})
}

// ListByMonth handles listing a month's ledger entries
func (h *RevenueHandler) ListByMonth(w http.ResponseWriter, r *http.Request) {
	month, hasMonth, err := parseMonthQuery(r)
	if err != nil || !hasMonth {
		middleware.RespondWithError(w, http.StatusBadRequest, "month is required")
		return
	}

	entries, err := h.revenueService.ListByMonth(r.Context(), month)
	if err != nil {
		h.logger.Error("Failed to list revenue", zap.Error(err), zap.Int("month", month))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list revenue")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, entries)
}

// TotalByMonth handles summing a month's ledger
func (h *RevenueHandler) TotalByMonth(w http.ResponseWriter, r *http.Request) {
	month, hasMonth, err := parseMonthQuery(r)
	if err != nil || !hasMonth {
		middleware.RespondWithError(w, http.StatusBadRequest, "month is required")
		return
	}

	total, err := h.revenueService.TotalByMonth(r.Context(), month)
	if err != nil {
		h.logger.Error("Failed to total revenue", zap.Error(err), zap.Int("month", month))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to total revenue")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, RevenueTotalResponse{Month: month, Total: total})
}

// CreateAdjustment handles recording a manual ledger entry
func (h *RevenueHandler) CreateAdjustment(w http.ResponseWriter, r *http.Request) {
	var req CreateAdjustmentRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Adjustment validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.revenueService.CreateAdjustment(r.Context(), req.Amount, req.Description, req.Month)
	if err != nil {
		h.logger.Error("Adjustment creation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create adjustment")
		return
	}

	h.logger.Info("Revenue adjustment created",
		zap.Int64("revenue_id", entry.ID),
		zap.Int64("amount", entry.Amount),
		zap.Int("month", entry.Month),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, entry)
}

// Delete handles removing a ledger entry
func (h *RevenueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid revenue ID")
		return
	}

	if err := h.revenueService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrRevenueNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "revenue entry not found")
			return
		}

		h.logger.Error("Revenue deletion failed", zap.Error(err), zap.Int64("revenue_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete revenue entry")
		return
	}

	h.logger.Info("Revenue entry deleted", zap.Int64("revenue_id", id))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "revenue entry deleted"})
}
