package transport

import (
	"net/http"

	"barbershop-api/internal/middleware"
	"barbershop-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StatsHandler handles HTTP requests for reporting rollups
type StatsHandler struct {
	statsService service.StatsService
	logger       *zap.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService service.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// RegisterRoutes registers all stats routes, all admin-only
func (h *StatsHandler) RegisterRoutes(r chi.Router, authMiddleware, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/api/stats", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(requireAdmin)
		r.Get("/", h.ByMonth)
		r.Get("/dashboard", h.Dashboard)
	})
}

// ByMonth handles a single month's rollup
func (h *StatsHandler) ByMonth(w http.ResponseWriter, r *http.Request) {
	month, hasMonth, err := parseMonthQuery(r)
	if err != nil || !hasMonth {
		middleware.RespondWithError(w, http.StatusBadRequest, "month is required")
		return
	}

	stats, err := h.statsService.ByMonth(r.Context(), month)
	if err != nil {
		h.logger.Error("Failed to compute stats", zap.Error(err), zap.Int("month", month))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, stats)
}

// Dashboard handles the current-month admin landing view
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.statsService.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("Failed to build dashboard", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to build dashboard")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, dashboard)
}
