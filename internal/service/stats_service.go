package service

import (
	"context"
	"time"

	"barbershop-api/internal/domain"
	"barbershop-api/internal/repository"
)

// MonthlyStats is the per-month rollup shown in reporting views.
type MonthlyStats struct {
	Month        int   `json:"month"`
	Orders       int   `json:"orders"`
	Appointments int   `json:"appointments"`
	Messages     int   `json:"messages"`
	Revenue      int64 `json:"revenue"`
}

// Dashboard is the current-month admin landing view.
type Dashboard struct {
	Stats                    MonthlyStats          `json:"stats"`
	UnreadNotificationsCount int                   `json:"unread_notifications_count"`
	RecentOrders             []*domain.Order       `json:"recent_orders"`
	RecentAppointments       []*domain.Appointment `json:"recent_appointments"`
}

// recentLimit caps the dashboard's recent orders and appointments.
const recentLimit = 5

// StatsService defines the interface for read-only reporting rollups.
type StatsService interface {
	ByMonth(ctx context.Context, month int) (*MonthlyStats, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type statsService struct {
	repo *repository.Repository
	now  func() time.Time
}

// NewStatsService creates a new instance of StatsService.
func NewStatsService(repo *repository.Repository) StatsService {
	return &statsService{repo: repo, now: time.Now}
}

// ByMonth rolls up counts and summed revenue for a YYYYMM month.
func (s *statsService) ByMonth(ctx context.Context, month int) (*MonthlyStats, error) {
	orders, err := s.repo.Orders.CountByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	appointments, err := s.repo.Appointments.CountByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	messages, err := s.repo.Messages.CountByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	revenue, err := s.repo.Revenue.TotalByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	return &MonthlyStats{
		Month:        month,
		Orders:       orders,
		Appointments: appointments,
		Messages:     messages,
		Revenue:      revenue,
	}, nil
}

// Dashboard assembles the current-month stats, the unread notification count
// and the five most recent orders and appointments of the month.
func (s *statsService) Dashboard(ctx context.Context) (*Dashboard, error) {
	month := domain.MonthBucket(s.now())

	stats, err := s.ByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	unread, err := s.repo.Notifications.CountUnread(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.repo.Orders.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	if len(orders) > recentLimit {
		orders = orders[:recentLimit]
	}

	appointments, err := s.repo.Appointments.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	if len(appointments) > recentLimit {
		appointments = appointments[:recentLimit]
	}

	return &Dashboard{
		Stats:                    *stats,
		UnreadNotificationsCount: unread,
		RecentOrders:             orders,
		RecentAppointments:       appointments,
	}, nil
}
