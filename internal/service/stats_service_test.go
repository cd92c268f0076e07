package service

import (
	"context"
	"testing"
	"time"

	"barbershop-api/internal/domain"
	"barbershop-api/internal/repository"
)

func TestStatsByMonthAndDashboard(t *testing.T) {
	now := time.Date(2025, time.May, 20, 12, 0, 0, 0, time.UTC)
	month := domain.MonthBucket(now)

	orders := newMockOrderRepository()
	appointments := newMockAppointmentRepository()
	messages := newMockMessageRepository()
	revenue := newMockRevenueRepository()
	notifications := newMockNotificationRepository()

	repo := &repository.Repository{
		Orders:        orders,
		Appointments:  appointments,
		Messages:      messages,
		Revenue:       revenue,
		Notifications: notifications,
	}
	svc := &statsService{repo: repo, now: func() time.Time { return now }}
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		orders.Create(ctx, &domain.Order{Month: month, TotalAmount: 10000})
	}
	for i := 0; i < 3; i++ {
		appointments.Create(ctx, &domain.Appointment{Month: month})
	}
	messages.Create(ctx, &domain.Message{Month: month})
	revenue.Create(ctx, &domain.Revenue{Month: month, Amount: 30000})
	revenue.Create(ctx, &domain.Revenue{Month: month, Amount: -5000, Type: domain.RevenueTypeAdjustment})
	notifications.Create(ctx, &domain.Notification{Title: "a"})
	notifications.Create(ctx, &domain.Notification{Title: "b"})

	// An order outside the month must not count
	orders.Create(ctx, &domain.Order{Month: month - 1, TotalAmount: 99999})

	stats, err := svc.ByMonth(ctx, month)
	if err != nil {
		t.Fatalf("ByMonth failed: %v", err)
	}
	if stats.Orders != 7 || stats.Appointments != 3 || stats.Messages != 1 {
		t.Errorf("counts = %d/%d/%d, want 7/3/1", stats.Orders, stats.Appointments, stats.Messages)
	}
	if stats.Revenue != 25000 {
		t.Errorf("revenue = %d, want 25000", stats.Revenue)
	}

	dashboard, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if dashboard.Stats.Month != month {
		t.Errorf("dashboard month = %d, want %d", dashboard.Stats.Month, month)
	}
	if dashboard.UnreadNotificationsCount != 2 {
		t.Errorf("unread notifications = %d, want 2", dashboard.UnreadNotificationsCount)
	}
	if len(dashboard.RecentOrders) != 5 {
		t.Errorf("recent orders = %d, want capped at 5", len(dashboard.RecentOrders))
	}
	if len(dashboard.RecentAppointments) != 3 {
		t.Errorf("recent appointments = %d, want 3", len(dashboard.RecentAppointments))
	}
}
