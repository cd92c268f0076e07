package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"barbershop-api/internal/domain"
	"barbershop-api/internal/repository"
	"barbershop-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Stub service for testing handler behavior in isolation
type stubOrderService struct {
	order     *domain.Order
	items     []*domain.OrderItem
	updateErr error
	getErr    error
}

func (s *stubOrderService) Create(ctx context.Context, in service.CreateOrderInput) (*domain.Order, error) {
	return s.order, nil
}

func (s *stubOrderService) GetByID(ctx context.Context, id int64) (*domain.Order, []*domain.OrderItem, error) {
	if s.getErr != nil {
		return nil, nil, s.getErr
	}
	return s.order, s.items, nil
}

func (s *stubOrderService) GetByCode(ctx context.Context, code string) (*domain.Order, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.order, nil
}

func (s *stubOrderService) List(ctx context.Context) ([]*domain.Order, error) {
	return []*domain.Order{s.order}, nil
}

func (s *stubOrderService) ListByMonth(ctx context.Context, month int) ([]*domain.Order, error) {
	return []*domain.Order{s.order}, nil
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, paymentStatus *domain.PaymentStatus) (*domain.Order, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.order, nil
}

func passthrough(next http.Handler) http.Handler { return next }

func newOrderRouter(svc service.OrderService) chi.Router {
	handler := NewOrderHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	handler.RegisterRoutes(r, passthrough, passthrough, passthrough)
	return r
}

// Feature: barbershop-platform, Property 16: Rejected transitions map to the right status codes
// Validates: Requirements 4.5, 4.6
func TestUpdateStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"successful transition", nil, http.StatusOK},
		{"unknown order", repository.ErrOrderNotFound, http.StatusNotFound},
		{"unknown status value", service.ErrInvalidStatus, http.StatusBadRequest},
		{"illegal order transition", service.ErrInvalidTransition, http.StatusConflict},
		{"illegal payment transition", service.ErrInvalidPaymentTransition, http.StatusConflict},
		{"storage failure", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubOrderService{
				order:     &domain.Order{ID: 1, Status: domain.OrderStatusConfirmed, PaymentStatus: domain.PaymentStatusPending},
				updateErr: tt.serviceErr,
			}
			router := newOrderRouter(svc)

			body, _ := json.Marshal(UpdateOrderStatusRequest{Status: "confirmed"})
			req := httptest.NewRequest(http.MethodPatch, "/api/orders/1/status", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestCreateOrderRejectsInvalidPayloads(t *testing.T) {
	validItem := CreateOrderItemRequest{ProductID: 1, ProductName: "Pomade", Quantity: 2, Price: 18000}

	tests := []struct {
		name string
		req  CreateOrderRequest
	}{
		{
			"missing customer name",
			CreateOrderRequest{CustomerPhone: "+21655123456", CustomerAddress: "Tunis", Items: []CreateOrderItemRequest{validItem}, TotalAmount: 36000},
		},
		{
			"missing phone",
			CreateOrderRequest{CustomerName: "Karim", CustomerAddress: "Tunis", Items: []CreateOrderItemRequest{validItem}, TotalAmount: 36000},
		},
		{
			"no items",
			CreateOrderRequest{CustomerName: "Karim", CustomerPhone: "+21655123456", CustomerAddress: "Tunis", Items: []CreateOrderItemRequest{}, TotalAmount: 36000},
		},
		{
			"zero quantity item",
			CreateOrderRequest{CustomerName: "Karim", CustomerPhone: "+21655123456", CustomerAddress: "Tunis", Items: []CreateOrderItemRequest{{ProductID: 1, ProductName: "Pomade", Quantity: 0, Price: 18000}}, TotalAmount: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newOrderRouter(&stubOrderService{order: &domain.Order{ID: 1}})

			body, _ := json.Marshal(tt.req)
			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestGetByCode(t *testing.T) {
	order := &domain.Order{ID: 7, OrderCode: "PC-TRACKING-AAAA", Status: domain.OrderStatusShipped}
	router := newOrderRouter(&stubOrderService{order: order})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/code/PC-TRACKING-AAAA", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got domain.Order
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.OrderCode != order.OrderCode {
		t.Errorf("order code = %s, want %s", got.OrderCode, order.OrderCode)
	}

	missing := newOrderRouter(&stubOrderService{getErr: repository.ErrOrderNotFound})
	req = httptest.NewRequest(http.MethodGet, "/api/orders/code/PC-NOSUCH-AAAA", nil)
	rec = httptest.NewRecorder()
	missing.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown code status = %d, want 404", rec.Code)
	}
}
