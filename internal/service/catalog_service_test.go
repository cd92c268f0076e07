package service

import (
	"context"
	"testing"
	"time"

	"barbershop-api/internal/domain"
	"barbershop-api/internal/repository"
)

func newCatalogFixture(now time.Time) (*catalogService, *mockProductRepository, *mockNotifier) {
	products := newMockProductRepository()
	notifier := &mockNotifier{}

	repo := &repository.Repository{Products: products}

	svc := &catalogService{
		repo:     repo,
		notifier: notifier,
		now:      func() time.Time { return now },
	}
	return svc, products, notifier
}

func TestUpdateProductStockDrainEmitsNotification(t *testing.T) {
	now := time.Date(2025, time.February, 1, 9, 0, 0, 0, time.UTC)
	svc, _, notifier := newCatalogFixture(now)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:     "Pomade",
		Price:    18000,
		Category: "styling",
		Stock:    5,
		InStock:  true,
	})
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	zero := 0
	if _, err := svc.UpdateProduct(ctx, product.ID, UpdateProductInput{Stock: &zero}); err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}

	if len(notifier.emitted) != 1 {
		t.Fatalf("expected 1 stock notification, got %d", len(notifier.emitted))
	}
	if notifier.emitted[0].Type != domain.NotificationTypeStock {
		t.Errorf("notification type = %s, want stock", notifier.emitted[0].Type)
	}

	// Updating an already drained product does not notify again
	if _, err := svc.UpdateProduct(ctx, product.ID, UpdateProductInput{Stock: &zero}); err != nil {
		t.Fatalf("second UpdateProduct failed: %v", err)
	}
	if len(notifier.emitted) != 1 {
		t.Errorf("drained product re-notified, got %d notifications", len(notifier.emitted))
	}
}

func TestUpdateProductPartialFields(t *testing.T) {
	now := time.Date(2025, time.February, 1, 9, 0, 0, 0, time.UTC)
	svc, products, _ := newCatalogFixture(now)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:     "Pomade",
		Price:    18000,
		Category: "styling",
		Stock:    5,
		InStock:  true,
	})
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	promo := int64(15000)
	active := true
	updated, err := svc.UpdateProduct(ctx, product.ID, UpdateProductInput{
		PromotionPrice:  &promo,
		PromotionActive: &active,
	})
	if err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}

	if updated.Name != "Pomade" || updated.Price != 18000 || updated.Stock != 5 {
		t.Error("untouched fields were modified by partial update")
	}
	if updated.PromotionPrice == nil || *updated.PromotionPrice != 15000 || !updated.PromotionActive {
		t.Error("promotion fields not applied")
	}

	stored, _ := products.FindByID(ctx, product.ID)
	if stored.PromotionPrice == nil || *stored.PromotionPrice != 15000 {
		t.Error("promotion price not persisted")
	}
}
