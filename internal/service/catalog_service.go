package service

import (
	"context"
	"fmt"
	"time"

	"barbershop-api/internal/domain"
	"barbershop-api/internal/repository"
)

// CreateProductInput carries a new catalog product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       int64
	Category    string
	ImageURL    string
	Stock       int
	InStock     bool
	Featured    bool
}

// UpdateProductInput carries a partial product update; nil fields are left
// unchanged.
type UpdateProductInput struct {
	Name            *string
	Description     *string
	Price           *int64
	Category        *string
	ImageURL        *string
	Stock           *int
	InStock         *bool
	Featured        *bool
	PromotionPrice  *int64
	PromotionActive *bool
}

// CreateServiceInput carries a new bookable service.
type CreateServiceInput struct {
	Name        string
	Description string
	Price       int64
	Duration    int
	Active      bool
}

// UpdateServiceInput carries a partial service update; nil fields are left
// unchanged.
type UpdateServiceInput struct {
	Name        *string
	Description *string
	Price       *int64
	Duration    *int
	Active      *bool
}

// CatalogService defines the interface for product and service catalog logic.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	FeaturedProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, in UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListServices(ctx context.Context) ([]*domain.Service, error)
	ActiveServices(ctx context.Context) ([]*domain.Service, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	CreateService(ctx context.Context, in CreateServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id int64, in UpdateServiceInput) (*domain.Service, error)
	DeleteService(ctx context.Context, id int64) error
}

type catalogService struct {
	repo     *repository.Repository
	notifier NotificationService
	now      func() time.Time
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(repo *repository.Repository, notifier NotificationService) CatalogService {
	return &catalogService{repo: repo, notifier: notifier, now: time.Now}
}

// ListProducts retrieves all products.
func (s *catalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.Products.List(ctx)
}

// FeaturedProducts retrieves products flagged for the storefront front page.
func (s *catalogService) FeaturedProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.Products.ListFeatured(ctx)
}

// GetProduct retrieves a product by ID.
func (s *catalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.Products.FindByID(ctx, id)
}

// CreateProduct adds a product to the catalog.
func (s *catalogService) CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	now := s.now()
	product := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Stock:       in.Stock,
		InStock:     in.InStock,
		Featured:    in.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Products.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct applies a partial update. A stock update that drains the
// product to zero emits a stock notification.
func (s *catalogService) UpdateProduct(ctx context.Context, id int64, in UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.Products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stockDrained := false

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Stock != nil {
		stockDrained = product.Stock > 0 && *in.Stock == 0
		product.Stock = *in.Stock
	}
	if in.InStock != nil {
		product.InStock = *in.InStock
	}
	if in.Featured != nil {
		product.Featured = *in.Featured
	}
	if in.PromotionPrice != nil {
		product.PromotionPrice = in.PromotionPrice
	}
	if in.PromotionActive != nil {
		product.PromotionActive = *in.PromotionActive
	}
	product.UpdatedAt = s.now()

	if err := s.repo.Products.Update(ctx, product); err != nil {
		return nil, err
	}

	if stockDrained {
		_, _ = s.notifier.Emit(
			ctx,
			domain.NotificationTypeStock,
			"Product out of stock",
			fmt.Sprintf("Product %s is out of stock", product.Name),
			&product.ID,
		)
	}

	return product, nil
}

// DeleteProduct removes a product from the catalog. Historical order items
// keep their denormalized product name and price.
func (s *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.Products.Delete(ctx, id)
}

// ListServices retrieves all services.
func (s *catalogService) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.Services.List(ctx)
}

// ActiveServices retrieves services currently offered for booking.
func (s *catalogService) ActiveServices(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.Services.ListActive(ctx)
}

// GetService retrieves a service by ID.
func (s *catalogService) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return s.repo.Services.FindByID(ctx, id)
}

// CreateService adds a bookable service.
func (s *catalogService) CreateService(ctx context.Context, in CreateServiceInput) (*domain.Service, error) {
	service := &domain.Service{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		Active:      in.Active,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Services.Create(ctx, service); err != nil {
		return nil, err
	}

	return service, nil
}

// UpdateService applies a partial update.
func (s *catalogService) UpdateService(ctx context.Context, id int64, in UpdateServiceInput) (*domain.Service, error) {
	service, err := s.repo.Services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		service.Name = *in.Name
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Price != nil {
		service.Price = *in.Price
	}
	if in.Duration != nil {
		service.Duration = *in.Duration
	}
	if in.Active != nil {
		service.Active = *in.Active
	}

	if err := s.repo.Services.Update(ctx, service); err != nil {
		return nil, err
	}

	return service, nil
}

// DeleteService removes a service. Historical appointments keep their
// denormalized service name.
func (s *catalogService) DeleteService(ctx context.Context, id int64) error {
	return s.repo.Services.Delete(ctx, id)
}
