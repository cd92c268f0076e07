package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barbershop-api/internal/domain"
	"barbershop-api/internal/repository"
)

// resolveCustomer finds a customer by exact phone match or creates one.
// An existing record is returned unchanged: the phone number is the identity
// key and profile fields are first-write-wins.
func resolveCustomer(ctx context.Context, customers repository.CustomerRepository, name string, email *string, phone string, address *string) (*domain.Customer, error) {
	customer, err := customers.FindByPhone(ctx, phone)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	customer = &domain.Customer{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
		CreatedAt: time.Now(),
	}
	if err := customers.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

// CustomerService defines the interface for customer business logic.
type CustomerService interface {
	List(ctx context.Context) ([]*domain.Customer, error)
}

type customerService struct {
	repo *repository.Repository
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(repo *repository.Repository) CustomerService {
	return &customerService{repo: repo}
}

// List retrieves all customers.
func (s *customerService) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.Customers.List(ctx)
}
