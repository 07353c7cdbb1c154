package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/validator"
)

// CreateCustomerInput is the DTO for creating a customer.
type CreateCustomerInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	StateCode string `json:"state_code"`
	GSTIN     string `json:"gstin"`
}

// UpdateCustomerInput is the DTO for updating a customer.
type UpdateCustomerInput struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	StateCode *string `json:"state_code"`
	GSTIN     *string `json:"gstin"`
}

// CustomerService defines the customer management contract.
type CustomerService interface {
	Create(ctx context.Context, businessID uuid.UUID, input CreateCustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, businessID, customerID uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.Customer, int, error)
	Search(ctx context.Context, businessID uuid.UUID, query string, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, businessID, customerID uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, businessID, customerID uuid.UUID) error
}

type customerService struct {
	repo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(repo port.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, businessID uuid.UUID, input CreateCustomerInput) (*domain.Customer, error) {
	c := &domain.Customer{
		BusinessID: businessID,
		Name:       strings.TrimSpace(input.Name),
		Phone:      normalizePhone(input.Phone),
		Email:      normalizeEmail(input.Email),
		Address:    strings.TrimSpace(input.Address),
		City:       strings.TrimSpace(input.City),
		StateCode:  normalizeStateCode(input.StateCode),
		GSTIN:      normalizeGSTIN(input.GSTIN),
	}
	if err := validator.ValidateCustomer(c); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) GetByID(ctx context.Context, businessID, customerID uuid.UUID) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, businessID, customerID)
}

func (s *customerService) List(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.Customer, int, error) {
	offset, limit = clampPage(offset, limit)
	return s.repo.List(ctx, businessID, offset, limit)
}

// Search matches names case-insensitively. An empty query lists everything.
func (s *customerService) Search(ctx context.Context, businessID uuid.UUID, query string, offset, limit int) ([]domain.Customer, int, error) {
	offset, limit = clampPage(offset, limit)
	query = strings.TrimSpace(query)
	if query == "" {
		return s.repo.List(ctx, businessID, offset, limit)
	}
	return s.repo.SearchByName(ctx, businessID, query, offset, limit)
}

func (s *customerService) Update(ctx context.Context, businessID, customerID uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error) {
	c, err := s.repo.GetByID(ctx, businessID, customerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		c.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		c.Phone = normalizePhone(*input.Phone)
	}
	if input.Email != nil {
		c.Email = normalizeEmail(*input.Email)
	}
	if input.Address != nil {
		c.Address = strings.TrimSpace(*input.Address)
	}
	if input.City != nil {
		c.City = strings.TrimSpace(*input.City)
	}
	if input.StateCode != nil {
		c.StateCode = normalizeStateCode(*input.StateCode)
	}
	if input.GSTIN != nil {
		c.GSTIN = normalizeGSTIN(*input.GSTIN)
	}

	if err := validator.ValidateCustomer(c); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) Delete(ctx context.Context, businessID, customerID uuid.UUID) error {
	return s.repo.Delete(ctx, businessID, customerID)
}
