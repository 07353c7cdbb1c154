package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/validator"
)

// CreateBusinessInput is the DTO for creating a business profile.
type CreateBusinessInput struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	StateCode string `json:"state_code"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	GSTIN     string `json:"gstin"`
}

// UpdateBusinessInput is the DTO for updating a business profile.
type UpdateBusinessInput struct {
	Name      *string `json:"name"`
	Address   *string `json:"address"`
	StateCode *string `json:"state_code"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	GSTIN     *string `json:"gstin"`
}

// BusinessService defines the business profile contract.
type BusinessService interface {
	Create(ctx context.Context, input CreateBusinessInput) (*domain.Business, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBusinessInput) (*domain.Business, error)
}

type businessService struct {
	repo port.BusinessRepository
	log  *zap.Logger
}

// NewBusinessService creates a new BusinessService implementation.
func NewBusinessService(repo port.BusinessRepository, log *zap.Logger) BusinessService {
	return &businessService{repo: repo, log: log}
}

func (s *businessService) Create(ctx context.Context, input CreateBusinessInput) (*domain.Business, error) {
	b := &domain.Business{
		Name:      strings.TrimSpace(input.Name),
		Address:   strings.TrimSpace(input.Address),
		StateCode: normalizeStateCode(input.StateCode),
		Phone:     normalizePhone(input.Phone),
		Email:     normalizeEmail(input.Email),
		GSTIN:     normalizeGSTIN(input.GSTIN),
	}
	if err := validator.ValidateBusiness(b); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	s.log.Info("business created", zap.String("business_id", b.ID.String()))
	return b, nil
}

func (s *businessService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *businessService) Update(ctx context.Context, id uuid.UUID, input UpdateBusinessInput) (*domain.Business, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		b.Name = strings.TrimSpace(*input.Name)
	}
	if input.Address != nil {
		b.Address = strings.TrimSpace(*input.Address)
	}
	if input.StateCode != nil {
		b.StateCode = normalizeStateCode(*input.StateCode)
	}
	if input.Phone != nil {
		b.Phone = normalizePhone(*input.Phone)
	}
	if input.Email != nil {
		b.Email = normalizeEmail(*input.Email)
	}
	if input.GSTIN != nil {
		b.GSTIN = normalizeGSTIN(*input.GSTIN)
	}

	if err := validator.ValidateBusiness(b); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
