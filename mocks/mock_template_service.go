package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// MockTemplateService is a mock implementation of service.TemplateService.
type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) ListSystemTemplates(ctx context.Context) ([]domain.PredefinedTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PredefinedTemplate), args.Error(1)
}

func (m *MockTemplateService) AssignSystemTemplate(ctx context.Context, businessID uuid.UUID, input service.AssignTemplateInput) (*domain.BusinessTemplateSettings, error) {
	args := m.Called(ctx, businessID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessTemplateSettings), args.Error(1)
}

func (m *MockTemplateService) GetSystemTemplateSettings(ctx context.Context, businessID uuid.UUID) (*domain.BusinessTemplateSettings, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessTemplateSettings), args.Error(1)
}

func (m *MockTemplateService) Create(ctx context.Context, businessID uuid.UUID, input service.CreateTemplateInput) (*domain.InvoiceTemplate, error) {
	args := m.Called(ctx, businessID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceTemplate), args.Error(1)
}

func (m *MockTemplateService) GetByID(ctx context.Context, businessID, templateID uuid.UUID) (*domain.InvoiceTemplate, error) {
	args := m.Called(ctx, businessID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceTemplate), args.Error(1)
}

func (m *MockTemplateService) GetDefault(ctx context.Context, businessID uuid.UUID) (*domain.InvoiceTemplate, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceTemplate), args.Error(1)
}

func (m *MockTemplateService) List(ctx context.Context, businessID uuid.UUID) ([]domain.InvoiceTemplate, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceTemplate), args.Error(1)
}

func (m *MockTemplateService) Update(ctx context.Context, businessID, templateID uuid.UUID, input service.UpdateTemplateInput) (*domain.InvoiceTemplate, error) {
	args := m.Called(ctx, businessID, templateID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceTemplate), args.Error(1)
}

func (m *MockTemplateService) Delete(ctx context.Context, businessID, templateID uuid.UUID) error {
	args := m.Called(ctx, businessID, templateID)
	return args.Error(0)
}

func (m *MockTemplateService) Resolve(ctx context.Context, businessID uuid.UUID, templateID *uuid.UUID) (*domain.EffectiveTemplate, error) {
	args := m.Called(ctx, businessID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EffectiveTemplate), args.Error(1)
}
