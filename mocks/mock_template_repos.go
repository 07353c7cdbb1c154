package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
)

// MockPredefinedTemplateRepo is a mock implementation of port.PredefinedTemplateRepository.
type MockPredefinedTemplateRepo struct {
	mock.Mock
}

func (m *MockPredefinedTemplateRepo) List(ctx context.Context) ([]domain.PredefinedTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PredefinedTemplate), args.Error(1)
}

func (m *MockPredefinedTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PredefinedTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PredefinedTemplate), args.Error(1)
}

func (m *MockPredefinedTemplateRepo) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTemplateSettingsRepo is a mock implementation of port.TemplateSettingsRepository.
type MockTemplateSettingsRepo struct {
	mock.Mock
}

func (m *MockTemplateSettingsRepo) GetByBusiness(ctx context.Context, businessID uuid.UUID) (*domain.BusinessTemplateSettings, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessTemplateSettings), args.Error(1)
}

func (m *MockTemplateSettingsRepo) Upsert(ctx context.Context, settings *domain.BusinessTemplateSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockInvoiceTemplateRepo is a mock implementation of port.InvoiceTemplateRepository.
type MockInvoiceTemplateRepo struct {
	mock.Mock
}

func (m *MockInvoiceTemplateRepo) Create(ctx context.Context, tmpl *domain.InvoiceTemplate) error {
	args := m.Called(ctx, tmpl)
	return args.Error(0)
}

func (m *MockInvoiceTemplateRepo) GetByID(ctx context.Context, businessID, templateID uuid.UUID) (*domain.InvoiceTemplate, error) {
	args := m.Called(ctx, businessID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceTemplate), args.Error(1)
}

func (m *MockInvoiceTemplateRepo) GetDefault(ctx context.Context, businessID uuid.UUID) (*domain.InvoiceTemplate, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceTemplate), args.Error(1)
}

func (m *MockInvoiceTemplateRepo) List(ctx context.Context, businessID uuid.UUID) ([]domain.InvoiceTemplate, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceTemplate), args.Error(1)
}

func (m *MockInvoiceTemplateRepo) Update(ctx context.Context, tmpl *domain.InvoiceTemplate) error {
	args := m.Called(ctx, tmpl)
	return args.Error(0)
}

func (m *MockInvoiceTemplateRepo) UnsetDefault(ctx context.Context, businessID, keepID uuid.UUID) error {
	args := m.Called(ctx, businessID, keepID)
	return args.Error(0)
}

func (m *MockInvoiceTemplateRepo) Delete(ctx context.Context, businessID, templateID uuid.UUID) error {
	args := m.Called(ctx, businessID, templateID)
	return args.Error(0)
}
