package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Preview(ctx context.Context, businessID uuid.UUID, draft service.InvoiceDraft) (*service.InvoicePreview, error) {
	args := m.Called(ctx, businessID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvoicePreview), args.Error(1)
}

func (m *MockInvoiceService) Create(ctx context.Context, businessID uuid.UUID, draft service.InvoiceDraft) (*domain.Invoice, error) {
	args := m.Called(ctx, businessID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Update(ctx context.Context, businessID, invoiceID uuid.UUID, draft service.InvoiceDraft) (*domain.Invoice, error) {
	args := m.Called(ctx, businessID, invoiceID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetByID(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, businessID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) List(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, businessID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceService) Delete(ctx context.Context, businessID, invoiceID uuid.UUID) error {
	args := m.Called(ctx, businessID, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceService) View(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.InvoiceView, error) {
	args := m.Called(ctx, businessID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceView), args.Error(1)
}

func (m *MockInvoiceService) SendByEmail(ctx context.Context, businessID, invoiceID uuid.UUID, input service.SendInvoiceInput) error {
	args := m.Called(ctx, businessID, invoiceID, input)
	return args.Error(0)
}

func (m *MockInvoiceService) Export(ctx context.Context, businessID uuid.UUID, format domain.ExportFormat) (*service.ExportFile, error) {
	args := m.Called(ctx, businessID, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}
