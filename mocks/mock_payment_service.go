package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// MockPaymentService is a mock implementation of service.PaymentService.
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Add(ctx context.Context, businessID, invoiceID uuid.UUID, input service.AddPaymentInput) (*service.PaymentReceipt, error) {
	args := m.Called(ctx, businessID, invoiceID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PaymentReceipt), args.Error(1)
}

func (m *MockPaymentService) ListByInvoice(ctx context.Context, businessID, invoiceID uuid.UUID) ([]domain.Payment, error) {
	args := m.Called(ctx, businessID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentService) GetByID(ctx context.Context, businessID, paymentID uuid.UUID) (*domain.Payment, error) {
	args := m.Called(ctx, businessID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) Delete(ctx context.Context, businessID, paymentID uuid.UUID) (*domain.PaymentSummary, error) {
	args := m.Called(ctx, businessID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSummary), args.Error(1)
}
