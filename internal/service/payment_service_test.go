package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/service"
	"gstbill/mocks"
)

func newPaymentService() (service.PaymentService, *mocks.MockPaymentRepo, *mocks.MockInvoiceRepo, *mocks.FakeUnitOfWork) {
	payments := new(mocks.MockPaymentRepo)
	invoices := new(mocks.MockInvoiceRepo)
	uow := &mocks.FakeUnitOfWork{Repos: port.TxRepositories{Invoices: invoices, Payments: payments}}
	return service.NewPaymentService(payments, invoices, uow, zap.NewNop()), payments, invoices, uow
}

func TestPaymentService_Add(t *testing.T) {
	bizID, invID := uuid.New(), uuid.New()
	inv := &domain.Invoice{ID: invID, BusinessID: bizID, GrandTotal: dec("23010")}

	t.Run("partial_payment", func(t *testing.T) {
		svc, payments, invoices, _ := newPaymentService()
		invoices.On("GetForUpdate", mock.Anything, bizID, invID).Return(inv, nil)
		payments.On("AmountsByInvoice", mock.Anything, invID).Return([]decimal.Decimal{}, nil)
		payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
		invoices.On("UpdatePaymentSummary", mock.Anything, bizID, invID, mock.MatchedBy(func(s domain.PaymentSummary) bool {
			return s.PaidAmount.Equal(dec("10000")) && s.DueAmount.Equal(dec("13010")) && s.Status == domain.PaymentStatusPartial
		})).Return(nil)

		receipt, err := svc.Add(context.Background(), bizID, invID, service.AddPaymentInput{
			Amount: dec("10000"), Method: "upi", ReferenceID: " UTR123 ", PaymentDate: "2025-01-20",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentMethodUPI, receipt.Payment.Method)
		assert.Equal(t, "UTR123", receipt.Payment.ReferenceID)
		assert.Equal(t, "2025-01-20", receipt.Payment.PaymentDate.Format("2006-01-02"))
		assert.Equal(t, domain.PaymentStatusPartial, receipt.Summary.Status)
		assertDec(t, "13010", receipt.Summary.DueAmount, "due")
		invoices.AssertExpectations(t)
	})

	t.Run("settles_invoice", func(t *testing.T) {
		svc, payments, invoices, _ := newPaymentService()
		invoices.On("GetForUpdate", mock.Anything, bizID, invID).Return(inv, nil)
		payments.On("AmountsByInvoice", mock.Anything, invID).Return([]decimal.Decimal{dec("10000")}, nil)
		payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
		invoices.On("UpdatePaymentSummary", mock.Anything, bizID, invID, mock.AnythingOfType("domain.PaymentSummary")).Return(nil)

		receipt, err := svc.Add(context.Background(), bizID, invID, service.AddPaymentInput{Amount: dec("13010"), Method: domain.PaymentMethodBank})
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaid, receipt.Summary.Status)
		assertDec(t, "0", receipt.Summary.DueAmount, "due")
	})

	t.Run("rejects_overpayment", func(t *testing.T) {
		svc, payments, invoices, _ := newPaymentService()
		invoices.On("GetForUpdate", mock.Anything, bizID, invID).Return(inv, nil)
		payments.On("AmountsByInvoice", mock.Anything, invID).Return([]decimal.Decimal{dec("10000")}, nil)

		_, err := svc.Add(context.Background(), bizID, invID, service.AddPaymentInput{Amount: dec("14000"), Method: domain.PaymentMethodCash})
		assert.ErrorIs(t, err, domain.ErrPaymentExceedsDue)
		payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		invoices.AssertNotCalled(t, "UpdatePaymentSummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects_invalid_input_before_locking", func(t *testing.T) {
		svc, _, _, uow := newPaymentService()

		_, err := svc.Add(context.Background(), bizID, invID, service.AddPaymentInput{Amount: dec("-5"), Method: "BARTER", PaymentDate: "someday"})
		fields := violationFields(t, err)
		assert.Contains(t, fields, "amount")
		assert.Contains(t, fields, "method")
		assert.Contains(t, fields, "payment_date")
		assert.Equal(t, 0, uow.Calls)
	})

	t.Run("rejects_sub_paisa_amount", func(t *testing.T) {
		for _, amount := range []string{"9.996", "0.004"} {
			svc, payments, _, uow := newPaymentService()

			_, err := svc.Add(context.Background(), bizID, invID, service.AddPaymentInput{Amount: dec(amount), Method: domain.PaymentMethodUPI})
			assert.Contains(t, violationFields(t, err), "amount", amount)
			assert.Equal(t, 0, uow.Calls)
			payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		}
	})

	t.Run("invoice_not_found", func(t *testing.T) {
		svc, _, invoices, _ := newPaymentService()
		invoices.On("GetForUpdate", mock.Anything, bizID, invID).Return(nil, domain.ErrInvoiceNotFound)

		_, err := svc.Add(context.Background(), bizID, invID, service.AddPaymentInput{Amount: dec("1"), Method: domain.PaymentMethodCash})
		assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
	})
}

func TestPaymentService_Delete(t *testing.T) {
	bizID, invID, payID := uuid.New(), uuid.New(), uuid.New()
	svc, payments, invoices, _ := newPaymentService()

	payments.On("GetByID", mock.Anything, bizID, payID).Return(&domain.Payment{ID: payID, InvoiceID: invID, Amount: dec("10000")}, nil)
	invoices.On("GetForUpdate", mock.Anything, bizID, invID).Return(&domain.Invoice{ID: invID, GrandTotal: dec("23010")}, nil)
	payments.On("Delete", mock.Anything, bizID, payID).Return(nil)
	payments.On("AmountsByInvoice", mock.Anything, invID).Return([]decimal.Decimal{}, nil)
	invoices.On("UpdatePaymentSummary", mock.Anything, bizID, invID, mock.AnythingOfType("domain.PaymentSummary")).Return(nil)

	summary, err := svc.Delete(context.Background(), bizID, payID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusDue, summary.Status)
	assertDec(t, "23010", summary.DueAmount, "due")
	payments.AssertExpectations(t)
}

func TestPaymentService_ListByInvoice(t *testing.T) {
	bizID, invID := uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, payments, invoices, _ := newPaymentService()
		invoices.On("GetByID", mock.Anything, bizID, invID).Return(&domain.Invoice{ID: invID}, nil)
		payments.On("ListByInvoice", mock.Anything, bizID, invID).Return([]domain.Payment{{Amount: dec("100")}}, nil)

		list, err := svc.ListByInvoice(context.Background(), bizID, invID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("unknown_invoice", func(t *testing.T) {
		svc, payments, invoices, _ := newPaymentService()
		invoices.On("GetByID", mock.Anything, bizID, invID).Return(nil, domain.ErrInvoiceNotFound)

		_, err := svc.ListByInvoice(context.Background(), bizID, invID)
		assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
		payments.AssertNotCalled(t, "ListByInvoice", mock.Anything, mock.Anything, mock.Anything)
	})
}
