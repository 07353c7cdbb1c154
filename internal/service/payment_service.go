package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/totals"
	"gstbill/internal/validator"
)

// AddPaymentInput is the DTO for recording a payment. An empty PaymentDate
// means today.
type AddPaymentInput struct {
	Amount         decimal.Decimal      `json:"amount"`
	Method         domain.PaymentMethod `json:"method"`
	ReferenceID    string               `json:"reference_id"`
	BankName       string               `json:"bank_name"`
	AccountDetails string               `json:"account_details"`
	PaymentDate    string               `json:"payment_date"`
	Notes          string               `json:"notes"`
}

// PaymentReceipt is a recorded payment with the invoice's new payment state.
type PaymentReceipt struct {
	Payment *domain.Payment       `json:"payment"`
	Summary domain.PaymentSummary `json:"summary"`
}

// PaymentService records payments against invoices. Every mutation re-sums
// the payment rows and rewrites the invoice's paid, due and status columns in
// the same transaction.
type PaymentService interface {
	Add(ctx context.Context, businessID, invoiceID uuid.UUID, input AddPaymentInput) (*PaymentReceipt, error)
	ListByInvoice(ctx context.Context, businessID, invoiceID uuid.UUID) ([]domain.Payment, error)
	GetByID(ctx context.Context, businessID, paymentID uuid.UUID) (*domain.Payment, error)
	Delete(ctx context.Context, businessID, paymentID uuid.UUID) (*domain.PaymentSummary, error)
}

type paymentService struct {
	payments port.PaymentRepository
	invoices port.InvoiceRepository
	uow      port.UnitOfWork
	log      *zap.Logger
}

// NewPaymentService creates a new PaymentService implementation.
func NewPaymentService(
	payments port.PaymentRepository,
	invoices port.InvoiceRepository,
	uow port.UnitOfWork,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		payments: payments,
		invoices: invoices,
		uow:      uow,
		log:      log,
	}
}

func (s *paymentService) Add(ctx context.Context, businessID, invoiceID uuid.UUID, input AddPaymentInput) (*PaymentReceipt, error) {
	p := &domain.Payment{
		InvoiceID:      invoiceID,
		BusinessID:     businessID,
		Amount:         input.Amount,
		Method:         domain.PaymentMethod(strings.ToUpper(strings.TrimSpace(string(input.Method)))),
		ReferenceID:    strings.TrimSpace(input.ReferenceID),
		BankName:       strings.TrimSpace(input.BankName),
		AccountDetails: strings.TrimSpace(input.AccountDetails),
		Notes:          strings.TrimSpace(input.Notes),
		PaymentDate:    today(timeNow()),
	}
	var violations []domain.FieldViolation
	if strings.TrimSpace(input.PaymentDate) != "" {
		d, err := validator.ParseDate(input.PaymentDate)
		if err != nil {
			violations = append(violations, domain.FieldViolation{Field: "payment_date", Message: "must be a valid date"})
		} else {
			p.PaymentDate = d
		}
	}
	violations = appendViolations(violations, validator.ValidatePayment(p))
	if err := domain.NewValidationError(violations); err != nil {
		return nil, err
	}

	var summary domain.PaymentSummary
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos port.TxRepositories) error {
		inv, err := repos.Invoices.GetForUpdate(ctx, businessID, invoiceID)
		if err != nil {
			return err
		}
		amounts, err := repos.Payments.AmountsByInvoice(ctx, invoiceID)
		if err != nil {
			return err
		}
		if err := totals.CheckPayment(totals.DueAmount(inv.GrandTotal, amounts), p.Amount); err != nil {
			return err
		}
		if err := repos.Payments.Create(ctx, p); err != nil {
			return err
		}
		summary = totals.Summarize(inv.GrandTotal, append(amounts, p.Amount))
		return repos.Invoices.UpdatePaymentSummary(ctx, businessID, invoiceID, summary)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("payment recorded",
		zap.String("invoice_id", invoiceID.String()),
		zap.String("payment_id", p.ID.String()),
		zap.String("amount", p.Amount.StringFixed(2)),
		zap.String("status", string(summary.Status)),
	)
	return &PaymentReceipt{Payment: p, Summary: summary}, nil
}

func (s *paymentService) ListByInvoice(ctx context.Context, businessID, invoiceID uuid.UUID) ([]domain.Payment, error) {
	if _, err := s.invoices.GetByID(ctx, businessID, invoiceID); err != nil {
		return nil, err
	}
	return s.payments.ListByInvoice(ctx, businessID, invoiceID)
}

func (s *paymentService) GetByID(ctx context.Context, businessID, paymentID uuid.UUID) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, businessID, paymentID)
}

func (s *paymentService) Delete(ctx context.Context, businessID, paymentID uuid.UUID) (*domain.PaymentSummary, error) {
	var summary domain.PaymentSummary
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos port.TxRepositories) error {
		p, err := repos.Payments.GetByID(ctx, businessID, paymentID)
		if err != nil {
			return err
		}
		inv, err := repos.Invoices.GetForUpdate(ctx, businessID, p.InvoiceID)
		if err != nil {
			return err
		}
		if err := repos.Payments.Delete(ctx, businessID, paymentID); err != nil {
			return err
		}
		amounts, err := repos.Payments.AmountsByInvoice(ctx, p.InvoiceID)
		if err != nil {
			return err
		}
		summary = totals.Summarize(inv.GrandTotal, amounts)
		return repos.Invoices.UpdatePaymentSummary(ctx, businessID, p.InvoiceID, summary)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("payment deleted",
		zap.String("payment_id", paymentID.String()),
		zap.String("status", string(summary.Status)),
	)
	return &summary, nil
}
