package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type paymentRepo struct {
	db dbtx
}

// NewPaymentRepo creates a new PostgreSQL-backed PaymentRepository.
func NewPaymentRepo(db *sqlx.DB) port.PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()

	query := `INSERT INTO payments (id, invoice_id, business_id, amount, method, reference_id,
		bank_name, account_details, payment_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.InvoiceID, p.BusinessID, p.Amount, p.Method, p.ReferenceID,
		p.BankName, p.AccountDetails, p.PaymentDate, p.Notes, p.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvoiceNotFound
		}
		return fmt.Errorf("paymentRepo.Create: %w", err)
	}
	return nil
}

func (r *paymentRepo) GetByID(ctx context.Context, businessID, paymentID uuid.UUID) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.GetContext(ctx, &p,
		"SELECT * FROM payments WHERE id = $1 AND business_id = $2", paymentID, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("paymentRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *paymentRepo) ListByInvoice(ctx context.Context, businessID, invoiceID uuid.UUID) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.SelectContext(ctx, &payments,
		`SELECT * FROM payments WHERE invoice_id = $1 AND business_id = $2
		ORDER BY payment_date ASC, created_at ASC`, invoiceID, businessID)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByInvoice: %w", err)
	}
	return payments, nil
}

func (r *paymentRepo) AmountsByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]decimal.Decimal, error) {
	var amounts []decimal.Decimal
	err := r.db.SelectContext(ctx, &amounts,
		"SELECT amount FROM payments WHERE invoice_id = $1 ORDER BY created_at ASC", invoiceID)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.AmountsByInvoice: %w", err)
	}
	return amounts, nil
}

func (r *paymentRepo) Delete(ctx context.Context, businessID, paymentID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM payments WHERE id = $1 AND business_id = $2", paymentID, businessID)
	if err != nil {
		return fmt.Errorf("paymentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}
