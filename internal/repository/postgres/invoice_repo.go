package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type invoiceRepo struct {
	db dbtx
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	inv.ID = uuid.New()
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	query := `INSERT INTO invoices (id, business_id, customer_id, template_id, invoice_number,
		invoice_date, due_date, jurisdiction, discount_mode, subtotal, total_discount,
		overall_discount, total_tax, cgst, sgst, igst, grand_total, paid_amount, due_amount,
		status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
		$18, $19, $20, $21, $22, $23)`

	return inTx(ctx, r.db, func(tx dbtx) error {
		_, err := tx.ExecContext(ctx, query,
			inv.ID, inv.BusinessID, inv.CustomerID, inv.TemplateID, inv.InvoiceNumber,
			inv.InvoiceDate, inv.DueDate, inv.Jurisdiction, inv.DiscountMode, inv.Subtotal,
			inv.TotalDiscount, inv.OverallDiscount, inv.TotalTax, inv.CGST, inv.SGST, inv.IGST,
			inv.GrandTotal, inv.PaidAmount, inv.DueAmount, inv.Status, inv.Notes,
			inv.CreatedAt, inv.UpdatedAt)
		if err != nil {
			if isDuplicate(err, "invoice_number") {
				return domain.ErrDuplicateInvoiceNo
			}
			if isForeignKeyViolation(err) {
				return domain.ErrCustomerNotFound
			}
			return fmt.Errorf("invoiceRepo.Create: %w", err)
		}
		return insertItems(ctx, tx, inv)
	})
}

func insertItems(ctx context.Context, tx dbtx, inv *domain.Invoice) error {
	query := `INSERT INTO invoice_items (id, invoice_id, position, name, description, hsn_code,
		quantity, unit_price, discount, tax_rate, discount_amount, line_subtotal, tax_amount, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	for i := range inv.Items {
		it := &inv.Items[i]
		it.ID = uuid.New()
		it.InvoiceID = inv.ID
		it.Position = i + 1
		_, err := tx.ExecContext(ctx, query,
			it.ID, it.InvoiceID, it.Position, it.Name, it.Description, it.HSNCode,
			it.Quantity, it.UnitPrice, it.Discount, it.TaxRate, it.DiscountAmount,
			it.LineSubtotal, it.TaxAmount, it.LineTotalWithTax)
		if err != nil {
			return fmt.Errorf("invoiceRepo.insertItems: %w", err)
		}
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv,
		"SELECT * FROM invoices WHERE id = $1 AND business_id = $2", invoiceID, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}

	err = r.db.SelectContext(ctx, &inv.Items,
		"SELECT * FROM invoice_items WHERE invoice_id = $1 ORDER BY position ASC", invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetByID items: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) GetForUpdate(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv,
		"SELECT * FROM invoices WHERE id = $1 AND business_id = $2 FOR UPDATE", invoiceID, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetForUpdate: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM invoices WHERE business_id = $1", businessID)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices,
		`SELECT * FROM invoices WHERE business_id = $1
		ORDER BY invoice_date DESC, created_at DESC LIMIT $2 OFFSET $3`,
		businessID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) ListAll(ctx context.Context, businessID uuid.UUID) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices WHERE business_id = $1 ORDER BY invoice_date ASC, created_at ASC",
		businessID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListAll: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) NumberExists(ctx context.Context, businessID uuid.UUID, number string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM invoices WHERE business_id = $1 AND invoice_number = $2)",
		businessID, number)
	if err != nil {
		return false, fmt.Errorf("invoiceRepo.NumberExists: %w", err)
	}
	return exists, nil
}

// Update rewrites the header and replaces all items. The invoice number and
// payment columns are left to the caller's values.
func (r *invoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	inv.UpdatedAt = time.Now().UTC()
	query := `UPDATE invoices SET customer_id = $1, template_id = $2, invoice_date = $3,
		due_date = $4, jurisdiction = $5, discount_mode = $6, subtotal = $7, total_discount = $8,
		overall_discount = $9, total_tax = $10, cgst = $11, sgst = $12, igst = $13,
		grand_total = $14, paid_amount = $15, due_amount = $16, status = $17, notes = $18,
		updated_at = $19
		WHERE id = $20 AND business_id = $21`

	return inTx(ctx, r.db, func(tx dbtx) error {
		result, err := tx.ExecContext(ctx, query,
			inv.CustomerID, inv.TemplateID, inv.InvoiceDate, inv.DueDate, inv.Jurisdiction,
			inv.DiscountMode, inv.Subtotal, inv.TotalDiscount, inv.OverallDiscount, inv.TotalTax,
			inv.CGST, inv.SGST, inv.IGST, inv.GrandTotal, inv.PaidAmount, inv.DueAmount,
			inv.Status, inv.Notes, inv.UpdatedAt, inv.ID, inv.BusinessID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrCustomerNotFound
			}
			return fmt.Errorf("invoiceRepo.Update: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrInvoiceNotFound
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM invoice_items WHERE invoice_id = $1", inv.ID); err != nil {
			return fmt.Errorf("invoiceRepo.Update delete items: %w", err)
		}
		return insertItems(ctx, tx, inv)
	})
}

func (r *invoiceRepo) UpdatePaymentSummary(ctx context.Context, businessID, invoiceID uuid.UUID, s domain.PaymentSummary) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET paid_amount = $1, due_amount = $2, status = $3, updated_at = $4
		WHERE id = $5 AND business_id = $6`,
		s.PaidAmount, s.DueAmount, s.Status, time.Now().UTC(), invoiceID, businessID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdatePaymentSummary: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepo) Delete(ctx context.Context, businessID, invoiceID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM invoices WHERE id = $1 AND business_id = $2", invoiceID, businessID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}
