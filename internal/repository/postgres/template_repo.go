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

type predefinedTemplateRepo struct {
	db *sqlx.DB
}

// NewPredefinedTemplateRepo creates a new PostgreSQL-backed PredefinedTemplateRepository.
func NewPredefinedTemplateRepo(db *sqlx.DB) port.PredefinedTemplateRepository {
	return &predefinedTemplateRepo{db: db}
}

func (r *predefinedTemplateRepo) List(ctx context.Context) ([]domain.PredefinedTemplate, error) {
	var templates []domain.PredefinedTemplate
	err := r.db.SelectContext(ctx, &templates, "SELECT * FROM predefined_templates ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("predefinedTemplateRepo.List: %w", err)
	}
	return templates, nil
}

func (r *predefinedTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PredefinedTemplate, error) {
	var t domain.PredefinedTemplate
	err := r.db.GetContext(ctx, &t, "SELECT * FROM predefined_templates WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("predefinedTemplateRepo.GetByID: %w", err)
	}
	return &t, nil
}

func (r *predefinedTemplateRepo) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE predefined_templates SET usage_count = usage_count + 1 WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("predefinedTemplateRepo.IncrementUsage: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

type templateSettingsRepo struct {
	db *sqlx.DB
}

// NewTemplateSettingsRepo creates a new PostgreSQL-backed TemplateSettingsRepository.
func NewTemplateSettingsRepo(db *sqlx.DB) port.TemplateSettingsRepository {
	return &templateSettingsRepo{db: db}
}

func (r *templateSettingsRepo) GetByBusiness(ctx context.Context, businessID uuid.UUID) (*domain.BusinessTemplateSettings, error) {
	var s domain.BusinessTemplateSettings
	err := r.db.GetContext(ctx, &s,
		"SELECT * FROM business_template_settings WHERE business_id = $1", businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("templateSettingsRepo.GetByBusiness: %w", err)
	}
	return &s, nil
}

// Upsert stores the selection keyed by business. On conflict the existing
// row keeps its id and created_at.
func (r *templateSettingsRepo) Upsert(ctx context.Context, s *domain.BusinessTemplateSettings) error {
	now := time.Now().UTC()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.UpdatedAt = now

	query := `INSERT INTO business_template_settings (id, business_id, template_id, color_hex, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (business_id) DO UPDATE SET
			template_id = EXCLUDED.template_id,
			color_hex = EXCLUDED.color_hex,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query, s.ID, s.BusinessID, s.TemplateID, s.ColorHex, now).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrTemplateNotFound
		}
		return fmt.Errorf("templateSettingsRepo.Upsert: %w", err)
	}
	return nil
}

type invoiceTemplateRepo struct {
	db *sqlx.DB
}

// NewInvoiceTemplateRepo creates a new PostgreSQL-backed InvoiceTemplateRepository.
func NewInvoiceTemplateRepo(db *sqlx.DB) port.InvoiceTemplateRepository {
	return &invoiceTemplateRepo{db: db}
}

func (r *invoiceTemplateRepo) Create(ctx context.Context, t *domain.InvoiceTemplate) error {
	t.ID = uuid.New()
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `INSERT INTO invoice_templates (id, business_id, name, config, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.BusinessID, t.Name, t.Config, t.IsDefault, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isDuplicate(err, "name") {
			return domain.ErrDuplicateTemplateName
		}
		return fmt.Errorf("invoiceTemplateRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceTemplateRepo) GetByID(ctx context.Context, businessID, templateID uuid.UUID) (*domain.InvoiceTemplate, error) {
	var t domain.InvoiceTemplate
	err := r.db.GetContext(ctx, &t,
		"SELECT * FROM invoice_templates WHERE id = $1 AND business_id = $2", templateID, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("invoiceTemplateRepo.GetByID: %w", err)
	}
	return &t, nil
}

func (r *invoiceTemplateRepo) GetDefault(ctx context.Context, businessID uuid.UUID) (*domain.InvoiceTemplate, error) {
	var t domain.InvoiceTemplate
	err := r.db.GetContext(ctx, &t,
		"SELECT * FROM invoice_templates WHERE business_id = $1 AND is_default LIMIT 1", businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("invoiceTemplateRepo.GetDefault: %w", err)
	}
	return &t, nil
}

func (r *invoiceTemplateRepo) List(ctx context.Context, businessID uuid.UUID) ([]domain.InvoiceTemplate, error) {
	var templates []domain.InvoiceTemplate
	err := r.db.SelectContext(ctx, &templates,
		"SELECT * FROM invoice_templates WHERE business_id = $1 ORDER BY is_default DESC, name ASC", businessID)
	if err != nil {
		return nil, fmt.Errorf("invoiceTemplateRepo.List: %w", err)
	}
	return templates, nil
}

func (r *invoiceTemplateRepo) Update(ctx context.Context, t *domain.InvoiceTemplate) error {
	t.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE invoice_templates SET name = $1, config = $2, is_default = $3, updated_at = $4
		WHERE id = $5 AND business_id = $6`,
		t.Name, t.Config, t.IsDefault, t.UpdatedAt, t.ID, t.BusinessID)
	if err != nil {
		if isDuplicate(err, "name") {
			return domain.ErrDuplicateTemplateName
		}
		return fmt.Errorf("invoiceTemplateRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

func (r *invoiceTemplateRepo) UnsetDefault(ctx context.Context, businessID, keepID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE invoice_templates SET is_default = FALSE, updated_at = $1
		WHERE business_id = $2 AND id <> $3 AND is_default`,
		time.Now().UTC(), businessID, keepID)
	if err != nil {
		return fmt.Errorf("invoiceTemplateRepo.UnsetDefault: %w", err)
	}
	return nil
}

func (r *invoiceTemplateRepo) Delete(ctx context.Context, businessID, templateID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM invoice_templates WHERE id = $1 AND business_id = $2", templateID, businessID)
	if err != nil {
		return fmt.Errorf("invoiceTemplateRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}
