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

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, c *domain.Customer) error {
	c.ID = uuid.New()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `INSERT INTO customers (id, business_id, name, phone, email, address, city, state_code, gstin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.BusinessID, c.Name, c.Phone, c.Email, c.Address, c.City, c.StateCode, c.GSTIN,
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrBusinessNotFound
		}
		return fmt.Errorf("customerRepo.Create: %w", err)
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, businessID, customerID uuid.UUID) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.GetContext(ctx, &c,
		"SELECT * FROM customers WHERE id = $1 AND business_id = $2", customerID, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("customerRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.Customer, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM customers WHERE business_id = $1", businessID)
	if err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List count: %w", err)
	}

	var customers []domain.Customer
	err = r.db.SelectContext(ctx, &customers,
		"SELECT * FROM customers WHERE business_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3",
		businessID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List: %w", err)
	}
	return customers, total, nil
}

// SearchByName matches customers whose name contains query, ignoring case.
func (r *customerRepo) SearchByName(ctx context.Context, businessID uuid.UUID, query string, offset, limit int) ([]domain.Customer, int, error) {
	pattern := "%" + escapeLike(query) + "%"

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM customers WHERE business_id = $1 AND name ILIKE $2",
		businessID, pattern)
	if err != nil {
		return nil, 0, fmt.Errorf("customerRepo.SearchByName count: %w", err)
	}

	var customers []domain.Customer
	err = r.db.SelectContext(ctx, &customers,
		`SELECT * FROM customers WHERE business_id = $1 AND name ILIKE $2
		ORDER BY name ASC LIMIT $3 OFFSET $4`,
		businessID, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("customerRepo.SearchByName: %w", err)
	}
	return customers, total, nil
}

func (r *customerRepo) Update(ctx context.Context, c *domain.Customer) error {
	c.UpdatedAt = time.Now().UTC()
	query := `UPDATE customers SET name = $1, phone = $2, email = $3, address = $4, city = $5,
		state_code = $6, gstin = $7, updated_at = $8 WHERE id = $9 AND business_id = $10`
	result, err := r.db.ExecContext(ctx, query,
		c.Name, c.Phone, c.Email, c.Address, c.City, c.StateCode, c.GSTIN, c.UpdatedAt,
		c.ID, c.BusinessID)
	if err != nil {
		return fmt.Errorf("customerRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, businessID, customerID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM customers WHERE id = $1 AND business_id = $2", customerID, businessID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerHasInvoices
		}
		return fmt.Errorf("customerRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
