package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/config"
	"gstbill/internal/port"
)

// NewDB creates a new PostgreSQL connection pool.
func NewDB(cfg *config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	return db, nil
}

// dbtx is satisfied by both *sqlx.DB and *sqlx.Tx.
type dbtx interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// WithTx runs fn in a read-committed transaction and commits when fn returns nil.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("postgres: begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit tx: %w", err)
	}
	return nil
}

// inTx runs fn in a new transaction, or directly when db already is one.
func inTx(ctx context.Context, db dbtx, fn func(dbtx) error) error {
	if pool, ok := db.(*sqlx.DB); ok {
		return WithTx(ctx, pool, func(tx *sqlx.Tx) error { return fn(tx) })
	}
	return fn(db)
}

func isDuplicate(err error, constraint string) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") && strings.Contains(msg, constraint)
}

func isForeignKeyViolation(err error) bool {
	return strings.Contains(err.Error(), "violates foreign key constraint")
}

type unitOfWork struct {
	db *sqlx.DB
}

// NewUnitOfWork creates a UnitOfWork whose repositories share one transaction.
func NewUnitOfWork(db *sqlx.DB) port.UnitOfWork {
	return &unitOfWork{db: db}
}

func (u *unitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, repos port.TxRepositories) error) error {
	return WithTx(ctx, u.db, func(tx *sqlx.Tx) error {
		return fn(ctx, port.TxRepositories{
			Invoices: &invoiceRepo{db: tx},
			Payments: &paymentRepo{db: tx},
		})
	})
}
