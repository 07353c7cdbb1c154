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

type assetRepo struct {
	db *sqlx.DB
}

// NewAssetRepo creates a new PostgreSQL-backed AssetRepository.
func NewAssetRepo(db *sqlx.DB) port.AssetRepository {
	return &assetRepo{db: db}
}

func (r *assetRepo) Create(ctx context.Context, a *domain.BusinessAsset) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now().UTC()

	query := `INSERT INTO business_assets (id, business_id, asset_type, file_name, content_type,
		size_bytes, s3_bucket, s3_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.BusinessID, a.Type, a.FileName, a.ContentType, a.SizeBytes,
		a.S3Bucket, a.S3Key, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("assetRepo.Create: %w", err)
	}
	return nil
}

func (r *assetRepo) GetByID(ctx context.Context, businessID, assetID uuid.UUID) (*domain.BusinessAsset, error) {
	var a domain.BusinessAsset
	err := r.db.GetContext(ctx, &a,
		"SELECT * FROM business_assets WHERE id = $1 AND business_id = $2", assetID, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, fmt.Errorf("assetRepo.GetByID: %w", err)
	}
	return &a, nil
}

func (r *assetRepo) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.BusinessAsset, error) {
	var assets []domain.BusinessAsset
	err := r.db.SelectContext(ctx, &assets,
		"SELECT * FROM business_assets WHERE business_id = $1 ORDER BY created_at DESC", businessID)
	if err != nil {
		return nil, fmt.Errorf("assetRepo.ListByBusiness: %w", err)
	}
	return assets, nil
}

func (r *assetRepo) LatestByType(ctx context.Context, businessID uuid.UUID) (map[domain.AssetType]domain.BusinessAsset, error) {
	var assets []domain.BusinessAsset
	err := r.db.SelectContext(ctx, &assets,
		`SELECT DISTINCT ON (asset_type) * FROM business_assets
		WHERE business_id = $1 ORDER BY asset_type, created_at DESC`, businessID)
	if err != nil {
		return nil, fmt.Errorf("assetRepo.LatestByType: %w", err)
	}
	out := make(map[domain.AssetType]domain.BusinessAsset, len(assets))
	for _, a := range assets {
		out[a.Type] = a
	}
	return out, nil
}

func (r *assetRepo) Delete(ctx context.Context, businessID, assetID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM business_assets WHERE id = $1 AND business_id = $2", assetID, businessID)
	if err != nil {
		return fmt.Errorf("assetRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}
