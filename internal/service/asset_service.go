package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gstbill/internal/config"
	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// AssetUploadInput is the DTO for asset upload requests.
type AssetUploadInput struct {
	BusinessID uuid.UUID
	Type       domain.AssetType
	File       multipart.File
	Header     *multipart.FileHeader
}

// AssetService manages business logos, signatures and payment QR images.
type AssetService interface {
	Upload(ctx context.Context, input AssetUploadInput) (*domain.BusinessAsset, error)
	List(ctx context.Context, businessID uuid.UUID) ([]domain.BusinessAsset, error)
	GetDownloadURL(ctx context.Context, businessID, assetID uuid.UUID) (string, error)
	// LatestURLs presigns the newest asset of each type.
	LatestURLs(ctx context.Context, businessID uuid.UUID) (map[domain.AssetType]string, error)
	Delete(ctx context.Context, businessID, assetID uuid.UUID) error
}

type assetService struct {
	repo    port.AssetRepository
	storage port.ObjectStorage
	cfg     *config.S3Config
	log     *zap.Logger
}

// NewAssetService creates a new AssetService implementation.
func NewAssetService(
	repo port.AssetRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
	log *zap.Logger,
) AssetService {
	return &assetService{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		log:     log,
	}
}

func (s *assetService) Upload(ctx context.Context, input AssetUploadInput) (*domain.BusinessAsset, error) {
	if !domain.ValidAssetTypes[input.Type] {
		return nil, domain.NewValidationError([]domain.FieldViolation{
			{Field: "asset_type", Message: "must be LOGO, SIGNATURE or QR"},
		})
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Trust the magic bytes, not the extension.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	contentType := http.DetectContentType(buf[:n])
	fileType, ok := domain.AllowedContentTypes[contentType]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	assetID := uuid.New()
	key := fmt.Sprintf("businesses/%s/assets/%s/%s.%s",
		input.BusinessID, strings.ToLower(string(input.Type)), assetID, fileType)

	s.log.Info("uploading asset",
		zap.String("business_id", input.BusinessID.String()),
		zap.String("asset_type", string(input.Type)),
		zap.String("file_name", input.Header.Filename),
		zap.Int64("size_bytes", input.Header.Size),
	)

	if _, err := s.storage.Put(ctx, port.PutObjectInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	}); err != nil {
		s.log.Error("asset upload failed", zap.String("key", key), zap.Error(err))
		return nil, domain.ErrUploadFailed
	}

	asset := &domain.BusinessAsset{
		ID:          assetID,
		BusinessID:  input.BusinessID,
		Type:        input.Type,
		FileName:    input.Header.Filename,
		ContentType: contentType,
		SizeBytes:   input.Header.Size,
		S3Bucket:    s.cfg.Bucket,
		S3Key:       key,
	}
	if err := s.repo.Create(ctx, asset); err != nil {
		if delErr := s.storage.Delete(ctx, s.cfg.Bucket, key); delErr != nil {
			s.log.Warn("orphaned asset object", zap.String("key", key), zap.Error(delErr))
		}
		return nil, fmt.Errorf("creating asset metadata: %w", err)
	}
	return asset, nil
}

func (s *assetService) List(ctx context.Context, businessID uuid.UUID) ([]domain.BusinessAsset, error) {
	return s.repo.ListByBusiness(ctx, businessID)
}

func (s *assetService) GetDownloadURL(ctx context.Context, businessID, assetID uuid.UUID) (string, error) {
	asset, err := s.repo.GetByID(ctx, businessID, assetID)
	if err != nil {
		return "", err
	}
	return s.storage.PresignGet(ctx, asset.S3Bucket, asset.S3Key, s.presignExpiry())
}

func (s *assetService) LatestURLs(ctx context.Context, businessID uuid.UUID) (map[domain.AssetType]string, error) {
	latest, err := s.repo.LatestByType(ctx, businessID)
	if err != nil {
		return nil, err
	}
	urls := make(map[domain.AssetType]string, len(latest))
	for t, a := range latest {
		url, err := s.storage.PresignGet(ctx, a.S3Bucket, a.S3Key, s.presignExpiry())
		if err != nil {
			return nil, err
		}
		urls[t] = url
	}
	return urls, nil
}

func (s *assetService) Delete(ctx context.Context, businessID, assetID uuid.UUID) error {
	asset, err := s.repo.GetByID(ctx, businessID, assetID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, asset.S3Bucket, asset.S3Key); err != nil {
		s.log.Error("asset object delete failed", zap.String("key", asset.S3Key), zap.Error(err))
		return fmt.Errorf("deleting from storage: %w", err)
	}
	return s.repo.Delete(ctx, businessID, assetID)
}

func (s *assetService) presignExpiry() time.Duration {
	return time.Duration(s.cfg.PresignExpiry) * time.Second
}
