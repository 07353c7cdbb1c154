package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// MockAssetService is a mock implementation of service.AssetService.
type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) Upload(ctx context.Context, input service.AssetUploadInput) (*domain.BusinessAsset, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessAsset), args.Error(1)
}

func (m *MockAssetService) List(ctx context.Context, businessID uuid.UUID) ([]domain.BusinessAsset, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusinessAsset), args.Error(1)
}

func (m *MockAssetService) GetDownloadURL(ctx context.Context, businessID, assetID uuid.UUID) (string, error) {
	args := m.Called(ctx, businessID, assetID)
	return args.String(0), args.Error(1)
}

func (m *MockAssetService) LatestURLs(ctx context.Context, businessID uuid.UUID) (map[domain.AssetType]string, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.AssetType]string), args.Error(1)
}

func (m *MockAssetService) Delete(ctx context.Context, businessID, assetID uuid.UUID) error {
	args := m.Called(ctx, businessID, assetID)
	return args.Error(0)
}
