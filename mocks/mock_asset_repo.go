package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
)

// MockAssetRepo is a mock implementation of port.AssetRepository.
type MockAssetRepo struct {
	mock.Mock
}

func (m *MockAssetRepo) Create(ctx context.Context, asset *domain.BusinessAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepo) GetByID(ctx context.Context, businessID, assetID uuid.UUID) (*domain.BusinessAsset, error) {
	args := m.Called(ctx, businessID, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessAsset), args.Error(1)
}

func (m *MockAssetRepo) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.BusinessAsset, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusinessAsset), args.Error(1)
}

func (m *MockAssetRepo) LatestByType(ctx context.Context, businessID uuid.UUID) (map[domain.AssetType]domain.BusinessAsset, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.AssetType]domain.BusinessAsset), args.Error(1)
}

func (m *MockAssetRepo) Delete(ctx context.Context, businessID, assetID uuid.UUID) error {
	args := m.Called(ctx, businessID, assetID)
	return args.Error(0)
}
