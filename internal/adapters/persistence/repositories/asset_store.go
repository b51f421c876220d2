package repositories

import (
	"context"

	"edilians-parkinfo/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// assetStore implements AssetStore backed by GORM
type assetStore struct {
	db *gorm.DB
}

// NewAssetStore creates a new asset store
func NewAssetStore(db *gorm.DB) AssetStore {
	return &assetStore{db: db}
}

// GetAll returns every stored asset, order not guaranteed
func (s *assetStore) GetAll(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset
	if err := s.db.WithContext(ctx).Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// Add inserts a new asset; fails if the id already exists
func (s *assetStore) Add(ctx context.Context, asset *models.Asset) error {
	return s.db.WithContext(ctx).Create(asset).Error
}

// Put upserts an asset by id (full-record replace)
func (s *assetStore) Put(ctx context.Context, asset *models.Asset) error {
	return s.db.WithContext(ctx).Save(asset).Error
}

// Delete removes an asset by id; an absent id is a no-op
func (s *assetStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Asset{}, "id = ?", id).Error
}

// Exists checks whether an asset id is present
func (s *assetStore) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Asset{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Count returns the number of stored assets
func (s *assetStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Asset{}).Count(&count).Error
	return count, err
}
