package repositories

import (
	"context"
	"errors"

	"edilians-parkinfo/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// metaStore implements MetaStore backed by GORM
type metaStore struct {
	db *gorm.DB
}

// NewMetaStore creates a new meta store
func NewMetaStore(db *gorm.DB) MetaStore {
	return &metaStore{db: db}
}

// Get reads a marker value; the second return reports presence
func (s *metaStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.MetaEntry
	err := s.db.WithContext(ctx).Where("meta_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set writes a marker value, replacing any previous one
func (s *metaStore) Set(ctx context.Context, key, value string) error {
	return s.db.WithContext(ctx).Save(&models.MetaEntry{Key: key, Value: value}).Error
}
