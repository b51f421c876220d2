package repositories

import (
	"context"

	"edilians-parkinfo/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// userStore implements UserStore backed by GORM
type userStore struct {
	db *gorm.DB
}

// NewUserStore creates a new user store
func NewUserStore(db *gorm.DB) UserStore {
	return &userStore{db: db}
}

// GetAll returns every stored user, order not guaranteed
func (s *userStore) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Add inserts a new user; fails if the id already exists
func (s *userStore) Add(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// Put upserts a user by id (full-record replace)
func (s *userStore) Put(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

// Delete removes a user by id; an absent id is a no-op
func (s *userStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}

// Exists checks whether a user id is present
func (s *userStore) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Count returns the number of stored users
func (s *userStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}
