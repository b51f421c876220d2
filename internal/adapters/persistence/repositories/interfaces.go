package repositories

import (
	"context"

	"edilians-parkinfo/internal/adapters/persistence/models"
)

// AssetStore defines durable keyed storage for the assets collection
type AssetStore interface {
	GetAll(ctx context.Context) ([]models.Asset, error)
	Add(ctx context.Context, asset *models.Asset) error
	Put(ctx context.Context, asset *models.Asset) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// UserStore defines durable keyed storage for the users collection
type UserStore interface {
	GetAll(ctx context.Context) ([]models.User, error)
	Add(ctx context.Context, user *models.User) error
	Put(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// MetaStore holds store-level markers such as the seed flags
type MetaStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
