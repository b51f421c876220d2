package services

import (
	"context"
	"errors"

	"edilians-parkinfo/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// errStoreDown simulates a failed durable write
var errStoreDown = errors.New("store down")

// fakeAssetStore is an in-memory AssetStore for service tests
type fakeAssetStore struct {
	records map[string]models.Asset
	fail    bool
}

func newFakeAssetStore(seed ...models.Asset) *fakeAssetStore {
	s := &fakeAssetStore{records: make(map[string]models.Asset)}
	for _, a := range seed {
		s.records[a.ID] = a
	}
	return s
}

func (s *fakeAssetStore) GetAll(ctx context.Context) ([]models.Asset, error) {
	if s.fail {
		return nil, errStoreDown
	}
	out := make([]models.Asset, 0, len(s.records))
	for _, a := range s.records {
		out = append(out, a)
	}
	return out, nil
}

func (s *fakeAssetStore) Add(ctx context.Context, asset *models.Asset) error {
	if s.fail {
		return errStoreDown
	}
	if _, ok := s.records[asset.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	s.records[asset.ID] = *asset
	return nil
}

func (s *fakeAssetStore) Put(ctx context.Context, asset *models.Asset) error {
	if s.fail {
		return errStoreDown
	}
	s.records[asset.ID] = *asset
	return nil
}

func (s *fakeAssetStore) Delete(ctx context.Context, id string) error {
	if s.fail {
		return errStoreDown
	}
	delete(s.records, id)
	return nil
}

func (s *fakeAssetStore) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := s.records[id]
	return ok, nil
}

func (s *fakeAssetStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.records)), nil
}

// fakeUserStore is an in-memory UserStore for service tests
type fakeUserStore struct {
	records map[string]models.User
	fail    bool
}

func newFakeUserStore(seed ...models.User) *fakeUserStore {
	s := &fakeUserStore{records: make(map[string]models.User)}
	for _, u := range seed {
		s.records[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) GetAll(ctx context.Context) ([]models.User, error) {
	if s.fail {
		return nil, errStoreDown
	}
	out := make([]models.User, 0, len(s.records))
	for _, u := range s.records {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) Add(ctx context.Context, user *models.User) error {
	if s.fail {
		return errStoreDown
	}
	if _, ok := s.records[user.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	s.records[user.ID] = *user
	return nil
}

func (s *fakeUserStore) Put(ctx context.Context, user *models.User) error {
	if s.fail {
		return errStoreDown
	}
	s.records[user.ID] = *user
	return nil
}

func (s *fakeUserStore) Delete(ctx context.Context, id string) error {
	if s.fail {
		return errStoreDown
	}
	delete(s.records, id)
	return nil
}

func (s *fakeUserStore) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := s.records[id]
	return ok, nil
}

func (s *fakeUserStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.records)), nil
}
