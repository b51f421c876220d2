package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"edilians-parkinfo/internal/adapters/persistence/models"
	"edilians-parkinfo/internal/adapters/persistence/repositories"
	"edilians-parkinfo/internal/core/domain"

	"gorm.io/gorm"
)

// AssetService is the sole mutation entry point for the assets
// collection. It keeps an in-memory mirror of the store; the
// mirror changes only after the corresponding store write has
// been confirmed.
type AssetService struct {
	store repositories.AssetStore

	mu     sync.RWMutex
	assets []models.Asset
}

// NewAssetService creates a new asset service
func NewAssetService(store repositories.AssetStore) *AssetService {
	return &AssetService{store: store}
}

// Load fills the in-memory mirror from the store. Must be called
// once before the service takes traffic; a failure here means the
// collection is unavailable.
func (s *AssetService) Load(ctx context.Context) error {
	assets, err := s.store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	s.mu.Lock()
	s.assets = assets
	s.mu.Unlock()
	return nil
}

// List returns a snapshot of every asset
func (s *AssetService) List() []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Asset, len(s.assets))
	copy(out, s.assets)
	return out
}

// FilterByType returns the assets of the given category, or every
// asset when the category is empty. Recomputed on every call.
func (s *AssetService) FilterByType(t models.AssetType) []models.Asset {
	if t == "" {
		return s.List()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Asset, 0, len(s.assets))
	for _, a := range s.assets {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

// Get returns one asset by id
func (s *AssetService) Get(id string) (*models.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		a := s.assets[i]
		return &a, true
	}
	return nil, false
}

// NextID derives the next free id for the given category from the
// current record set. It reserves nothing: calling it twice
// without an intervening create returns the same id. A category
// outside the known set is rejected with ErrUnknownCategory.
func (s *AssetService) NextID(t models.AssetType) (string, error) {
	if !t.Valid() {
		return "", domain.ErrUnknownCategory
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return NextAssetID(s.assets, t), nil
}

// Create persists a new asset whose id has already been assigned.
// A duplicate id is rejected before the store is touched; a store
// key conflict surfaces the same way. The mirror is untouched on
// any failure.
func (s *AssetService) Create(ctx context.Context, asset models.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(asset.ID) >= 0 {
		return domain.ErrDuplicateID
	}

	if err := s.store.Add(ctx, &asset); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateID
		}
		return err
	}

	s.assets = append(s.assets, asset)
	return nil
}

// Update replaces every field of an asset except Deleted, which is
// carried over from the stored record regardless of what the
// caller passed. An unknown id is a no-op.
func (s *AssetService) Update(ctx context.Context, id string, asset models.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	asset.ID = id
	asset.Deleted = s.assets[i].Deleted

	if err := s.store.Put(ctx, &asset); err != nil {
		return err
	}

	s.assets[i] = asset
	return nil
}

// ToggleDeleted flips the soft-delete flag. Deleting forces the
// status to out-of-service; restoring resets it to in-service (the
// prior status is deliberately not remembered). An unknown id is a
// no-op returning nil, nil.
func (s *AssetService) ToggleDeleted(ctx context.Context, id string) (*models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	asset := s.assets[i]
	asset.Deleted = !asset.Deleted
	if asset.Deleted {
		asset.Status = models.StatusOutOfService
	} else {
		asset.Status = models.StatusInService
	}

	if err := s.store.Put(ctx, &asset); err != nil {
		return nil, err
	}

	s.assets[i] = asset
	return &asset, nil
}

// Remove hard-deletes an asset. No console flow drives this; it is
// reserved for administrative cleanup.
func (s *AssetService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	if i := s.indexOf(id); i >= 0 {
		s.assets = append(s.assets[:i], s.assets[i+1:]...)
	}
	return nil
}

// indexOf finds an asset position by id; callers hold the lock
func (s *AssetService) indexOf(id string) int {
	for i := range s.assets {
		if s.assets[i].ID == id {
			return i
		}
	}
	return -1
}
