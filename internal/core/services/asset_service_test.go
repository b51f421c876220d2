package services

import (
	"context"
	"testing"

	"edilians-parkinfo/internal/adapters/persistence/models"
	"edilians-parkinfo/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedAssetService(t *testing.T, store *fakeAssetStore) *AssetService {
	t.Helper()
	svc := NewAssetService(store)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestAssetServiceLoadFailure(t *testing.T) {
	store := newFakeAssetStore()
	store.fail = true

	svc := NewAssetService(store)
	assert.ErrorIs(t, svc.Load(context.Background()), domain.ErrStoreUnavailable)
}

func TestAssetServiceCreateAndList(t *testing.T) {
	store := newFakeAssetStore()
	svc := loadedAssetService(t, store)

	asset := models.Asset{ID: "DA0100", Type: models.AssetTypeWorkstation, Brand: "Dell"}
	require.NoError(t, svc.Create(context.Background(), asset))

	list := svc.List()
	require.Len(t, list, 1)
	assert.Equal(t, "DA0100", list[0].ID)

	// Persisted, not just mirrored
	_, ok := store.records["DA0100"]
	assert.True(t, ok)
}

func TestAssetServiceCreateDuplicateID(t *testing.T) {
	store := newFakeAssetStore(models.Asset{ID: "DA0100", Brand: "Dell"})
	svc := loadedAssetService(t, store)

	err := svc.Create(context.Background(), models.Asset{ID: "DA0100", Brand: "HP"})
	assert.ErrorIs(t, err, domain.ErrDuplicateID)

	// Nothing changed on either side
	list := svc.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Dell", list[0].Brand)
	assert.Equal(t, "Dell", store.records["DA0100"].Brand)
}

func TestAssetServiceCreateStoreFailureLeavesMirror(t *testing.T) {
	store := newFakeAssetStore()
	svc := loadedAssetService(t, store)

	store.fail = true
	err := svc.Create(context.Background(), models.Asset{ID: "DA0100"})
	assert.ErrorIs(t, err, errStoreDown)
	assert.Empty(t, svc.List())
}

func TestAssetServiceUpdatePreservesDeleted(t *testing.T) {
	store := newFakeAssetStore(models.Asset{ID: "DA0100", Brand: "Dell", Deleted: true})
	svc := loadedAssetService(t, store)

	patch := models.Asset{ID: "DA0100", Brand: "HP", Deleted: false}
	require.NoError(t, svc.Update(context.Background(), "DA0100", patch))

	got, ok := svc.Get("DA0100")
	require.True(t, ok)
	assert.Equal(t, "HP", got.Brand)
	assert.True(t, got.Deleted)
	assert.True(t, store.records["DA0100"].Deleted)
}

func TestAssetServiceUpdateUnknownIDIsNoop(t *testing.T) {
	store := newFakeAssetStore()
	svc := loadedAssetService(t, store)

	require.NoError(t, svc.Update(context.Background(), "DA9999", models.Asset{Brand: "HP"}))
	assert.Empty(t, svc.List())
	assert.Empty(t, store.records)
}

func TestAssetServiceToggleDeleted(t *testing.T) {
	store := newFakeAssetStore(models.Asset{
		ID:     "DA0100",
		Status: models.StatusInMaintenance,
	})
	svc := loadedAssetService(t, store)

	deleted, err := svc.ToggleDeleted(context.Background(), "DA0100")
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.True(t, deleted.Deleted)
	assert.Equal(t, models.StatusOutOfService, deleted.Status)

	// Restore does not bring the prior status back
	restored, err := svc.ToggleDeleted(context.Background(), "DA0100")
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.False(t, restored.Deleted)
	assert.Equal(t, models.StatusInService, restored.Status)
}

func TestAssetServiceToggleDeletedUnknownID(t *testing.T) {
	svc := loadedAssetService(t, newFakeAssetStore())

	asset, err := svc.ToggleDeleted(context.Background(), "DA9999")
	assert.NoError(t, err)
	assert.Nil(t, asset)
}

func TestAssetServiceToggleDeletedStoreFailure(t *testing.T) {
	store := newFakeAssetStore(models.Asset{ID: "DA0100", Status: models.StatusInService})
	svc := loadedAssetService(t, store)

	store.fail = true
	asset, err := svc.ToggleDeleted(context.Background(), "DA0100")
	assert.ErrorIs(t, err, errStoreDown)
	assert.Nil(t, asset)

	// Mirror still shows the record untouched
	got, ok := svc.Get("DA0100")
	require.True(t, ok)
	assert.False(t, got.Deleted)
	assert.Equal(t, models.StatusInService, got.Status)
}

func TestAssetServiceFilterByType(t *testing.T) {
	svc := loadedAssetService(t, newFakeAssetStore(
		models.Asset{ID: "DA0100", Type: models.AssetTypeWorkstation},
		models.Asset{ID: "LA0100", Type: models.AssetTypeLaptop},
	))

	laptops := svc.FilterByType(models.AssetTypeLaptop)
	require.Len(t, laptops, 1)
	assert.Equal(t, "LA0100", laptops[0].ID)

	assert.Len(t, svc.FilterByType(""), 2)
}

func TestAssetServiceRemove(t *testing.T) {
	store := newFakeAssetStore(models.Asset{ID: "DA0100"})
	svc := loadedAssetService(t, store)

	require.NoError(t, svc.Remove(context.Background(), "DA0100"))
	assert.Empty(t, svc.List())
	assert.Empty(t, store.records)
}

func TestAssetServiceNextIDStableWithoutCreate(t *testing.T) {
	svc := loadedAssetService(t, newFakeAssetStore(
		models.Asset{ID: "DA0100", Type: models.AssetTypeWorkstation},
	))

	first, err := svc.NextID(models.AssetTypeWorkstation)
	require.NoError(t, err)
	assert.Equal(t, "DA0101", first)

	second, err := svc.NextID(models.AssetTypeWorkstation)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAssetServiceNextIDUnknownCategory(t *testing.T) {
	svc := loadedAssetService(t, newFakeAssetStore())

	_, err := svc.NextID("toaster")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}
