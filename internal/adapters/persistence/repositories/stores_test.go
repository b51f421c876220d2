package repositories

import (
	"context"
	"errors"
	"testing"

	"edilians-parkinfo/internal/adapters/persistence/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func TestAssetStoreAddAndGetAll(t *testing.T) {
	store := NewAssetStore(testDB(t))
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, &models.Asset{
		ID:     "DA0100",
		Type:   models.AssetTypeWorkstation,
		Status: models.StatusInService,
		Brand:  "Dell",
	}))

	assets, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "DA0100", assets[0].ID)
	assert.Equal(t, "Dell", assets[0].Brand)
}

func TestAssetStoreAddDuplicateKey(t *testing.T) {
	store := NewAssetStore(testDB(t))
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, &models.Asset{ID: "DA0100", Type: models.AssetTypeWorkstation, Status: models.StatusInService}))
	err := store.Add(ctx, &models.Asset{ID: "DA0100", Type: models.AssetTypeWorkstation, Status: models.StatusInService})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestAssetStorePutReplacesRecord(t *testing.T) {
	store := NewAssetStore(testDB(t))
	ctx := context.Background()

	asset := models.Asset{ID: "DA0100", Type: models.AssetTypeWorkstation, Status: models.StatusInService, Brand: "Dell"}
	require.NoError(t, store.Add(ctx, &asset))

	asset.Brand = "HP"
	asset.Deleted = true
	require.NoError(t, store.Put(ctx, &asset))

	assets, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "HP", assets[0].Brand)
	assert.True(t, assets[0].Deleted)
}

func TestAssetStoreDeleteAndExists(t *testing.T) {
	store := NewAssetStore(testDB(t))
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, &models.Asset{ID: "DA0100", Type: models.AssetTypeWorkstation, Status: models.StatusInService}))

	ok, err := store.Exists(ctx, "DA0100")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Delete(ctx, "DA0100"))
	// Absent id stays a no-op
	require.NoError(t, store.Delete(ctx, "DA0100"))

	ok, err = store.Exists(ctx, "DA0100")
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestUserStoreRoundTrip(t *testing.T) {
	store := NewUserStore(testDB(t))
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, &models.User{
		ID:        "USR001",
		Site:      "QUI",
		FirstName: "Jean",
		LastName:  "Dupont",
		Role:      models.RoleAdmin,
	}))

	users, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Dupont", users[0].LastName)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestMetaStoreGetSet(t *testing.T) {
	store := NewMetaStore(testDB(t))
	ctx := context.Background()

	_, found, err := store.Get(ctx, "assets_seeded")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "assets_seeded", "true"))

	value, found, err := store.Get(ctx, "assets_seeded")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", value)
}
