package config

import (
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

func TestSeederPopulatesEmptyDatabase(t *testing.T) {
	db := testDB(t)
	require.NoError(t, NewSeeder(db).Run())

	var assetCount, userCount int64
	require.NoError(t, db.Model(&models.Asset{}).Count(&assetCount).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 15, assetCount)
	assert.EqualValues(t, 3, userCount)

	// Markers persisted. Each lookup gets its own dest; GORM folds
	// a populated primary key into the query conditions.
	var assetMarker models.MetaEntry
	require.NoError(t, db.Where("meta_key = ?", "assets_seeded").First(&assetMarker).Error)
	assert.Equal(t, "true", assetMarker.Value)
	var userMarker models.MetaEntry
	require.NoError(t, db.Where("meta_key = ?", "users_seeded").First(&userMarker).Error)
	assert.Equal(t, "true", userMarker.Value)
}

func TestSeederRunsOnlyOnce(t *testing.T) {
	db := testDB(t)
	require.NoError(t, NewSeeder(db).Run())
	require.NoError(t, NewSeeder(db).Run())

	var count int64
	require.NoError(t, db.Model(&models.Asset{}).Count(&count).Error)
	assert.EqualValues(t, 15, count)
}

func TestSeederSkipsNonEmptyCollection(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&models.Asset{ID: "DA0500", Type: models.AssetTypeWorkstation, Status: models.StatusInService}).Error)

	require.NoError(t, NewSeeder(db).Run())

	var count int64
	require.NoError(t, db.Model(&models.Asset{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Users still seeded and the asset marker still set
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
	var entry models.MetaEntry
	require.NoError(t, db.Where("meta_key = ?", assetsSeededKey).First(&entry).Error)
	assert.Equal(t, "true", entry.Value)
}

func TestSeederMarkerWinsOverEmptyCollection(t *testing.T) {
	db := testDB(t)
	require.NoError(t, NewSeeder(db).Run())

	// Wiping the data does not trigger a reseed while the marker stands
	require.NoError(t, db.Where("1 = 1").Delete(&models.Asset{}).Error)
	require.NoError(t, NewSeeder(db).Run())

	var count int64
	require.NoError(t, db.Model(&models.Asset{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
