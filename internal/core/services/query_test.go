package services

import (
	"testing"

	"edilians-parkinfo/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
)

func TestSearchAssetsEmptyQueryIsIdentity(t *testing.T) {
	assets := []models.Asset{
		{ID: "DA0100", Brand: "Dell"},
		{ID: "LA0100", Brand: "HP"},
	}
	got := SearchAssets(assets, "")
	assert.Equal(t, assets, got)
	// Same backing slice, not a copy
	assert.Same(t, &assets[0], &got[0])
}

func TestSearchAssetsCaseInsensitive(t *testing.T) {
	assets := []models.Asset{
		{ID: "DA0100", Brand: "Dell"},
		{ID: "LA0100", Brand: "HP"},
	}

	for _, q := range []string{"dell", "DELL", "Dell"} {
		got := SearchAssets(assets, q)
		assert.Len(t, got, 1)
		assert.Equal(t, "DA0100", got[0].ID)
	}
}

func TestSearchAssetsMatchesAnyField(t *testing.T) {
	assets := []models.Asset{
		{ID: "DA0100", Comments: "replaced screen"},
		{ID: "IMP-QUI-IT", Service: "IT", Site: "QUI"},
	}

	assert.Len(t, SearchAssets(assets, "screen"), 1)
	assert.Len(t, SearchAssets(assets, "qui"), 1)
	assert.Empty(t, SearchAssets(assets, "nomatch"))
}

func TestSearchUsers(t *testing.T) {
	users := []models.User{
		{ID: "USR001", FirstName: "Jean", LastName: "Dupont", Site: "QUI", Function: "IT", Role: "Admin"},
		{ID: "USR002", FirstName: "Marie", LastName: "Martin", Site: "DAR", Function: "HR", Role: "User"},
	}

	assert.Len(t, SearchUsers(users, "dupont"), 1)
	assert.Len(t, SearchUsers(users, "USR"), 2)
	assert.Equal(t, users, SearchUsers(users, ""))
}

func TestSortAssetsStable(t *testing.T) {
	assets := []models.Asset{
		{ID: "DA0102", Brand: "Dell"},
		{ID: "DA0100", Brand: "Dell"},
		{ID: "DA0101", Brand: "Apple"},
	}

	asc := SortAssets(assets, "brand", SortAsc)
	assert.Equal(t, "DA0101", asc[0].ID)
	// Equal keys keep input order
	assert.Equal(t, "DA0102", asc[1].ID)
	assert.Equal(t, "DA0100", asc[2].ID)

	desc := SortAssets(assets, "brand", SortDesc)
	assert.Equal(t, "DA0102", desc[0].ID)
	assert.Equal(t, "DA0100", desc[1].ID)
	assert.Equal(t, "DA0101", desc[2].ID)
}

func TestSortAssetsUnknownFieldIsNoop(t *testing.T) {
	assets := []models.Asset{
		{ID: "DA0102"},
		{ID: "DA0100"},
	}

	assert.Equal(t, assets, SortAssets(assets, "", SortAsc))
	assert.Equal(t, assets, SortAssets(assets, "bogus", SortAsc))
}

func TestSortAssetsDoesNotMutateInput(t *testing.T) {
	assets := []models.Asset{
		{ID: "DA0102"},
		{ID: "DA0100"},
	}

	sorted := SortAssets(assets, "id", SortAsc)
	assert.Equal(t, "DA0100", sorted[0].ID)
	assert.Equal(t, "DA0102", assets[0].ID)
}

func TestSortAssetsCaseInsensitiveCompare(t *testing.T) {
	assets := []models.Asset{
		{ID: "DA0100", User: "bernard"},
		{ID: "DA0101", User: "Armand"},
	}

	sorted := SortAssets(assets, "user", SortAsc)
	assert.Equal(t, "DA0101", sorted[0].ID)
}

func TestSortUsers(t *testing.T) {
	users := []models.User{
		{ID: "USR002", LastName: "Martin"},
		{ID: "USR001", LastName: "Bernard"},
	}

	sorted := SortUsers(users, "lastName", SortAsc)
	assert.Equal(t, "USR001", sorted[0].ID)

	sorted = SortUsers(users, "lastName", SortDesc)
	assert.Equal(t, "USR002", sorted[0].ID)
}

func TestSearchThenSortCompose(t *testing.T) {
	assets := []models.Asset{
		{ID: "DA0102", Brand: "Dell", Model: "OptiPlex"},
		{ID: "DA0100", Brand: "HP", Model: "ProDesk"},
		{ID: "DA0101", Brand: "Dell", Model: "Latitude"},
	}

	got := SortAssets(SearchAssets(assets, "dell"), "model", SortAsc)
	assert.Len(t, got, 2)
	assert.Equal(t, "DA0101", got[0].ID)
	assert.Equal(t, "DA0102", got[1].ID)
}
