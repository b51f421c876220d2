package services

import (
	"sort"
	"strings"

	"edilians-parkinfo/internal/adapters/persistence/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ============================================================
// Query layer: pure search + sort over in-memory record lists.
// No side effects, no persistence. Search composes before sort.
// ============================================================

// SortDirection orders a sorted view
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// newCollator builds the comparison used for sorted views. Site
// data and labels are French; a Collator is not safe for
// concurrent use, so each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.French, collate.IgnoreCase)
}

// Sortable asset fields mapped to typed accessors. A field missing
// from the map is not sortable and leaves input order untouched.
var assetSortFields = map[string]func(*models.Asset) string{
	"id":       func(a *models.Asset) string { return a.ID },
	"user":     func(a *models.Asset) string { return a.User },
	"brand":    func(a *models.Asset) string { return a.Brand },
	"model":    func(a *models.Asset) string { return a.Model },
	"status":   func(a *models.Asset) string { return string(a.Status) },
	"operator": func(a *models.Asset) string { return a.Operator },
}

// Sortable user fields
var userSortFields = map[string]func(*models.User) string{
	"id":        func(u *models.User) string { return u.ID },
	"firstName": func(u *models.User) string { return u.FirstName },
	"lastName":  func(u *models.User) string { return u.LastName },
	"site":      func(u *models.User) string { return u.Site },
	"function":  func(u *models.User) string { return u.Function },
	"role":      func(u *models.User) string { return u.Role },
}

// SearchAssets returns the assets where any searchable text field
// contains the query as a case-insensitive substring. An empty
// query returns the input unchanged, same order, same slice.
func SearchAssets(assets []models.Asset, query string) []models.Asset {
	if query == "" {
		return assets
	}

	q := strings.ToLower(query)
	matched := make([]models.Asset, 0, len(assets))
	for _, a := range assets {
		fields := []string{
			a.ID, a.User, a.Brand, a.Model,
			a.Operator, a.Comments, a.Service, a.Site,
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				matched = append(matched, a)
				break
			}
		}
	}
	return matched
}

// SearchUsers returns the users matching the query the same way
func SearchUsers(users []models.User, query string) []models.User {
	if query == "" {
		return users
	}

	q := strings.ToLower(query)
	matched := make([]models.User, 0, len(users))
	for _, u := range users {
		fields := []string{
			u.ID, u.FirstName, u.LastName,
			u.Site, u.Function, u.Role,
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				matched = append(matched, u)
				break
			}
		}
	}
	return matched
}

// SortAssets returns a stably sorted copy of the assets by the
// given field. An unknown or empty field preserves input order.
func SortAssets(assets []models.Asset, field string, dir SortDirection) []models.Asset {
	accessor, ok := assetSortFields[field]
	if !ok {
		return assets
	}

	col := newCollator()
	sorted := make([]models.Asset, len(assets))
	copy(sorted, assets)
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := col.CompareString(accessor(&sorted[i]), accessor(&sorted[j]))
		if dir == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

// SortUsers returns a stably sorted copy of the users by the
// given field, same contract as SortAssets.
func SortUsers(users []models.User, field string, dir SortDirection) []models.User {
	accessor, ok := userSortFields[field]
	if !ok {
		return users
	}

	col := newCollator()
	sorted := make([]models.User, len(users))
	copy(sorted, users)
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := col.CompareString(accessor(&sorted[i]), accessor(&sorted[j]))
		if dir == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}
