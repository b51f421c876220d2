package services

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"edilians-parkinfo/internal/adapters/persistence/models"
)

// ============================================================
// Identifier allocation
//
// Ids are derived from the currently loaded record set on every
// call; nothing is reserved. Operators read the prefix at a
// glance: DA0107 is a workstation, LA0103 a laptop, BB-EDI-012
// a BAB unit, IMP-* a printer, USR005 a directory account.
// ============================================================

// NextAssetID derives the next free id for a new asset of the
// given category. Printer ids are count-based and the fallback
// category is random, so Create still rejects collisions.
func NextAssetID(assets []models.Asset, t models.AssetType) string {
	ids := make([]string, 0, len(assets))
	for _, a := range assets {
		if a.Type == t {
			ids = append(ids, a.ID)
		}
	}

	switch t {
	case models.AssetTypeWorkstation:
		return fmt.Sprintf("DA%04d", maxSuffix(ids, "DA", 100)+1)
	case models.AssetTypeLaptop:
		return fmt.Sprintf("LA%04d", maxSuffix(ids, "LA", 100)+1)
	case models.AssetTypeBABUnit:
		return fmt.Sprintf("BB-EDI-%03d", maxSuffix(ids, "BB-EDI-", 10)+1)
	case models.AssetTypePrinter:
		return fmt.Sprintf("IMP-%d", len(ids)+1)
	}

	// Unrecognized category: random 4-digit fallback
	return fmt.Sprintf("GEN%d", rand.Intn(9000)+1000)
}

// NextUserID derives the next free directory account id as a
// single global sequence over the whole collection, soft-deleted
// accounts included.
func NextUserID(users []models.User) string {
	max := 0
	for _, u := range users {
		n, err := strconv.Atoi(strings.TrimPrefix(u.ID, "USR"))
		if err != nil || n <= 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("USR%03d", max+1)
}

// maxSuffix returns the highest numeric suffix among ids carrying
// the prefix, or floor when none parse. Prefix match is case-sensitive.
func maxSuffix(ids []string, prefix string, floor int) int {
	max := floor
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(id[len(prefix):])
		if err != nil {
			n = floor
		}
		if n > max {
			max = n
		}
	}
	return max
}
