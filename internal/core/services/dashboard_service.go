package services

import "edilians-parkinfo/internal/adapters/persistence/models"

// DashboardService computes the console home-page stat tiles from
// the live collections
type DashboardService struct {
	assetService *AssetService
	userService  *UserService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(assetService *AssetService, userService *UserService) *DashboardService {
	return &DashboardService{
		assetService: assetService,
		userService:  userService,
	}
}

// DashboardData represents the console overview
type DashboardData struct {
	// Equipment statistics
	TotalAssets     int            `json:"total_assets"`
	ActiveEquipment int            `json:"active_equipment"`
	AssetsByType    map[string]int `json:"assets_by_type"`
	AssetsByStatus  map[string]int `json:"assets_by_status"`
	AssetsBySite    map[string]int `json:"assets_by_site"`

	// Directory statistics
	TotalUsers  int            `json:"total_users"`
	ActiveUsers int            `json:"active_users"`
	UsersByRole map[string]int `json:"users_by_role"`
}

// Overview builds the dashboard data. Active equipment counts
// in-service, non-deleted assets; active users counts non-deleted
// accounts.
func (s *DashboardService) Overview() *DashboardData {
	assets := s.assetService.List()
	users := s.userService.List()

	data := &DashboardData{
		TotalAssets:    len(assets),
		AssetsByType:   make(map[string]int),
		AssetsByStatus: make(map[string]int),
		AssetsBySite:   make(map[string]int),
		TotalUsers:     len(users),
		UsersByRole:    make(map[string]int),
	}

	for _, a := range assets {
		data.AssetsByType[string(a.Type)]++
		data.AssetsByStatus[string(a.Status)]++
		if a.Site != "" {
			data.AssetsBySite[a.Site]++
		}
		if !a.Deleted && a.Status == models.StatusInService {
			data.ActiveEquipment++
		}
	}

	for _, u := range users {
		data.UsersByRole[u.Role]++
		if !u.Deleted {
			data.ActiveUsers++
		}
	}

	return data
}
