package services

import (
	"log"

	"edilians-parkinfo/internal/adapters/persistence/models"

	"github.com/robfig/cron/v3"
)

// ReportService logs a daily inventory summary so site operators
// see maintenance backlog without opening the console. Read-only;
// it never mutates a collection.
type ReportService struct {
	assetService *AssetService
	userService  *UserService
	cron         *cron.Cron
}

// NewReportService creates a new report service
func NewReportService(assetService *AssetService, userService *UserService) *ReportService {
	return &ReportService{
		assetService: assetService,
		userService:  userService,
		cron:         cron.New(),
	}
}

// Start schedules the daily summary (08:30)
func (s *ReportService) Start() {
	s.cron.AddFunc("30 8 * * *", s.logInventorySummary)
	s.cron.Start()
	log.Println("🚀 ReportService started (daily summary at 08:30)")
}

// Stop stops the scheduler
func (s *ReportService) Stop() {
	s.cron.Stop()
	log.Println("🛑 ReportService stopped")
}

func (s *ReportService) logInventorySummary() {
	assets := s.assetService.List()
	users := s.userService.List()

	var inMaintenance, outOfService, deleted int
	for _, a := range assets {
		switch {
		case a.Deleted:
			deleted++
		case a.Status == models.StatusInMaintenance:
			inMaintenance++
		case a.Status == models.StatusOutOfService:
			outOfService++
		}
	}

	log.Printf("📋 Inventory summary: %d assets (%d in maintenance, %d out of service, %d deleted), %d directory accounts",
		len(assets), inMaintenance, outOfService, deleted, len(users))
}
