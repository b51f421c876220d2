package config

import (
	"context"
	"log"

	"edilians-parkinfo/internal/adapters/persistence/models"
	"edilians-parkinfo/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Seed markers persisted in the meta table so that "seed exactly
// once" survives restarts instead of riding on a process flag.
const (
	assetsSeededKey = "assets_seeded"
	usersSeededKey  = "users_seeded"
)

// Seeder populates empty collections with the fixed sample dataset
type Seeder struct {
	db   *gorm.DB
	meta repositories.MetaStore
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, meta: repositories.NewMetaStore(db)}
}

// Run seeds both collections. Each one is seeded only when its
// marker is absent and the collection is empty.
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	ctx := context.Background()
	if err := s.seedAssets(ctx); err != nil {
		return err
	}
	if err := s.seedUsers(ctx); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

func (s *Seeder) seedAssets(ctx context.Context) error {
	_, done, err := s.meta.Get(ctx, assetsSeededKey)
	if err != nil || done {
		return err
	}

	var count int64
	if err := s.db.Model(&models.Asset{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		assets := sampleAssets()
		if err := s.db.Create(&assets).Error; err != nil {
			return err
		}
		log.Printf("   Seeded %d sample assets", len(assets))
	}

	return s.meta.Set(ctx, assetsSeededKey, "true")
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	_, done, err := s.meta.Get(ctx, usersSeededKey)
	if err != nil || done {
		return err
	}

	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		users := sampleUsers()
		if err := s.db.Create(&users).Error; err != nil {
			return err
		}
		log.Printf("   Seeded %d sample users", len(users))
	}

	return s.meta.Set(ctx, usersSeededKey, "true")
}

// sampleAssets is the fixed demo inventory the console ships with
func sampleAssets() []models.Asset {
	return []models.Asset{
		// Workstations (DA)
		{ID: "DA0100", Name: "Dell OptiPlex 5090", Type: models.AssetTypeWorkstation, Status: models.StatusInService, User: "Jean Dupont", InstallDate: "2023-06-15", Site: "QUI", Function: "IT", Brand: "Dell", Model: "OptiPlex 5090", SerialNumber: "DOPT5090-001", Operator: "MNO"},
		{ID: "DA0101", Name: "HP EliteDesk 800 G6", Type: models.AssetTypeWorkstation, Status: models.StatusInService, User: "Sophie Martin", InstallDate: "2023-07-20", Site: "DAR", Function: "Accounting", Brand: "HP", Model: "EliteDesk 800 G6", SerialNumber: "HPED800-002", Operator: "FBO"},
		{ID: "DA0102", Name: "Lenovo ThinkCentre M70q", Type: models.AssetTypeWorkstation, Status: models.StatusInMaintenance, User: "Pierre Dubois", InstallDate: "2023-08-10", Site: "SFA", Function: "HR", Brand: "Lenovo", Model: "ThinkCentre M70q", SerialNumber: "LTC70Q-003", Operator: "MPA"},
		{ID: "DA0103", Name: "Dell OptiPlex 7090", Type: models.AssetTypeWorkstation, Status: models.StatusInService, User: "Marie Leroy", InstallDate: "2023-09-05", Site: "SGA", Function: "Management", Brand: "Dell", Model: "OptiPlex 7090", SerialNumber: "DOPT7090-004", Operator: "AME"},
		{ID: "DA0104", Name: "HP ProDesk 600 G6", Type: models.AssetTypeWorkstation, Status: models.StatusInService, User: "Lucas Bernard", InstallDate: "2023-10-12", Site: "QUI", Function: "Production", Brand: "HP", Model: "ProDesk 600 G6", SerialNumber: "HPPD600-005", Operator: "SMZ"},

		// Laptops (LA)
		{ID: "LA0100", Name: "HP EliteBook 850 G8", Type: models.AssetTypeLaptop, Status: models.StatusInService, User: "Emma Petit", InstallDate: "2023-06-20", Site: "DAR", Function: "Sales", Brand: "HP", Model: "EliteBook 850 G8", SerialNumber: "HPEB850-001", Operator: "MNO"},
		{ID: "LA0101", Name: "Dell Latitude 5520", Type: models.AssetTypeLaptop, Status: models.StatusInMaintenance, User: "Thomas Richard", InstallDate: "2023-07-25", Site: "SFA", Function: "Marketing", Brand: "Dell", Model: "Latitude 5520", SerialNumber: "DL5520-002", Operator: "FBO"},
		{ID: "LA0102", Name: "Lenovo ThinkPad X1", Type: models.AssetTypeLaptop, Status: models.StatusInService, User: "Julie Moreau", InstallDate: "2023-08-15", Site: "SGA", Function: "Management", Brand: "Lenovo", Model: "ThinkPad X1", SerialNumber: "LTP-X1-003", Operator: "MPA"},
		{ID: "LA0103", Name: "HP ProBook 450 G8", Type: models.AssetTypeLaptop, Status: models.StatusInService, User: "Antoine Durand", InstallDate: "2023-09-10", Site: "QUI", Function: "IT", Brand: "HP", Model: "ProBook 450 G8", SerialNumber: "HPPB450-004", Operator: "AME"},
		{ID: "LA0104", Name: "Dell Latitude 7420", Type: models.AssetTypeLaptop, Status: models.StatusOutOfService, User: "Sarah Lambert", InstallDate: "2023-10-05", Site: "DAR", Function: "HR", Brand: "Dell", Model: "Latitude 7420", SerialNumber: "DL7420-005", Operator: "SMZ"},

		// BAB units
		{ID: "BB-EDI-010", Name: "BAB System X1", Type: models.AssetTypeBABUnit, Status: models.StatusInService, User: "Production Line 1", InstallDate: "2024-01-15", Site: "SGA", Function: "Production", Brand: "BAB Systems", Model: "X1", SerialNumber: "BABX1-001", Operator: "MNO"},
		{ID: "BB-EDI-011", Name: "BAB System X2", Type: models.AssetTypeBABUnit, Status: models.StatusInMaintenance, User: "Production Line 2", InstallDate: "2024-01-20", Site: "QUI", Function: "Production", Brand: "BAB Systems", Model: "X2", SerialNumber: "BABX2-002", Operator: "FBO"},
		{ID: "BB-EDI-012", Name: "BAB System X1 Pro", Type: models.AssetTypeBABUnit, Status: models.StatusInService, User: "Production Line 3", InstallDate: "2024-02-01", Site: "DAR", Function: "Production", Brand: "BAB Systems", Model: "X1 Pro", SerialNumber: "BABX1P-003", Operator: "MPA"},

		// Printers
		{ID: "IMP-QUI-IT", Name: "HP LaserJet Pro", Type: models.AssetTypePrinter, Status: models.StatusInService, User: "IT Department", InstallDate: "2024-01-10", Site: "QUI", Service: "IT", Brand: "HP", Model: "LaserJet Pro M404dn", SerialNumber: "HPLJ-2024-001", Operator: "AME", IPAddress: "192.168.1.100"},
		{ID: "IMP-DAR-PROD", Name: "Xerox WorkCentre", Type: models.AssetTypePrinter, Status: models.StatusInService, User: "Production Department", InstallDate: "2024-01-15", Site: "DAR", Service: "Production", Brand: "Xerox", Model: "WorkCentre 6515", SerialNumber: "XWC-2024-002", Operator: "SMZ", IPAddress: "192.168.2.100"},
	}
}

// sampleUsers is the fixed demo directory
func sampleUsers() []models.User {
	return []models.User{
		{ID: "USR001", Site: "QUI", FirstName: "Jean", LastName: "Dupont", Function: "IT", Role: models.RoleAdmin, Password: "encrypted_password_1"},
		{ID: "USR002", Site: "DAR", FirstName: "Marie", LastName: "Martin", Function: "HR", Role: models.RoleUser, Password: "encrypted_password_2"},
		{ID: "USR003", Site: "SFA", FirstName: "Pierre", LastName: "Bernard", Function: "Production", Role: models.RoleManager, Password: "encrypted_password_3"},
	}
}
