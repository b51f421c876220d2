package models

import "gorm.io/gorm"

// ============================================================
// Enumerations
// ============================================================

// AssetType classifies a device and governs its id format
type AssetType string

const (
	AssetTypeWorkstation AssetType = "workstation"
	AssetTypeLaptop      AssetType = "laptop"
	AssetTypePrinter     AssetType = "printer"
	AssetTypeBABUnit     AssetType = "bab-unit"
	AssetTypeOther       AssetType = "other"
)

// Valid reports whether t is one of the known categories
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeWorkstation, AssetTypeLaptop, AssetTypePrinter,
		AssetTypeBABUnit, AssetTypeOther:
		return true
	}
	return false
}

// AssetStatus represents the service state of a device
type AssetStatus string

const (
	StatusInService     AssetStatus = "in-service"
	StatusInMaintenance AssetStatus = "in-maintenance"
	StatusOutOfService  AssetStatus = "out-of-service"
)

// Sites are the fixed physical location codes shared by both collections
var Sites = []string{"QUI", "DAR", "SFA", "SGA"}

// Functions are the department / job-function labels
var Functions = []string{
	"Management", "Accounting", "HR", "IT",
	"Production", "Quality", "Sales", "Marketing",
}

// Roles a directory account can hold
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleUser    = "User"
)

// ============================================================
// Records
// ============================================================

// Asset represents one physical device in the assets table
type Asset struct {
	ID           string      `gorm:"primaryKey;size:20" json:"id"`
	Name         string      `gorm:"size:100;not null" json:"name"`
	Type         AssetType   `gorm:"size:20;not null;index" json:"type"`
	Status       AssetStatus `gorm:"size:20;not null;index" json:"status"`
	User         string      `gorm:"size:100" json:"user"`
	InstallDate  string      `gorm:"size:10" json:"installDate"`
	Site         string      `gorm:"size:10;index" json:"site"`
	Function     string      `gorm:"size:50" json:"function"`
	Brand        string      `gorm:"size:50" json:"brand"`
	Model        string      `gorm:"size:100" json:"model"`
	SerialNumber string      `gorm:"size:50" json:"serialNumber"`
	Operator     string      `gorm:"size:10" json:"operator"`
	Comments     string      `gorm:"type:text" json:"comments"`
	Service      string      `gorm:"size:50" json:"service"`
	IPAddress    string      `gorm:"size:45" json:"ipAddress"`
	MACAddress   string      `gorm:"size:17" json:"macAddress"`
	Deleted      bool        `gorm:"default:false" json:"deleted"`
}

func (Asset) TableName() string {
	return "assets"
}

// User represents one personnel account in the users table.
// Passwords are stored and returned as-is; the directory is a plain
// register behind the console login, not an authentication backend.
type User struct {
	ID        string `gorm:"primaryKey;size:10" json:"id"`
	Site      string `gorm:"size:10;not null;index" json:"site"`
	FirstName string `gorm:"size:50;not null" json:"firstName"`
	LastName  string `gorm:"size:50;not null" json:"lastName"`
	Function  string `gorm:"size:50;not null" json:"function"`
	Role      string `gorm:"size:20;not null;index" json:"role"`
	Password  string `gorm:"size:100;not null" json:"password"`
	Deleted   bool   `gorm:"default:false" json:"deleted"`
}

func (User) TableName() string {
	return "users"
}

// MetaEntry is a key/value row for store-level markers (seed
// flags). The column is meta_key because KEY is reserved in mysql.
type MetaEntry struct {
	Key   string `gorm:"column:meta_key;primaryKey;size:50" json:"key"`
	Value string `gorm:"size:100" json:"value"`
}

func (MetaEntry) TableName() string {
	return "meta"
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Asset{},
		&User{},
		&MetaEntry{},
	)
}
