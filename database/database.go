package database

import (
	"Boxtrack/internal/config"
	"Boxtrack/internal/models"
	"fmt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"log"
)

func SetupDatabase(cfg *config.Configuration) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Storage.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Storage.Path)
	case "postgres":
		dialector = postgres.Open(cfg.Storage.DSN)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Storage.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(models.Box{}, models.Category{}, models.BoxHistory{}, models.Property{})
	if err != nil {
		return nil, err
	}
	if err := seedDefaultCategory(db); err != nil {
		return nil, err
	}
	return db, nil
}

// seedDefaultCategory inserts "General" into an empty registry so the first
// box always has a valid category to reference.
func seedDefaultCategory(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&models.Category{Name: "General", IsActive: true}).Error
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
