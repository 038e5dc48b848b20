package cmd

import (
	"Boxtrack/internal/config"
	"Boxtrack/internal/handlers"
	"Boxtrack/internal/services"

	"gorm.io/gorm"
)

type Server struct {
	Config          *config.Configuration
	DB              *gorm.DB
	BoxService      services.BoxService
	BoxHandler      *handlers.BoxHandler
	CategoryService services.CategoryService
	CategoryHandler *handlers.CategoryHandler
	ExportService   services.ExportService
	ExportHandler   *handlers.ExportHandler
	BackupService   services.BackupService
	BackupHandler   *handlers.BackupHandler
	PropertyService services.PropertyService
	PropertyHandler *handlers.PropertyHandler
	LogService      services.LogService
	BackupScheduler *services.BackupScheduler
}

func NewServer(
	cfg *config.Configuration,
	db *gorm.DB,
	boxService services.BoxService,
	boxHandler *handlers.BoxHandler,
	categoryService services.CategoryService,
	categoryHandler *handlers.CategoryHandler,
	exportService services.ExportService,
	exportHandler *handlers.ExportHandler,
	backupService services.BackupService,
	backupHandler *handlers.BackupHandler,
	propertyService services.PropertyService,
	propertyHandler *handlers.PropertyHandler,
	logService services.LogService,
	backupScheduler *services.BackupScheduler,
) *Server {
	return &Server{
		Config:          cfg,
		DB:              db,
		BoxService:      boxService,
		BoxHandler:      boxHandler,
		CategoryService: categoryService,
		CategoryHandler: categoryHandler,
		ExportService:   exportService,
		ExportHandler:   exportHandler,
		BackupService:   backupService,
		BackupHandler:   backupHandler,
		PropertyService: propertyService,
		PropertyHandler: propertyHandler,
		LogService:      logService,
		BackupScheduler: backupScheduler,
	}
}
