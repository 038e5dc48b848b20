//go:build wireinject
// +build wireinject

package main

import (
	"Boxtrack/cmd"
	"Boxtrack/database"
	"Boxtrack/internal/config"
	"Boxtrack/internal/handlers"
	"Boxtrack/internal/repository"
	"Boxtrack/internal/services"
	"github.com/google/wire"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("boxtrack.yaml")
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		database.SetupDatabase,
		repository.NewBoxRepository,
		repository.NewCategoryRepository,
		repository.NewHistoryRepository,
		repository.NewPropertyRepository,
		services.NewBoxService,
		handlers.NewBoxHandler,
		services.NewCategoryService,
		handlers.NewCategoryHandler,
		services.NewExportService,
		handlers.NewExportHandler,
		services.NewBackupService,
		handlers.NewBackupHandler,
		services.NewPropertyService,
		handlers.NewPropertyHandler,
		services.NewLogService,
		services.NewBackupScheduler,
		Provider,
	)
	return nil, nil
}
