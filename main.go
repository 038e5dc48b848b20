package main

import (
	"Boxtrack/database"
	"Boxtrack/internal/routers"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	server, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseDatabase(server.DB)

	server.BackupScheduler.Start()

	cfg := server.Config
	app := fiber.New(fiber.Config{
		BodyLimit:   cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency: cfg.Server.Concurrency * 1024,
		AppName:     "Boxtrack",
	})

	app.Use(logger.New())
	routers.SetupRoutes(app, server)

	err = app.Listen(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
