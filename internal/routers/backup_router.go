package routers

import (
	"Boxtrack/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupBackupRouter(app *fiber.App, server *cmd.Server) {
	backupHandler := server.BackupHandler
	app.Get("/backups", backupHandler.ListBackups)
	app.Post("/backups", backupHandler.CreateBackup)
	app.Put("/backups/config", backupHandler.UpdateConfig)
	app.Delete("/backups/:name", backupHandler.DeleteBackup)
}
