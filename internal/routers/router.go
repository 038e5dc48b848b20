package routers

import (
	"Boxtrack/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupBoxRouter(app, server)
	SetupCategoryRouter(app, server)
	SetupExportRouter(app, server)
	SetupBackupRouter(app, server)
	SetupPropertyRouter(app, server)
}
