package routers

import (
	"Boxtrack/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupExportRouter(app *fiber.App, server *cmd.Server) {
	exportHandler := server.ExportHandler
	app.Get("/export/csv", exportHandler.ExportCSV)
	app.Get("/export/json", exportHandler.ExportJSON)
	app.Get("/export/markdown", exportHandler.ExportMarkdown)
	app.Get("/export/pdf", exportHandler.ExportPDF)
	app.Post("/export/labels", exportHandler.ExportLabels)
}
