package routers

import (
	"Boxtrack/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupBoxRouter(app *fiber.App, server *cmd.Server) {
	boxHandler := server.BoxHandler
	app.Get("/boxes", boxHandler.ListBoxes)
	app.Post("/boxes", boxHandler.CreateBox)
	// static segments before the :id parameter
	app.Get("/boxes/next-number", boxHandler.NextBoxNumber)
	app.Get("/boxes/recent", boxHandler.RecentBoxes)
	app.Post("/boxes/purge", boxHandler.PurgeDeleted)
	app.Get("/boxes/:id", boxHandler.GetBoxByID)
	app.Put("/boxes/:id", boxHandler.UpdateBox)
	app.Delete("/boxes/:id", boxHandler.DeleteBox)
	app.Delete("/boxes/:id/hard", boxHandler.HardDeleteBox)
	app.Get("/boxes/:id/history", boxHandler.GetBoxHistory)
}
