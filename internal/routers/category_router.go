package routers

import (
	"Boxtrack/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRouter(app *fiber.App, server *cmd.Server) {
	categoryHandler := server.CategoryHandler
	app.Get("/categories", categoryHandler.ListCategories)
	app.Post("/categories", categoryHandler.CreateCategory)
	app.Put("/categories/:id", categoryHandler.RenameCategory)
	app.Delete("/categories/:id", categoryHandler.DeleteCategory)
}
