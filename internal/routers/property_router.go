package routers

import (
	"Boxtrack/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupPropertyRouter(app *fiber.App, server *cmd.Server) {
	propertyHandler := server.PropertyHandler
	app.Get("/properties", propertyHandler.ListProperties)
	app.Post("/properties", propertyHandler.CreateProperty)
	app.Get("/properties/:id", propertyHandler.GetPropertyByID)
	app.Put("/properties/:id", propertyHandler.UpdateProperty)
	app.Delete("/properties/:id", propertyHandler.DeleteProperty)
}
