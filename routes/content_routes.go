package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kevotieno/craft_agency/handlers"
)

func ContentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/home", handlers.GetHome)
	api.Get("/testimonials", handlers.GetTestimonials)
	api.Get("/portfolio", handlers.GetPortfolio)
}
