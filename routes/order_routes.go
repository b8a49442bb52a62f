package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kevotieno/craft_agency/handlers"
	"github.com/kevotieno/craft_agency/middleware"
)

func OrderRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	orders := api.Group("/orders")
	orders.Post("/place", middleware.LoginRequired(), handlers.PlaceOrder)
}
