package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kevotieno/craft_agency/handlers"
	"github.com/kevotieno/craft_agency/middleware"
)

func CourseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	courses := api.Group("/courses")
	courses.Get("/", handlers.GetCourses)
	courses.Get("/dashboard", middleware.AdminRequired(), handlers.GetCourseDashboard)
	courses.Post("/apply", middleware.LoginRequired(), handlers.ApplyCourse)
	courses.Get("/:title", handlers.GetCoursePage)
}
