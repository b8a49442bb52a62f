package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kevotieno/craft_agency/handlers"
	"github.com/kevotieno/craft_agency/middleware"
)

func AdminRoutes(app *fiber.App) {
	// Legacy browser entry point keeps the redirect-style gate.
	app.Get("/admin", middleware.AdminPageRequired(), handlers.GetAdminDashboard)

	api := app.Group("/api/v1")

	// The gate is attached per route group rather than on /admin itself:
	// the worker panel lives under /admin/workers with its own gate.
	admin := api.Group("/admin")
	adminOnly := middleware.AdminRequired()

	admin.Get("/dashboard", adminOnly, handlers.GetAdminDashboard)
	admin.Get("/payments", adminOnly, handlers.GetPayments)
	admin.Post("/verify-payment", adminOnly, handlers.VerifyPayment)
	admin.Get("/orders", adminOnly, handlers.GetOrders)

	users := admin.Group("/users", adminOnly)
	users.Get("", handlers.GetAllUsers)
	users.Post("", handlers.AddUser)

	courses := admin.Group("/courses", adminOnly)
	courses.Post("", handlers.AddCourse)
	courses.Put("/:courseId", handlers.EditCourse)
	courses.Delete("/:courseId", handlers.DeleteCourse)

	applications := admin.Group("/applications", adminOnly)
	applications.Post("/:applicationId/approve", handlers.ApproveApplication)
	applications.Post("/:applicationId/reject", handlers.RejectApplication)

	testimonials := admin.Group("/testimonials", adminOnly)
	testimonials.Post("", handlers.AddTestimonial)
	testimonials.Put("/:testimonialId", handlers.EditTestimonial)
	testimonials.Delete("/:testimonialId", handlers.DeleteTestimonial)

	portfolio := admin.Group("/portfolio", adminOnly)
	portfolio.Post("", handlers.AddPortfolioItem)
	portfolio.Put("/:itemId", handlers.EditPortfolioItem)
	portfolio.Delete("/:itemId", handlers.DeletePortfolioItem)
}
