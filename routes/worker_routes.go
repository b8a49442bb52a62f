package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kevotieno/craft_agency/handlers"
	"github.com/kevotieno/craft_agency/middleware"
)

// WorkerRoutes mounts the course-material CRUD under the worker panel path.
// Admins are admitted too.
func WorkerRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	workers := api.Group("/admin/workers", middleware.WorkerRequired())

	materials := workers.Group("/materials")
	materials.Get("", handlers.GetMaterials)
	materials.Post("", handlers.UploadMaterial)
	materials.Put("/:materialId", handlers.EditMaterial)
	materials.Delete("/:materialId", handlers.DeleteMaterial)
}
