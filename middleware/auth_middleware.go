package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kevotieno/craft_agency/models"
)

func LoginRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}
		c.Locals("authUser", user)
		return c.Next()
	}
}

func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Admin access required",
			})
		}
		c.Locals("authUser", user)
		return c.Next()
	}
}

// AdminPageRequired guards the browser-facing admin entry points. Unlike
// AdminRequired it bounces the visitor back to the home page with an error
// marker instead of failing hard.
func AdminPageRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || user.Role != models.RoleAdmin {
			return c.Redirect("/?error=Unauthorized")
		}
		c.Locals("authUser", user)
		return c.Next()
	}
}

// WorkerRequired admits workers and admins.
func WorkerRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || (user.Role != models.RoleWorker && user.Role != models.RoleAdmin) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Worker access required",
			})
		}
		c.Locals("authUser", user)
		return c.Next()
	}
}
