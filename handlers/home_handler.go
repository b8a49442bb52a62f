package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/kevotieno/craft_agency/database"
	"github.com/kevotieno/craft_agency/models"
)

// GetHome aggregates the public front-page data.
func GetHome(c *fiber.Ctx) error {
	var testimonials []models.Testimonial
	var courses []models.Course
	var portfolio []models.PortfolioItem

	if err := database.DB.Order("id DESC").Find(&testimonials).Error; err != nil {
		log.Printf("🔥 home: testimonial listing failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load home page data"})
	}
	if err := database.DB.Order("id DESC").Find(&courses).Error; err != nil {
		log.Printf("🔥 home: course listing failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load home page data"})
	}
	if err := database.DB.Order("created_at DESC").Find(&portfolio).Error; err != nil {
		log.Printf("🔥 home: portfolio listing failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load home page data"})
	}

	return c.JSON(fiber.Map{
		"testimonials": testimonials,
		"courses":      courses,
		"portfolio":    portfolio,
	})
}
