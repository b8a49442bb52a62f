package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kevotieno/craft_agency/database"
	"github.com/kevotieno/craft_agency/models"
)

func GetTestimonials(c *fiber.Ctx) error {
	var testimonials []models.Testimonial
	if err := database.DB.Order("id DESC").Find(&testimonials).Error; err != nil {
		log.Printf("🔥 testimonials: listing failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load testimonials"})
	}
	return c.JSON(testimonials)
}

func AddTestimonial(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	description := strings.TrimSpace(c.FormValue("description"))
	if name == "" || description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name and description are required"})
	}

	testimonial := models.Testimonial{Name: name, Description: description}

	if photo, err := c.FormFile("photo"); err == nil {
		if err := ValidateImageUpload(photo); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		filename, err := SaveUpload(photo)
		if err != nil {
			log.Printf("🔥 testimonials: failed to store photo: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store photo"})
		}
		testimonial.Photo = &filename
	}

	if err := database.DB.Create(&testimonial).Error; err != nil {
		log.Printf("🔥 testimonials: insert failed for %q: %v", name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add testimonial"})
	}

	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

func EditTestimonial(c *fiber.Ctx) error {
	testimonialID := c.Params("testimonialId")

	var testimonial models.Testimonial
	if err := database.DB.Where("id = ?", testimonialID).First(&testimonial).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Testimonial not found"})
	}

	if name := strings.TrimSpace(c.FormValue("name")); name != "" {
		testimonial.Name = name
	}
	if description := strings.TrimSpace(c.FormValue("description")); description != "" {
		testimonial.Description = description
	}
	if photo, err := c.FormFile("photo"); err == nil {
		if err := ValidateImageUpload(photo); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		filename, err := SaveUpload(photo)
		if err != nil {
			log.Printf("🔥 testimonials: failed to store photo: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store photo"})
		}
		RemoveUpload(deref(testimonial.Photo))
		testimonial.Photo = &filename
	}

	if err := database.DB.Save(&testimonial).Error; err != nil {
		log.Printf("🔥 testimonials: update failed for %s: %v", testimonialID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update testimonial"})
	}

	return c.JSON(testimonial)
}

func DeleteTestimonial(c *fiber.Ctx) error {
	testimonialID := c.Params("testimonialId")

	var testimonial models.Testimonial
	if err := database.DB.Where("id = ?", testimonialID).First(&testimonial).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Testimonial not found"})
	}

	if err := database.DB.Delete(&testimonial).Error; err != nil {
		log.Printf("🔥 testimonials: delete failed for %s: %v", testimonialID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete testimonial"})
	}

	RemoveUpload(deref(testimonial.Photo))

	return c.SendStatus(fiber.StatusNoContent)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
