package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kevotieno/craft_agency/database"
	"github.com/kevotieno/craft_agency/models"
)

func GetPortfolio(c *fiber.Ctx) error {
	var items []models.PortfolioItem
	if err := database.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		log.Printf("🔥 portfolio: listing failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load portfolio"})
	}
	return c.JSON(items)
}

func AddPortfolioItem(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	description := strings.TrimSpace(c.FormValue("description"))
	if title == "" || description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title and description are required"})
	}

	item := models.PortfolioItem{
		Title:       title,
		Description: description,
		Category:    c.FormValue("category"),
		DriveURL:    c.FormValue("drive_url"),
		GithubURL:   c.FormValue("github_url"),
	}

	if image, err := c.FormFile("image"); err == nil {
		if err := ValidateImageUpload(image); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		filename, err := SaveUpload(image)
		if err != nil {
			log.Printf("🔥 portfolio: failed to store image: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store image"})
		}
		item.Image = &filename
	}

	if err := database.DB.Create(&item).Error; err != nil {
		log.Printf("🔥 portfolio: insert failed for %q: %v", title, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add portfolio item"})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func EditPortfolioItem(c *fiber.Ctx) error {
	itemID := c.Params("itemId")

	var item models.PortfolioItem
	if err := database.DB.Where("id = ?", itemID).First(&item).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Portfolio item not found"})
	}

	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		item.Title = title
	}
	if description := strings.TrimSpace(c.FormValue("description")); description != "" {
		item.Description = description
	}
	if category := c.FormValue("category"); category != "" {
		item.Category = category
	}
	if driveURL := c.FormValue("drive_url"); driveURL != "" {
		item.DriveURL = driveURL
	}
	if githubURL := c.FormValue("github_url"); githubURL != "" {
		item.GithubURL = githubURL
	}
	if image, err := c.FormFile("image"); err == nil {
		if err := ValidateImageUpload(image); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		filename, err := SaveUpload(image)
		if err != nil {
			log.Printf("🔥 portfolio: failed to store image: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store image"})
		}
		RemoveUpload(deref(item.Image))
		item.Image = &filename
	}

	if err := database.DB.Save(&item).Error; err != nil {
		log.Printf("🔥 portfolio: update failed for %s: %v", itemID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update portfolio item"})
	}

	return c.JSON(item)
}

func DeletePortfolioItem(c *fiber.Ctx) error {
	itemID := c.Params("itemId")

	var item models.PortfolioItem
	if err := database.DB.Where("id = ?", itemID).First(&item).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Portfolio item not found"})
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		log.Printf("🔥 portfolio: delete failed for %s: %v", itemID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete portfolio item"})
	}

	RemoveUpload(deref(item.Image))

	return c.SendStatus(fiber.StatusNoContent)
}
