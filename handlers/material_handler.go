package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kevotieno/craft_agency/database"
	"github.com/kevotieno/craft_agency/models"
)

func GetMaterials(c *fiber.Ctx) error {
	var materials []models.CourseMaterial
	if err := database.DB.Preload("Course").Order("created_at DESC").Find(&materials).Error; err != nil {
		log.Printf("🔥 materials: listing failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load materials"})
	}
	return c.JSON(materials)
}

func UploadMaterial(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	description := strings.TrimSpace(c.FormValue("description"))
	courseID := c.FormValue("course_id")
	file, fileErr := c.FormFile("file")

	var missing []string
	if title == "" {
		missing = append(missing, "title")
	}
	if description == "" {
		missing = append(missing, "description")
	}
	if courseID == "" {
		missing = append(missing, "course_id")
	}
	if fileErr != nil {
		missing = append(missing, "file")
	}
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: " + strings.Join(missing, ", "),
		})
	}

	var course models.Course
	if err := database.DB.Where("id = ?", courseID).First(&course).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	if err := ValidateMaterialUpload(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	filename, err := SaveUpload(file)
	if err != nil {
		log.Printf("🔥 materials: failed to store file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store file"})
	}

	material := models.CourseMaterial{
		Title:       title,
		Description: description,
		CourseID:    course.ID,
		FilePath:    filename,
	}
	if err := database.DB.Create(&material).Error; err != nil {
		log.Printf("🔥 materials: insert failed for %q: %v", title, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload material"})
	}

	return c.Status(fiber.StatusCreated).JSON(material)
}

// EditMaterial keeps the previous file when no new upload is supplied; a new
// upload replaces the stored file and removes the old one.
func EditMaterial(c *fiber.Ctx) error {
	materialID := c.Params("materialId")

	var material models.CourseMaterial
	if err := database.DB.Where("id = ?", materialID).First(&material).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Material not found"})
	}

	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		material.Title = title
	}
	if description := strings.TrimSpace(c.FormValue("description")); description != "" {
		material.Description = description
	}
	if courseID := c.FormValue("course_id"); courseID != "" {
		var course models.Course
		if err := database.DB.Where("id = ?", courseID).First(&course).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		}
		material.CourseID = course.ID
	}

	if file, err := c.FormFile("file"); err == nil {
		if err := ValidateMaterialUpload(file); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		filename, err := SaveUpload(file)
		if err != nil {
			log.Printf("🔥 materials: failed to store replacement file: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store file"})
		}
		RemoveUpload(material.FilePath)
		material.FilePath = filename
	}

	if err := database.DB.Save(&material).Error; err != nil {
		log.Printf("🔥 materials: update failed for %s: %v", materialID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to edit material"})
	}

	return c.JSON(material)
}

func DeleteMaterial(c *fiber.Ctx) error {
	materialID := c.Params("materialId")

	var material models.CourseMaterial
	if err := database.DB.Where("id = ?", materialID).First(&material).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Material not found"})
	}

	if err := database.DB.Delete(&material).Error; err != nil {
		log.Printf("🔥 materials: delete failed for %s: %v", materialID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete material"})
	}

	RemoveUpload(material.FilePath)

	return c.SendStatus(fiber.StatusNoContent)
}
