package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kevotieno/craft_agency/database"
	"github.com/kevotieno/craft_agency/models"
	"github.com/kevotieno/craft_agency/notifications"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetAdminDashboard(c *fiber.Ctx) error {
	var totalUsers, totalStudents, totalWorkers, totalCourses int64
	db := database.DB

	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		log.Printf("🔥 admin dashboard: user count failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleStudent).Count(&totalStudents).Error; err != nil {
		log.Printf("🔥 admin dashboard: student count failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleWorker).Count(&totalWorkers).Error; err != nil {
		log.Printf("🔥 admin dashboard: worker count failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	if err := db.Model(&models.Course{}).Count(&totalCourses).Error; err != nil {
		log.Printf("🔥 admin dashboard: course count failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	var orders []models.Order
	if err := db.Preload("User").Order("created_at DESC").Find(&orders).Error; err != nil {
		log.Printf("🔥 admin dashboard: order listing failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	return c.JSON(fiber.Map{
		"total_users":    totalUsers,
		"total_students": totalStudents,
		"total_workers":  totalWorkers,
		"total_courses":  totalCourses,
		"orders":         orders,
	})
}

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("id").Find(&users).Error; err != nil {
		log.Printf("🔥 admin users: listing failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load users"})
	}
	return c.JSON(users)
}

type AddUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=admin worker student"`
}

// AddUser is the only path that assigns a non-student role.
func AddUser(c *fiber.Ctx) error {
	var req AddUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Role:      req.Role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already registered"})
		}
		log.Printf("🔥 admin users: insert failed for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add user"})
	}

	return c.Status(fiber.StatusCreated).JSON(UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	})
}

func GetPayments(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := database.DB.Preload("User").Preload("Course").Order("created_at DESC").Find(&payments).Error; err != nil {
		log.Printf("🔥 admin payments: listing failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load payments"})
	}
	return c.JSON(payments)
}

type VerifyPaymentRequest struct {
	PaymentID uint `json:"payment_id" validate:"required"`
	CourseID  uint `json:"course_id" validate:"required"`
	UserID    uint `json:"user_id" validate:"required"`
}

// VerifyPayment marks the payment verified and enrolls the user, atomically.
func VerifyPayment(c *fiber.Ctx) error {
	var req VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Payment{}).
			Where("id = ?", req.PaymentID).
			Update("status", models.PaymentVerified)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		enrollment := models.Enrollment{UserID: req.UserID, CourseID: req.CourseID}
		if err := tx.Create(&enrollment).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
		}
		log.Printf("🔥 verify payment: failed for payment %d: %v", req.PaymentID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Verification failed"})
	}

	return c.JSON(fiber.Map{"message": "Payment verified and user enrolled"})
}

// parsePrice validates the price form field shared by AddCourse and EditCourse.
func parsePrice(value string) (float64, error) {
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.New("Price must be a valid number")
	}
	if price < 0 {
		return 0, errors.New("Price must not be negative")
	}
	return price, nil
}

func AddCourse(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	description := c.FormValue("description")
	priceValue := c.FormValue("price")

	if title == "" || priceValue == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title and price are required"})
	}
	price, err := parsePrice(priceValue)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course := models.Course{
		Title:       title,
		Description: description,
		Price:       price,
	}

	if photo, err := c.FormFile("photo"); err == nil {
		if err := ValidateImageUpload(photo); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		filename, err := SaveUpload(photo)
		if err != nil {
			log.Printf("🔥 add course: failed to store photo: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store photo"})
		}
		course.Photo = &filename
	}

	if err := database.DB.Create(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A course with this title already exists"})
		}
		log.Printf("🔥 add course: insert failed for %q: %v", title, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add course"})
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

// EditCourse is a partial update: only supplied fields change, and an absent
// photo leaves the existing one untouched.
func EditCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	var course models.Course
	if err := database.DB.Where("id = ?", courseID).First(&course).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		course.Title = title
	}
	if description := c.FormValue("description"); description != "" {
		course.Description = description
	}
	if priceValue := c.FormValue("price"); priceValue != "" {
		price, err := parsePrice(priceValue)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		course.Price = price
	}
	if photo, err := c.FormFile("photo"); err == nil {
		if err := ValidateImageUpload(photo); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		filename, err := SaveUpload(photo)
		if err != nil {
			log.Printf("🔥 edit course: failed to store photo: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store photo"})
		}
		course.Photo = &filename
	}

	if err := database.DB.Save(&course).Error; err != nil {
		log.Printf("🔥 edit course: update failed for %s: %v", courseID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update course"})
	}

	return c.JSON(course)
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	result := database.DB.Delete(&models.Course{}, "id = ?", courseID)

	if result.Error != nil {
		log.Printf("🔥 delete course: failed for %s: %v", courseID, result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func ApproveApplication(c *fiber.Ctx) error {
	return decideApplication(c, models.ApplicationApproved)
}

func RejectApplication(c *fiber.Ctx) error {
	return decideApplication(c, models.ApplicationRejected)
}

// decideApplication updates by id and treats zero affected rows as NotFound.
// Re-running on a terminal row rewrites the same status, so the operation is
// idempotent. Enrollments are only created by payment verification.
func decideApplication(c *fiber.Ctx, status string) error {
	applicationID := c.Params("applicationId")

	result := database.DB.Model(&models.CourseApplication{}).
		Where("id = ?", applicationID).
		Update("status", status)
	if result.Error != nil {
		log.Printf("🔥 review: status update failed for application %s: %v", applicationID, result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update application"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}

	var application models.CourseApplication
	if err := database.DB.Preload("User").Preload("Course").First(&application, "id = ?", applicationID).Error; err == nil {
		subject := "Your Course Application has been Approved!"
		body := fmt.Sprintf("<h1>Congratulations!</h1><p>Your application for <strong>%s</strong> has been approved.</p>", application.Course.Title)
		if status == models.ApplicationRejected {
			subject = "Update on Your Course Application"
			body = fmt.Sprintf("<h1>Application Update</h1><p>We regret to inform you that your application for <strong>%s</strong> was not approved.</p>", application.Course.Title)
		}
		go notifications.SendEmail(application.User.FirstName, application.User.Email, subject, body)
	}

	return c.JSON(fiber.Map{"message": "Application status updated successfully"})
}
