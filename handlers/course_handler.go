package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kevotieno/craft_agency/database"
	"github.com/kevotieno/craft_agency/middleware"
	"github.com/kevotieno/craft_agency/models"
	"github.com/kevotieno/craft_agency/notifications"
	"gorm.io/gorm"
)

type applicationView struct {
	ID          uint      `json:"id"`
	CourseID    uint      `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	Status      string    `json:"status"`
	Screenshot  string    `json:"screenshot"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetCourses lists the catalog, newest first. For a signed-in visitor the
// response also carries their applications and the titles of courses they are
// approved for.
func GetCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.DB.Order("id DESC").Find(&courses).Error; err != nil {
		log.Printf("🔥 courses: listing failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load courses"})
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		return c.JSON(fiber.Map{"courses": courses})
	}

	var applications []models.CourseApplication
	if err := database.DB.Preload("Course").Where("user_id = ?", user.ID).Find(&applications).Error; err != nil {
		log.Printf("🔥 courses: application lookup failed for user %d: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load courses"})
	}

	views := make([]applicationView, 0, len(applications))
	var enrolled []string
	for _, app := range applications {
		views = append(views, applicationView{
			ID:          app.ID,
			CourseID:    app.CourseID,
			CourseTitle: app.Course.Title,
			Status:      app.Status,
			Screenshot:  app.Screenshot,
			CreatedAt:   app.CreatedAt,
		})
		if app.Status == models.ApplicationApproved && app.Course.Title != "" {
			enrolled = append(enrolled, app.Course.Title)
		}
	}

	return c.JSON(fiber.Map{
		"courses":          courses,
		"applications":     views,
		"enrolled_courses": enrolled,
	})
}

// ApplyCourse records a course application backed by a payment screenshot.
func ApplyCourse(c *fiber.Ctx) error {
	user := c.Locals("authUser").(*middleware.AuthUser)

	courseTitle := strings.TrimSpace(c.FormValue("course_title"))
	userIDValue := c.FormValue("user_id")
	screenshot, fileErr := c.FormFile("screenshot")

	var missing []string
	if courseTitle == "" {
		missing = append(missing, "course_title")
	}
	if userIDValue == "" {
		missing = append(missing, "user_id")
	}
	if fileErr != nil {
		missing = append(missing, "screenshot")
	}
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: " + strings.Join(missing, ", "),
		})
	}

	// The user id is client-supplied; it must match the session owner.
	userID, err := strconv.ParseUint(userIDValue, 10, 64)
	if err != nil || uint(userID) != user.ID {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Please sign in to apply for a course."})
	}

	var course models.Course
	if err := database.DB.Where("title = ?", courseTitle).First(&course).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var count int64
	err = database.DB.Model(&models.CourseApplication{}).
		Where("user_id = ? AND course_id = ? AND status = ?", user.ID, course.ID, models.ApplicationPending).
		Count(&count).Error
	if err != nil {
		log.Printf("🔥 apply: duplicate check failed for user %d course %d: %v", user.ID, course.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save application"})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already applied for this course."})
	}

	if err := ValidateImageUpload(screenshot); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	filename, err := SaveUpload(screenshot)
	if err != nil {
		log.Printf("🔥 apply: failed to store screenshot for user %d: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store screenshot"})
	}

	application := models.CourseApplication{
		UserID:     user.ID,
		CourseID:   course.ID,
		Screenshot: filename,
		Status:     models.ApplicationPending,
	}
	if err := database.DB.Create(&application).Error; err != nil {
		// The partial unique index closes the race two concurrent submissions
		// would otherwise win together.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already applied for this course."})
		}
		log.Printf("🔥 apply: insert failed for user %d course %d: %v", user.ID, course.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save application"})
	}

	go notifications.NotifyOperator(
		"New Course Application",
		fmt.Sprintf("<p>%s %s (%s) applied for <strong>%s</strong>. Review the payment screenshot in the admin panel.</p>",
			user.FirstName, user.LastName, user.Email, course.Title),
	)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Application submitted successfully",
		"id":      application.ID,
	})
}

// GetCourseDashboard is the admin aggregate view: every course with its
// applicants.
func GetCourseDashboard(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.DB.Order("id DESC").Find(&courses).Error; err != nil {
		log.Printf("🔥 dashboard: course listing failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load courses"})
	}

	type applicantView struct {
		ID         uint   `json:"id"`
		UserID     uint   `json:"user_id"`
		FirstName  string `json:"first_name"`
		LastName   string `json:"last_name"`
		Email      string `json:"email"`
		Screenshot string `json:"screenshot"`
		Status     string `json:"status"`
	}
	type courseView struct {
		models.Course
		Applicants []applicantView `json:"applicants"`
	}

	views := make([]courseView, 0, len(courses))
	for _, course := range courses {
		var applications []models.CourseApplication
		err := database.DB.Preload("User").Where("course_id = ?", course.ID).Find(&applications).Error
		if err != nil {
			log.Printf("🔥 dashboard: applicant lookup failed for course %d: %v", course.ID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load applicants"})
		}

		applicants := make([]applicantView, 0, len(applications))
		for _, app := range applications {
			applicants = append(applicants, applicantView{
				ID:         app.ID,
				UserID:     app.UserID,
				FirstName:  app.User.FirstName,
				LastName:   app.User.LastName,
				Email:      app.User.Email,
				Screenshot: app.Screenshot,
				Status:     app.Status,
			})
		}
		views = append(views, courseView{Course: course, Applicants: applicants})
	}

	return c.JSON(fiber.Map{"courses": views})
}

// GetCoursePage serves a single course to students approved for it.
func GetCoursePage(c *fiber.Ctx) error {
	title, err := url.PathUnescape(c.Params("title"))
	if err != nil {
		title = c.Params("title")
	}

	var course models.Course
	if err := database.DB.Where("title = ?", title).First(&course).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Please sign in to access the course."})
	}

	var count int64
	err = database.DB.Model(&models.CourseApplication{}).
		Where("user_id = ? AND course_id = ? AND status = ?", user.ID, course.ID, models.ApplicationApproved).
		Count(&count).Error
	if err != nil {
		log.Printf("🔥 course page: approval check failed for user %d course %d: %v", user.ID, course.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load course"})
	}
	if count == 0 {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not approved for this course."})
	}

	var materials []models.CourseMaterial
	if err := database.DB.Where("course_id = ?", course.ID).Order("created_at DESC").Find(&materials).Error; err != nil {
		log.Printf("🔥 course page: material lookup failed for course %d: %v", course.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load course"})
	}

	return c.JSON(fiber.Map{"course": course, "materials": materials})
}
