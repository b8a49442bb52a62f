package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/kevotieno/craft_agency/database"
	"github.com/kevotieno/craft_agency/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminGateVariants(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "student@example.com", "secret123", models.RoleStudent)

	cl := loginAs(t, app, "student@example.com", "secret123")

	// API group fails hard.
	resp := cl.get("/api/v1/admin/users")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Browser entry point redirects home with an error marker.
	resp = cl.get("/admin")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/?error=Unauthorized", resp.Header.Get("Location"))
	resp.Body.Close()
}

func TestAddUserAssignsRole(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "admin@example.com", "admin-pass", models.RoleAdmin)

	adminClient := loginAs(t, app, "admin@example.com", "admin-pass")
	resp := adminClient.postJSON("/api/v1/admin/users", fiber.Map{
		"first_name": "Wendo",
		"last_name":  "Kamau",
		"phone":      "0722000222",
		"email":      "worker@example.com",
		"password":   "secret123",
		"role":       models.RoleWorker,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, models.RoleWorker, body["role"])

	resp = adminClient.postJSON("/api/v1/admin/users", fiber.Map{
		"first_name": "Bad",
		"last_name":  "Role",
		"phone":      "0722000333",
		"email":      "bad@example.com",
		"password":   "secret123",
		"role":       "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestVerifyPaymentCreatesEnrollment(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "admin@example.com", "admin-pass", models.RoleAdmin)
	user := seedUser(t, "student@example.com", "secret123", models.RoleStudent)
	course := seedCourse(t, "Guitar Basics", 4500)

	payment := models.Payment{
		UserID:        user.ID,
		CourseID:      course.ID,
		PaymentMethod: "mpesa",
		Screenshot:    "123-pay.png",
		Status:        models.PaymentPending,
	}
	require.NoError(t, database.DB.Create(&payment).Error)

	adminClient := loginAs(t, app, "admin@example.com", "admin-pass")
	verify := fiber.Map{"payment_id": payment.ID, "course_id": course.ID, "user_id": user.ID}

	resp := adminClient.postJSON("/api/v1/admin/verify-payment", verify)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var updated models.Payment
	require.NoError(t, database.DB.First(&updated, payment.ID).Error)
	assert.Equal(t, models.PaymentVerified, updated.Status)

	var enrollments int64
	require.NoError(t, database.DB.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&enrollments).Error)
	assert.EqualValues(t, 1, enrollments)

	// Re-verifying is harmless: still exactly one enrollment.
	resp = adminClient.postJSON("/api/v1/admin/verify-payment", verify)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, database.DB.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&enrollments).Error)
	assert.EqualValues(t, 1, enrollments)
}

func TestVerifyPaymentNotFound(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "admin@example.com", "admin-pass", models.RoleAdmin)

	adminClient := loginAs(t, app, "admin@example.com", "admin-pass")
	resp := adminClient.postJSON("/api/v1/admin/verify-payment", fiber.Map{
		"payment_id": 999, "course_id": 1, "user_id": 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	var enrollments int64
	require.NoError(t, database.DB.Model(&models.Enrollment{}).Count(&enrollments).Error)
	assert.EqualValues(t, 0, enrollments)
}

func TestCourseCRUD(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "admin@example.com", "admin-pass", models.RoleAdmin)

	adminClient := loginAs(t, app, "admin@example.com", "admin-pass")

	body, formType := multipartBody(t, map[string]string{
		"title":       "Guitar Basics",
		"description": "Strings and chords",
		"price":       "4500",
	}, "", "", "", nil)
	resp := adminClient.request(http.MethodPost, "/api/v1/admin/courses", formType, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	courseID := uint(created["id"].(float64))

	// Partial edit: only the price changes.
	body, formType = multipartBody(t, map[string]string{"price": "5000"}, "", "", "", nil)
	resp = adminClient.request(http.MethodPut, fmt.Sprintf("/api/v1/admin/courses/%d", courseID), formType, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var course models.Course
	require.NoError(t, database.DB.First(&course, courseID).Error)
	assert.Equal(t, "Guitar Basics", course.Title)
	assert.EqualValues(t, 5000, course.Price)

	resp = adminClient.request(http.MethodDelete, fmt.Sprintf("/api/v1/admin/courses/%d", courseID), "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestAddCourseRejectsBadPrice(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "admin@example.com", "admin-pass", models.RoleAdmin)

	adminClient := loginAs(t, app, "admin@example.com", "admin-pass")

	for _, price := range []string{"abc", "-5"} {
		body, formType := multipartBody(t, map[string]string{"title": "Bad", "price": price}, "", "", "", nil)
		resp := adminClient.request(http.MethodPost, "/api/v1/admin/courses", formType, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	}

	var count int64
	require.NoError(t, database.DB.Model(&models.Course{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteCourseNotFound(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "admin@example.com", "admin-pass", models.RoleAdmin)
	seedCourse(t, "Guitar Basics", 4500)

	adminClient := loginAs(t, app, "admin@example.com", "admin-pass")
	resp := adminClient.request(http.MethodDelete, "/api/v1/admin/courses/999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	var count int64
	require.NoError(t, database.DB.Model(&models.Course{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAdminDashboardCounts(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "admin@example.com", "admin-pass", models.RoleAdmin)
	seedUser(t, "student@example.com", "secret123", models.RoleStudent)
	seedUser(t, "worker@example.com", "secret123", models.RoleWorker)
	seedCourse(t, "Guitar Basics", 4500)

	adminClient := loginAs(t, app, "admin@example.com", "admin-pass")
	resp := adminClient.get("/api/v1/admin/dashboard")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.EqualValues(t, 3, body["total_users"])
	assert.EqualValues(t, 1, body["total_students"])
	assert.EqualValues(t, 1, body["total_workers"])
	assert.EqualValues(t, 1, body["total_courses"])
}
