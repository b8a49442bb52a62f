package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/kevotieno/craft_agency/database"
	"github.com/kevotieno/craft_agency/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestimonialCRUD(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "admin@example.com", "admin-pass", models.RoleAdmin)

	adminClient := loginAs(t, app, "admin@example.com", "admin-pass")

	body, formType := multipartBody(t, map[string]string{
		"name":        "Jane M.",
		"description": "Great course, patient tutors.",
	}, "photo", "jane.png", "image/png", jpegStub)
	resp := adminClient.request(http.MethodPost, "/api/v1/admin/testimonials", formType, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	testimonialID := uint(created["id"].(float64))
	originalPhoto := created["photo"].(string)

	// Update without a photo keeps the existing one.
	body, formType = multipartBody(t, map[string]string{"name": "Jane Mwangi"}, "", "", "", nil)
	resp = adminClient.request(http.MethodPut, fmt.Sprintf("/api/v1/admin/testimonials/%d", testimonialID), formType, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody(t, resp)
	assert.Equal(t, "Jane Mwangi", updated["name"])
	assert.Equal(t, originalPhoto, updated["photo"])

	// Public listing sees it.
	resp = newClient(t, app).get("/api/v1/testimonials")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = adminClient.request(http.MethodDelete, fmt.Sprintf("/api/v1/admin/testimonials/%d", testimonialID), "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = adminClient.request(http.MethodDelete, fmt.Sprintf("/api/v1/admin/testimonials/%d", testimonialID), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestDeletePortfolioItemNotFound(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "admin@example.com", "admin-pass", models.RoleAdmin)

	item := models.PortfolioItem{Title: "Site Redesign", Description: "Full rebrand"}
	require.NoError(t, database.DB.Create(&item).Error)

	adminClient := loginAs(t, app, "admin@example.com", "admin-pass")
	resp := adminClient.request(http.MethodDelete, "/api/v1/admin/portfolio/999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	var count int64
	require.NoError(t, database.DB.Model(&models.PortfolioItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestHomeAggregate(t *testing.T) {
	app := setupApp(t)
	seedCourse(t, "Guitar Basics", 4500)
	require.NoError(t, database.DB.Create(&models.Testimonial{Name: "Jane", Description: "Lovely"}).Error)
	require.NoError(t, database.DB.Create(&models.PortfolioItem{Title: "Rebrand", Description: "Logo + site"}).Error)

	resp := newClient(t, app).get("/api/v1/home")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Len(t, body["courses"], 1)
	assert.Len(t, body["testimonials"], 1)
	assert.Len(t, body["portfolio"], 1)
}

func TestPlaceOrderRecordsRow(t *testing.T) {
	app := setupApp(t)
	user := seedUser(t, "student@example.com", "secret123", models.RoleStudent)

	cl := loginAs(t, app, "student@example.com", "secret123")
	resp := cl.postJSON("/api/v1/orders/place", map[string]string{
		"service_type":   "branding",
		"service_detail": "Logo pack for a bakery",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var order models.Order
	require.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&order).Error)
	assert.Equal(t, "branding", order.ServiceType)
}
