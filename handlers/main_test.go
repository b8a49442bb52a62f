package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	config "github.com/kevotieno/craft_agency/configs"
	"github.com/kevotieno/craft_agency/database"
	"github.com/kevotieno/craft_agency/middleware"
	"github.com/kevotieno/craft_agency/models"
	"github.com/kevotieno/craft_agency/routes"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp wires the full route surface against a fresh in-memory database
// and a fresh session store.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()
	config.AppConfig.UploadsDir = t.TempDir()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second connection would see its own empty :memory: database.
	sqlDB.SetMaxOpenConns(1)

	database.DB = db
	database.Migrate()

	middleware.InitSessionStore()

	app := fiber.New()
	routes.AuthRoutes(app)
	routes.CourseRoutes(app)
	routes.AdminRoutes(app)
	routes.WorkerRoutes(app)
	routes.ContentRoutes(app)
	routes.OrderRoutes(app)
	return app
}

// client carries the session cookie between requests.
type client struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, app *fiber.App) *client {
	return &client{t: t, app: app, cookies: map[string]*http.Cookie{}}
}

func (cl *client) request(method, target, contentType string, body io.Reader) *http.Response {
	cl.t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}

	resp, err := cl.app.Test(req, -1)
	require.NoError(cl.t, err)

	for _, ck := range resp.Cookies() {
		cl.cookies[ck.Name] = ck
	}
	return resp
}

func (cl *client) postJSON(target string, payload any) *http.Response {
	cl.t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(cl.t, err)
	return cl.request(http.MethodPost, target, "application/json", bytes.NewReader(body))
}

func (cl *client) get(target string) *http.Response {
	return cl.request(http.MethodGet, target, "", nil)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

// multipartBody builds a form with optional file part carrying an explicit
// content type, so spoofed uploads can be exercised.
func multipartBody(t *testing.T, fields map[string]string, fileField, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	if fileField != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, filename))
		header.Set("Content-Type", contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func seedUser(t *testing.T, email, password, role string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Phone:     "0700000000",
		Email:     email,
		Password:  string(hash),
		Role:      role,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func seedCourse(t *testing.T, title string, price float64) models.Course {
	t.Helper()
	course := models.Course{Title: title, Description: "desc", Price: price}
	require.NoError(t, database.DB.Create(&course).Error)
	return course
}

func loginAs(t *testing.T, app *fiber.App, email, password string) *client {
	t.Helper()
	cl := newClient(t, app)
	resp := cl.postJSON("/api/v1/auth/login", fiber.Map{"email": email, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	return cl
}
