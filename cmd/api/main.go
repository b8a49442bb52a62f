package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	config "github.com/kevotieno/craft_agency/configs"
	"github.com/kevotieno/craft_agency/database"
	"github.com/kevotieno/craft_agency/jobs"
	"github.com/kevotieno/craft_agency/middleware"
	"github.com/kevotieno/craft_agency/notifications"
	"github.com/kevotieno/craft_agency/routes"
	"github.com/robfig/cron/v3"
)

func main() {
	config.LoadConfig()
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()
	notifications.InitEmailService()
	middleware.InitSessionStore()

	c := cron.New()
	c.AddFunc("0 8 * * *", jobs.SendPendingApplicationsDigest)
	go c.Start()
	log.Println("✅ Cron job for the application digest scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Craft Agency",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Africa/Nairobi",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to the Craft Agency API",
		})
	})

	// Uploaded files are served straight from the uploads directory.
	app.Static("/uploads", config.AppConfig.UploadsDir)

	routes.AuthRoutes(app)
	routes.CourseRoutes(app)
	routes.AdminRoutes(app)
	routes.WorkerRoutes(app)
	routes.ContentRoutes(app)
	routes.OrderRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.AppConfig.Port
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
