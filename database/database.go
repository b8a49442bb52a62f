package database

import (
	"fmt"
	"log"

	config "github.com/kevotieno/craft_agency/configs"
	"github.com/kevotieno/craft_agency/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.AppConfig.DatabaseURL

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("🔥 Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.CourseApplication{},
		&models.Enrollment{},
		&models.Payment{},
		&models.CourseMaterial{},
		&models.Testimonial{},
		&models.PortfolioItem{},
		&models.Order{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}

	// At most one pending application per user+course. Approved and rejected
	// rows stay around, so the index has to be partial.
	err = DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_course_applications_pending
		ON course_applications (user_id, course_id) WHERE status = 'pending'`).Error
	if err != nil {
		log.Fatalf("🔥 Failed to create pending-application index: %v", err)
	}

	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.AppConfig.AdminEmail
	adminPassword := config.AppConfig.AdminPassword
	if adminEmail == "" || adminPassword == "" {
		log.Println("⚠️ ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
	}

	adminUser := models.User{
		FirstName: config.AppConfig.AdminFirstName,
		LastName:  config.AppConfig.AdminLastName,
		Phone:     config.AppConfig.AdminPhone,
		Email:     adminEmail,
		Password:  string(hashedPassword),
		Role:      models.RoleAdmin,
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}

	log.Println("✅ Admin user seeded successfully")
}
