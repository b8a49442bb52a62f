package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string
	DatabaseURL string

	AdminEmail     string
	AdminPassword  string
	AdminFirstName string
	AdminLastName  string
	AdminPhone     string

	BrevoAPIKey     string
	EmailSender     string
	EmailSenderName string
	OperatorEmail   string

	UploadsDir string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	AppConfig = &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
		AdminFirstName: getEnv("ADMIN_FIRST_NAME", "Site"),
		AdminLastName:  getEnv("ADMIN_LAST_NAME", "Admin"),
		AdminPhone:     getEnv("ADMIN_PHONE", ""),

		BrevoAPIKey:     getEnv("BREVO_API_KEY", ""),
		EmailSender:     getEnv("EMAIL_SENDER", ""),
		EmailSenderName: getEnv("EMAIL_SENDER_NAME", ""),
		OperatorEmail:   getEnv("OPERATOR_EMAIL", ""),

		UploadsDir: getEnv("UPLOADS_DIR", "./public/uploads"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
