package config

import (
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port int

	MongoURI string
	MongoDB  string

	JWTSecret []byte

	// SuperAdminEmail designates the primary super admin account. It can
	// never be deleted through the API, regardless of who asks.
	SuperAdminEmail string

	// SMTP settings. AdminEmail doubles as the sender address and the
	// default notification recipient.
	AdminEmail    string
	EmailPassword string
	SMTPServer    string
	SMTPPort      int

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	AllowedOrigins []string
}

func Load() *Config {
	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))

	origins := []string{
		"http://localhost:5173",
		"http://localhost:3000",
	}
	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		origins = append(origins, frontend)
	}

	return &Config{
		Port:            port,
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "corexify"),
		JWTSecret:       []byte(os.Getenv("JWT_SECRET")),
		SuperAdminEmail: strings.ToLower(os.Getenv("SUPER_ADMIN_EMAIL")),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		SMTPServer:    getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:      smtpPort,

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		AllowedOrigins: origins,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
