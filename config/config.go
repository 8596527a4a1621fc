package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable read once at process start.
type Config struct {
	Env               string // runtime environment label (development/production)
	Port              string // HTTP port to listen on
	MongoURI          string // MongoDB connection string (required)
	MongoDBName       string // database name
	AllowedOrigins    string // extra CORS origin, comma handling left to caller
	JWTSecret         string // secret used to sign admin tokens
	AdminUser         string // admin dashboard username
	AdminPasswordHash string // bcrypt hash of the admin password
}

var C *Config

// Load reads configuration from the environment (and .env when present) and
// stores it in C. The MongoDB URI is mandatory: the server must not start
// serving requests without a configured backing store.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	C = &Config{
		Env:               getEnv("APP_ENV", "development"),
		Port:              getEnv("PORT", "5175"),
		MongoURI:          os.Getenv("MONGODB_URI"),
		MongoDBName:       getEnv("MONGODB_DB_NAME", "restaurant"),
		AllowedOrigins:    os.Getenv("ALLOWED_ORIGINS"),
		JWTSecret:         getEnv("JWT_SECRET", "lumina-dev-secret"),
		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	if C.MongoURI == "" {
		log.Fatal("MONGODB_URI is required. Please check your .env file.")
	}

	return C
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
