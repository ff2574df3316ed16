package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/eoreilly0906/Spoon-API/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config is built once at startup and handed to everything that needs
// it. Business code never reads the environment directly.
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret []byte
	TokenTTL  time.Duration

	SpoonacularAPIKey string

	SeedOnStart bool
}

func Load() Config {
	// .env is a local-dev convenience; in deployment the variables come
	// from the process environment.
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            getEnv("DB_NAME", "spoon_api"),
		DBPort:            getEnv("DB_PORT", "5432"),
		JWTSecret:         []byte(os.Getenv("JWT_SECRET")),
		TokenTTL:          time.Hour,
		SpoonacularAPIKey: os.Getenv("SPOONACULAR_API_KEY"),
		SeedOnStart:       os.Getenv("DB_SEED") == "true",
	}

	if len(cfg.JWTSecret) == 0 {
		// An unset secret would mean signing tokens with an empty key.
		// Refuse to start instead.
		log.Fatal("JWT_SECRET is not set")
	}

	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		mins, err := strconv.Atoi(v)
		if err != nil || mins <= 0 {
			log.Fatalf("invalid TOKEN_TTL_MINUTES: %q", v)
		}
		cfg.TokenTTL = time.Duration(mins) * time.Minute
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB(cfg Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}
