package config

import (
	"fmt"
	"os"

	"github.com/adangerfield1026/Capstone/logger"
	"github.com/adangerfield1026/Capstone/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LoadEnv reads .env when present; in deployed environments the variables
// come from the process environment instead.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file loaded", "err", err)
	}
}

// GetEnv returns the variable or a fallback.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the postgres connection and runs migrations. The handle is
// returned to the caller and injected into services; nothing holds it
// globally.
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", "password"),
		GetEnv("DB_NAME", "nutrition"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_SSLMODE", "disable"),
	)

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the day-entry conflict path relies on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.DayEntry{},
		&models.Meal{},
		&models.FoodEntry{},
		&models.DailyGoal{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("database connection established")
	return db, nil
}
