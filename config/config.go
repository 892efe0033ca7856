package config

import (
	"os"
)

// Config holds all environment-driven settings for the service.
type Config struct {
	Port        string
	DatabaseURL string
	SecretKey   string
	ModelPath   string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8000"),
		DatabaseURL: getEnv("DATABASE_URL", "maize_yield.db"),
		SecretKey:   getEnv("SECRET_KEY", ""),
		ModelPath:   getEnv("MODEL_PATH", "final_model.json"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
