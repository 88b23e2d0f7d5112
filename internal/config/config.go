package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseURL      string
	ParserServiceURL string
	AssetBaseURL     string
	StaticDir        string
	ChromePath       string
}

// Load reads configuration from the environment, with a .env file as a
// convenience for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	return &Config{
		Port:             getEnv("PORT", "8000"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		ParserServiceURL: os.Getenv("PARSER_SERVICE_URL"),
		AssetBaseURL:     getEnv("ASSET_BASE_URL", "http://localhost:8000"),
		StaticDir:        getEnv("STATIC_DIR", "./static"),
		ChromePath:       os.Getenv("CHROME_PATH"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
