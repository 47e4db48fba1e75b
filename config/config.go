package config

import (
	_ "embed"
	"os"
	"strconv"
	"time"
)

// Version is shown in the sidebar and in the API docs.
const Version = "0.3.1"

//go:embed example_data.json
var ExampleDataJSON string

//go:embed sidebar.html
var SidebarHTML string

type Config struct {
	Port       string
	DBPath     string
	ExportsDir string
	WebDir     string
	SessionTTL time.Duration
	ChromePath string // optional explicit Chrome binary for PNG export
	PNGTimeout time.Duration
}

func GetConfig() Config {
	return Config{
		Port:       getEnv("PORT", "9090"),
		DBPath:     getEnv("DB_PATH", "./data/badger"),
		ExportsDir: getEnv("EXPORTS_DIR", "./exports"),
		WebDir:     getEnv("WEB_DIR", "./web"),
		SessionTTL: time.Duration(getEnvInt("SESSION_TTL_MINUTES", 120)) * time.Minute,
		ChromePath: getEnv("CHROME_PATH", ""),
		PNGTimeout: time.Duration(getEnvInt("PNG_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
