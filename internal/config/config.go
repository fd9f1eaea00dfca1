package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	App  AppConfig
	Data DataConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

// DataConfig locates the app data directory: the sqlite database and the
// attachment file store live side by side under Dir.
type DataConfig struct {
	Dir            string
	DatabasePath   string
	AttachmentsDir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	dataDir := getEnv("DATA_DIR", "./data")

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", filepath.Join(dataDir, "app.log")),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Data: DataConfig{
			Dir:            dataDir,
			DatabasePath:   getEnv("DB_PATH", filepath.Join(dataDir, "notes.db")),
			AttachmentsDir: getEnv("ATTACHMENTS_DIR", filepath.Join(dataDir, "attachments")),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
