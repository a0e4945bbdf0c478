package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"gh-wrapped/internal/api"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Service     api.Config
	Year        int
	Product     string
	DataPath    string
	LogDir      string
	DownloadDir string
	PreviewAddr string
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Executable directory first, so an installed binary finds its own .env
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Working directory
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	return fromEnv(exeDir), nil
}

func fromEnv(exeDir string) *AppConfig {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := getEnv("LOGS_FOLDER", filepath.Join(dataPath, "logs"))
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	timeoutSecs := getEnvInt("WRAPPED_HTTP_TIMEOUT_SECONDS", 0)

	return &AppConfig{
		Service: api.Config{
			BaseURL: getEnv("WRAPPED_SERVICE_URL", "http://localhost:3020"),
			Timeout: time.Duration(timeoutSecs) * time.Second,
		},
		Year:        getEnvInt("WRAPPED_YEAR", 2025),
		Product:     getEnv("WRAPPED_PRODUCT", "github-wrapped"),
		DataPath:    dataPath,
		LogDir:      logDir,
		DownloadDir: getEnv("WRAPPED_DOWNLOAD_DIR", "."),
		PreviewAddr: getEnv("WRAPPED_PREVIEW_ADDR", "127.0.0.1:0"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			return n
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Ignoring non-numeric setting")
	}
	return fallback
}
