package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_ReadsWorkingDirDotEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := "WRAPPED_SERVICE_URL='https://wrapped.example/api'\n" +
		"WRAPPED_PRODUCT='wrapped \"beta\"'\n" +
		"WRAPPED_YEAR=2024\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0o600); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"WRAPPED_SERVICE_URL", "WRAPPED_YEAR", "WRAPPED_PRODUCT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("DATA_PATH", dir)
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Service.BaseURL != "https://wrapped.example/api" {
		t.Errorf("BaseURL = %q", cfg.Service.BaseURL)
	}
	if cfg.Product != `wrapped "beta"` {
		t.Errorf("Product = %q", cfg.Product)
	}
	if cfg.Year != 2024 {
		t.Errorf("Year = %d, want 2024 from .env", cfg.Year)
	}
	if cfg.DataPath != dir {
		t.Errorf("DataPath = %q", cfg.DataPath)
	}
}

func TestLoad_EnvironmentWinsOverDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("WRAPPED_YEAR=2023\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DATA_PATH", dir)
	t.Setenv("WRAPPED_YEAR", "2026")
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Year != 2026 {
		t.Errorf("Year = %d, want the exported 2026", cfg.Year)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	dir := t.TempDir()
	for _, k := range []string{"WRAPPED_SERVICE_URL", "WRAPPED_YEAR", "WRAPPED_PRODUCT", "WRAPPED_PREVIEW_ADDR", "WRAPPED_HTTP_TIMEOUT_SECONDS", "WRAPPED_DOWNLOAD_DIR", "LOGS_FOLDER"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("DATA_PATH", dir)

	cfg := fromEnv("")
	if cfg.Service.BaseURL != "http://localhost:3020" {
		t.Errorf("BaseURL = %q, want default", cfg.Service.BaseURL)
	}
	if cfg.Service.Timeout != 0 {
		t.Errorf("Timeout = %v, want none", cfg.Service.Timeout)
	}
	if cfg.Year != 2025 {
		t.Errorf("Year = %d, want 2025", cfg.Year)
	}
	if cfg.Product != "github-wrapped" {
		t.Errorf("Product = %q", cfg.Product)
	}
	if cfg.LogDir != filepath.Join(dir, "logs") {
		t.Errorf("LogDir = %q", cfg.LogDir)
	}
	if cfg.PreviewAddr != "127.0.0.1:0" {
		t.Errorf("PreviewAddr = %q", cfg.PreviewAddr)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("WRAPPED_SERVICE_URL", "https://wrapped.example")
	t.Setenv("WRAPPED_YEAR", "2024")
	t.Setenv("WRAPPED_HTTP_TIMEOUT_SECONDS", "30")

	cfg := fromEnv("")
	if cfg.Service.BaseURL != "https://wrapped.example" {
		t.Errorf("BaseURL = %q", cfg.Service.BaseURL)
	}
	if cfg.Year != 2024 {
		t.Errorf("Year = %d", cfg.Year)
	}
	if cfg.Service.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.Service.Timeout)
	}

	t.Setenv("WRAPPED_YEAR", "last")
	if got := fromEnv("").Year; got != 2025 {
		t.Errorf("Year with bad value = %d, want fallback", got)
	}
}
