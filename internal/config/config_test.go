package config

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CSV_DIR", "")
	t.Setenv("FRONTEND_URL", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "scrapped_output", cfg.CSVDir)
	assert.Equal(t, "index.html", cfg.IndexFile)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "", cfg.FrontendURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CSV_DIR", "/data/csv")
	t.Setenv("FRONTEND_URL", "https://dashboard.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/data/csv", cfg.CSVDir)
	assert.Equal(t, "https://dashboard.example.com", cfg.FrontendURL)
}
