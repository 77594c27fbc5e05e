package config

import "os"

type Config struct {
	Port        string // HTTP listen port
	CSVDir      string // directory of daily CSV exports
	FrontendURL string // extra allowed CORS origin, optional
	IndexFile   string // landing page served at /
	StaticDir   string // static asset tree served at /static
}

func Load() *Config {
	cfg := &Config{
		Port:      "8080",
		CSVDir:    "scrapped_output",
		IndexFile: "index.html",
		StaticDir: "static",
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dir := os.Getenv("CSV_DIR"); dir != "" {
		cfg.CSVDir = dir
	}
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		cfg.StaticDir = dir
	}
	if index := os.Getenv("INDEX_FILE"); index != "" {
		cfg.IndexFile = index
	}
	cfg.FrontendURL = os.Getenv("FRONTEND_URL")

	return cfg
}
