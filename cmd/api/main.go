package main

import (
	"log"
	"log/slog"

	"niftynews/internal/config"
	"niftynews/internal/handler"
	"niftynews/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	cfg := config.Load()

	repo := repository.NewReportRepository(cfg.CSVDir)
	reportHandler := handler.NewReportHandler(repo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("serving CSV data", "dir", cfg.CSVDir, "origins", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.StaticFile("/", cfg.IndexFile)
	r.Static("/static", cfg.StaticDir)

	r.GET("/api/available-dates", reportHandler.GetAvailableDates)
	r.GET("/api/company-news/:date", reportHandler.GetCompanyNews)
	r.GET("/api/company-details/:date/:company", reportHandler.GetCompanyDetails)
	r.GET("/health", reportHandler.GetHealth)

	err := r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
