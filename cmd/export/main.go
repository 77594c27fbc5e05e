package main

import (
	"log"
	"log/slog"
	"os"

	"niftynews/internal/exporter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	settingsFile string
	csvDir       string
	outputDir    string
	linkStrategy string
)

var rootCmd = &cobra.Command{
	Use:   "export",
	Short: "Flatten daily CSV exports into static JSON files",
	Long:  `Builds available-dates.json plus per-date and per-company JSON files from the CSV data directory, for serverless hosting of the dashboard.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		godotenv.Load()
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

		settings, err := exporter.LoadSettings(settingsFile)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}

		if csvDir != "" {
			settings.CSVDir = csvDir
		}
		if outputDir != "" {
			settings.OutputDir = outputDir
		}
		if linkStrategy != "" {
			settings.LinkStrategy = linkStrategy
		}
		if err := settings.Validate(); err != nil {
			log.Fatalf("Invalid settings: %v", err)
		}

		if err := exporter.New(settings).Run(); err != nil {
			log.Fatalf("Build failed: %v", err)
		}
	},
}

func init() {
	rootCmd.Flags().StringVar(&settingsFile, "settings", "", "Path to YAML settings file")
	rootCmd.Flags().StringVar(&csvDir, "csv-dir", "", "Directory of daily CSV files")
	rootCmd.Flags().StringVar(&outputDir, "out", "", "Output directory for JSON files")
	rootCmd.Flags().StringVar(&linkStrategy, "links", "", "Link extraction strategy: regex or split")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
