package main

import (
	"log"
	"log/slog"
	"os"

	"niftynews/internal/cleaner"

	"github.com/spf13/cobra"
)

var csvDir string

var rootCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove git merge-conflict debris from CSV exports",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

		cleaned, err := cleaner.CleanDir(csvDir)
		if err != nil {
			log.Fatalf("Cleaning failed: %v", err)
		}

		for _, path := range cleaned {
			slog.Info("cleaned file", "path", path)
		}
		slog.Info("cleaning done", "files", len(cleaned))
	},
}

func init() {
	rootCmd.Flags().StringVar(&csvDir, "csv-dir", "scrapped_output", "Directory of daily CSV files")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
