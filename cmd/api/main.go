package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g main.go -o ../../docs --parseDependency

import (
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // IANA zones for minimal images without /usr/share/zoneinfo

	"github.com/joho/godotenv"

	"weather-dashboard/internal/config"

	_ "weather-dashboard/docs" // Import generated docs
)

// @title Weather Dashboard API
// @version 1.0
// @description Current conditions, a 24-hour series and a five-day forecast for any city, with a wttr.in fallback.
// @BasePath /
func main() {
	// Variables from .env become visible to the viper env lookup
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	// Create app
	app, err := NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	if err := app.StartScheduler(); err != nil {
		log.Fatalf("Failed to start refresh scheduler: %v", err)
	}
	defer app.StopScheduler()

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		logger.Info("shutting down")
		app.StopScheduler()
		os.Exit(0)
	}()

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
