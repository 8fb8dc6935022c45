package main

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/dashboard"
	"weather-dashboard/internal/geocode"
	"weather-dashboard/internal/timezone"
	"weather-dashboard/internal/weather"
)

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	logger           *slog.Logger
	geocodeService   geocode.Service
	dashboardService dashboard.Service
	scheduler        *dashboard.Scheduler
	cfg              *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	geocoder := geocode.NewService(cfg, tzSvc, logger)
	fetcher := weather.NewService(cfg, tzSvc, logger)

	return NewAppWithServices(cfg, geocoder, dashboard.NewService(geocoder, fetcher, cfg, logger), logger)
}

// NewAppWithServices wires the router around existing services
// This is useful for testing with mock services
func NewAppWithServices(cfg *config.Config, geocoder geocode.Service, dashboardSvc dashboard.Service, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))

	tmpl, err := dashboard.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	refresh := dashboard.Request{City: cfg.App.DefaultCity, Source: cfg.App.PrimarySource}
	refreshTimeout := cfg.Timeouts.Geocode + cfg.Timeouts.Primary + cfg.Timeouts.Fallback

	app := &App{
		router:           router,
		logger:           logger,
		geocodeService:   geocoder,
		dashboardService: dashboardSvc,
		scheduler:        dashboard.NewScheduler(dashboardSvc, refresh, cfg.App.RefreshInterval, refreshTimeout, logger),
		cfg:              cfg,
	}

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized",
		"geocoder", cfg.App.Geocoder,
		"primarySource", cfg.App.PrimarySource,
	)

	return app, nil
}

// StartScheduler starts the timed refresh when app.refreshInterval is set
func (app *App) StartScheduler() error {
	return app.scheduler.Start()
}

func (app *App) StopScheduler() {
	app.scheduler.Stop()
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
