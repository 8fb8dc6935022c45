package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Data source names accepted by app.primarySource
const (
	SourceOpenMeteo = "openmeteo"
	SourceWttr      = "wttr"
)

// Geocoder names accepted by app.geocoder
const (
	GeocoderOpenMeteo = "openmeteo"
	GeocoderNominatim = "nominatim"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	Timeouts  TimeoutConfig
	Providers ProvidersConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds dashboard defaults
type AppConfig struct {
	DefaultCity     string
	PresetCities    []string
	PrimarySource   string        // openmeteo, wttr
	Geocoder        string        // openmeteo, nominatim
	RefreshInterval time.Duration // 0 disables the timer refresh
}

// TimeoutConfig bounds each outbound call
type TimeoutConfig struct {
	Geocode  time.Duration
	Primary  time.Duration
	Fallback time.Duration
}

// ProvidersConfig holds upstream endpoints
type ProvidersConfig struct {
	OpenMeteo OpenMeteoConfig
	Nominatim NominatimConfig
	Wttr      WttrConfig
}

type OpenMeteoConfig struct {
	ForecastURL  string
	GeocodingURL string
	Units        string // metric, imperial; readings are normalized to metric either way
}

type NominatimConfig struct {
	BaseURL           string
	UserAgent         string
	RequestsPerSecond float64
}

type WttrConfig struct {
	BaseURL string
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.weather-dashboard")

	setDefaults(v)

	v.SetEnvPrefix("WEATHER_DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshal(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("app.defaultcity", "London")
	v.SetDefault("app.presetcities", []string{
		"London", "New York", "Tokyo", "Sydney", "Mumbai", "Las Vegas", "Paris", "Berlin",
	})
	v.SetDefault("app.primarysource", SourceOpenMeteo)
	v.SetDefault("app.geocoder", GeocoderOpenMeteo)
	v.SetDefault("app.refreshinterval", "0s")

	v.SetDefault("timeouts.geocode", "5s")
	v.SetDefault("timeouts.primary", "8s")
	v.SetDefault("timeouts.fallback", "5s")

	v.SetDefault("providers.openmeteo.forecasturl", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("providers.openmeteo.geocodingurl", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("providers.openmeteo.units", "metric")
	v.SetDefault("providers.nominatim.baseurl", "https://nominatim.openstreetmap.org/search")
	v.SetDefault("providers.nominatim.useragent", "weather-dashboard/1.0")
	v.SetDefault("providers.nominatim.requestspersecond", 1.0)
	v.SetDefault("providers.wttr.baseurl", "https://wttr.in")
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.App.PrimarySource = strings.ToLower(strings.TrimSpace(cfg.App.PrimarySource))
	cfg.App.Geocoder = strings.ToLower(strings.TrimSpace(cfg.App.Geocoder))
	cfg.App.DefaultCity = strings.TrimSpace(cfg.App.DefaultCity)
	cfg.Providers.OpenMeteo.Units = strings.ToLower(strings.TrimSpace(cfg.Providers.OpenMeteo.Units))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the application cannot start with
func (c *Config) Validate() error {
	switch c.App.PrimarySource {
	case SourceOpenMeteo, SourceWttr:
	default:
		return fmt.Errorf("invalid app.primarySource %q: want %q or %q", c.App.PrimarySource, SourceOpenMeteo, SourceWttr)
	}

	switch c.App.Geocoder {
	case GeocoderOpenMeteo, GeocoderNominatim:
	default:
		return fmt.Errorf("invalid app.geocoder %q: want %q or %q", c.App.Geocoder, GeocoderOpenMeteo, GeocoderNominatim)
	}

	switch c.Providers.OpenMeteo.Units {
	case "", "metric", "imperial":
	default:
		return fmt.Errorf("invalid providers.openmeteo.units %q: want metric or imperial", c.Providers.OpenMeteo.Units)
	}

	if c.Timeouts.Geocode <= 0 || c.Timeouts.Primary <= 0 || c.Timeouts.Fallback <= 0 {
		return errors.New("timeouts must be positive durations")
	}
	if c.App.RefreshInterval < 0 {
		return errors.New("app.refreshInterval must not be negative")
	}
	if c.Providers.Nominatim.RequestsPerSecond <= 0 {
		return errors.New("providers.nominatim.requestsPerSecond must be positive")
	}

	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
