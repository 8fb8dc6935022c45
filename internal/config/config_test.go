package config

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.App.DefaultCity != "London" {
		t.Errorf("App.DefaultCity = %q, want London", cfg.App.DefaultCity)
	}
	if cfg.App.PrimarySource != SourceOpenMeteo {
		t.Errorf("App.PrimarySource = %q, want %q", cfg.App.PrimarySource, SourceOpenMeteo)
	}
	if len(cfg.App.PresetCities) != 8 {
		t.Errorf("App.PresetCities has %d entries, want 8", len(cfg.App.PresetCities))
	}
	if cfg.Timeouts.Geocode != 5*time.Second {
		t.Errorf("Timeouts.Geocode = %v, want 5s", cfg.Timeouts.Geocode)
	}
	if cfg.Timeouts.Primary != 8*time.Second {
		t.Errorf("Timeouts.Primary = %v, want 8s", cfg.Timeouts.Primary)
	}
	if cfg.Timeouts.Fallback != 5*time.Second {
		t.Errorf("Timeouts.Fallback = %v, want 5s", cfg.Timeouts.Fallback)
	}
	if cfg.Providers.OpenMeteo.Units != "metric" {
		t.Errorf("Providers.OpenMeteo.Units = %q, want metric", cfg.Providers.OpenMeteo.Units)
	}
	if cfg.App.RefreshInterval != 0 {
		t.Errorf("App.RefreshInterval = %v, want 0", cfg.App.RefreshInterval)
	}
	if cfg.GetServerAddr() != ":8080" {
		t.Errorf("GetServerAddr() = %q, want :8080", cfg.GetServerAddr())
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("WEATHER_DASHBOARD_APP_DEFAULTCITY", "  Paris ")
	t.Setenv("WEATHER_DASHBOARD_APP_PRIMARYSOURCE", "WTTR")
	t.Setenv("WEATHER_DASHBOARD_TIMEOUTS_PRIMARY", "3s")
	t.Setenv("WEATHER_DASHBOARD_SERVER_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.App.DefaultCity != "Paris" {
		t.Errorf("App.DefaultCity = %q, want Paris", cfg.App.DefaultCity)
	}
	if cfg.App.PrimarySource != SourceWttr {
		t.Errorf("App.PrimarySource = %q, want %q", cfg.App.PrimarySource, SourceWttr)
	}
	if cfg.Timeouts.Primary != 3*time.Second {
		t.Errorf("Timeouts.Primary = %v, want 3s", cfg.Timeouts.Primary)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			App: AppConfig{
				PrimarySource: SourceOpenMeteo,
				Geocoder:      GeocoderOpenMeteo,
			},
			Timeouts: TimeoutConfig{
				Geocode:  5 * time.Second,
				Primary:  8 * time.Second,
				Fallback: 5 * time.Second,
			},
			Providers: ProvidersConfig{
				Nominatim: NominatimConfig{RequestsPerSecond: 1},
			},
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:   "wttr as primary source",
			mutate: func(c *Config) { c.App.PrimarySource = SourceWttr },
		},
		{
			name:        "unknown primary source",
			mutate:      func(c *Config) { c.App.PrimarySource = "darksky" },
			wantErr:     true,
			errContains: "app.primarySource",
		},
		{
			name:   "imperial open-meteo units",
			mutate: func(c *Config) { c.Providers.OpenMeteo.Units = "imperial" },
		},
		{
			name:        "unknown open-meteo units",
			mutate:      func(c *Config) { c.Providers.OpenMeteo.Units = "kelvin" },
			wantErr:     true,
			errContains: "units",
		},
		{
			name:        "unknown geocoder",
			mutate:      func(c *Config) { c.App.Geocoder = "google" },
			wantErr:     true,
			errContains: "app.geocoder",
		},
		{
			name:        "zero primary timeout",
			mutate:      func(c *Config) { c.Timeouts.Primary = 0 },
			wantErr:     true,
			errContains: "timeouts",
		},
		{
			name:        "negative refresh interval",
			mutate:      func(c *Config) { c.App.RefreshInterval = -time.Second },
			wantErr:     true,
			errContains: "refreshInterval",
		},
		{
			name:        "zero nominatim rate",
			mutate:      func(c *Config) { c.Providers.Nominatim.RequestsPerSecond = 0 },
			wantErr:     true,
			errContains: "requestsPerSecond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Validate() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestConfig_NewLogger(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true},
		{level: "info", wantDebug: false, wantInfo: true},
		{level: "warning", wantDebug: false, wantInfo: false},
		{level: "bogus", wantDebug: false, wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level, Format: "json"}}
			logger := cfg.NewLogger()

			ctx := context.Background()
			if got := logger.Enabled(ctx, slog.LevelDebug); got != tt.wantDebug {
				t.Errorf("debug enabled = %v, want %v", got, tt.wantDebug)
			}
			if got := logger.Enabled(ctx, slog.LevelInfo); got != tt.wantInfo {
				t.Errorf("info enabled = %v, want %v", got, tt.wantInfo)
			}
		})
	}
}
