package weather

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/providers/openmeteo"
	"weather-dashboard/internal/providers/wttr"
	"weather-dashboard/internal/timezone"
	"weather-dashboard/internal/types"
)

// Provider names reported on Forecast.Provider
const (
	ProviderOpenMeteo = "openmeteo"
	ProviderWttr      = "wttr"
)

// Default per-call deadlines
const (
	DefaultPrimaryTimeout  = 8 * time.Second
	DefaultFallbackTimeout = 5 * time.Second
)

// State is a step of a single fetch
type State string

const (
	StateIdle              State = "idle"
	StatePrimaryInFlight   State = "primary_in_flight"
	StatePrimarySucceeded  State = "primary_succeeded"
	StatePrimaryFailed     State = "primary_failed"
	StateFallbackInFlight  State = "fallback_in_flight"
	StateFallbackSucceeded State = "fallback_succeeded"
	StateFallbackFailed    State = "fallback_failed"
)

type ForecastProvider interface {
	// GetForecast fetches current, hourly and daily data for the coordinates
	GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*openmeteo.ForecastAPIResponse, error)
}

type FallbackProvider interface {
	// GetWeather fetches a current-conditions summary by city name
	GetWeather(ctx context.Context, city string) (*wttr.APIResponse, error)
}

// Service fetches weather for a resolved location. It never returns an
// error: every failure ends in the fallback tier or in an Unavailable result.
type Service interface {
	Fetch(ctx context.Context, loc types.Location) FetchResult
	// FetchFrom starts the chain at the named provider; "" uses the configured one
	FetchFrom(ctx context.Context, loc types.Location, provider string) FetchResult
}

// attempt is one step of the ordered fallback chain
type attempt struct {
	provider string
	source   Source
	timeout  time.Duration
	run      func(ctx context.Context, loc types.Location) (*Forecast, error)
}

type fetcher struct {
	forecastProvider ForecastProvider
	fallbackProvider FallbackProvider
	timezoneService  timezone.Service
	cfg              *config.Config
	now              func() time.Time
	logger           *slog.Logger
}

// NewService wires the Open-Meteo and wttr.in clients from configuration
func NewService(cfg *config.Config, tz timezone.Service, logger *slog.Logger) Service {
	forecastClient := openmeteo.NewForecastClientWithURL(
		cfg.Providers.OpenMeteo.ForecastURL,
		openmeteo.Units(cfg.Providers.OpenMeteo.Units),
		&http.Client{},
		logger,
	)
	fallbackClient := wttr.NewClientWithURL(cfg.Providers.Wttr.BaseURL, &http.Client{}, logger)

	return NewServiceWithProviders(forecastClient, fallbackClient, tz, cfg, logger)
}

// NewServiceWithProviders creates a fetcher with custom providers
// This is useful for testing with mock providers
func NewServiceWithProviders(
	forecastProvider ForecastProvider,
	fallbackProvider FallbackProvider,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &fetcher{
		forecastProvider: forecastProvider,
		fallbackProvider: fallbackProvider,
		timezoneService:  timezoneService,
		cfg:              cfg,
		now:              time.Now,
		logger:           logger.With("component", "weather-fetcher"),
	}
}

func (f *fetcher) Fetch(ctx context.Context, loc types.Location) FetchResult {
	return f.FetchFrom(ctx, loc, "")
}

func (f *fetcher) FetchFrom(ctx context.Context, loc types.Location, provider string) FetchResult {
	if provider == "" {
		provider = f.cfg.App.PrimarySource
	}

	chain := f.chain(provider)
	logger := f.logger.With("city", loc.DisplayName(), "coordinates", loc.Coordinates.String())
	logger.Debug("fetch started", "state", StateIdle, "attempts", len(chain))

	var lastErr error
	for _, a := range chain {
		logger.Debug("attempt started", "state", inFlight(a.source), "provider", a.provider)

		forecast, err := f.runAttempt(ctx, a, loc)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", a.provider, err)
			logger.Warn("attempt failed", "state", failed(a.source), "provider", a.provider, "error", err)
			continue
		}

		logger.Info("fetch succeeded", "state", succeeded(a.source), "provider", a.provider)
		return Success(forecast)
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no data source configured for %q", provider)
	}
	logger.Error("weather unavailable", "error", lastErr)
	return Unavailable(lastErr.Error())
}

// chain lists the attempts for a preferred provider. Asking for wttr.in
// skips the Open-Meteo tier.
func (f *fetcher) chain(provider string) []attempt {
	fallback := attempt{
		provider: ProviderWttr,
		source:   SourceFallback,
		timeout:  orDefault(f.cfg.Timeouts.Fallback, DefaultFallbackTimeout),
		run:      f.fetchFallback,
	}

	if provider == config.SourceWttr {
		return []attempt{fallback}
	}

	return []attempt{
		{
			provider: ProviderOpenMeteo,
			source:   SourcePrimary,
			timeout:  orDefault(f.cfg.Timeouts.Primary, DefaultPrimaryTimeout),
			run:      f.fetchPrimary,
		},
		fallback,
	}
}

// runAttempt bounds one call by its own deadline and turns a panic in
// payload handling into an ordinary failure
func (f *fetcher) runAttempt(ctx context.Context, a attempt, loc types.Location) (forecast *Forecast, err error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			forecast = nil
			err = fmt.Errorf("unexpected failure handling response: %v", r)
		}
	}()

	forecast, err = a.run(ctx, loc)
	if err != nil {
		return nil, err
	}
	if forecast == nil {
		return nil, fmt.Errorf("%s returned no forecast", a.provider)
	}
	forecast.Location = loc
	forecast.Source = a.source
	forecast.Provider = a.provider
	forecast.FetchedAt = f.now()
	return forecast, nil
}

func (f *fetcher) fetchPrimary(ctx context.Context, loc types.Location) (*Forecast, error) {
	zone := loc.Timezone
	if zone == "" && f.timezoneService != nil {
		if tz, err := f.timezoneService.GetTimezone(loc.Coordinates.Latitude, loc.Coordinates.Longitude); err == nil {
			zone = tz
		}
	}

	resp, err := f.forecastProvider.GetForecast(
		ctx,
		loc.Coordinates.Latitude,
		loc.Coordinates.Longitude,
		openmeteo.DefaultForecastDays,
		zone,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return mapForecastAPIResponse(resp)
}

func (f *fetcher) fetchFallback(ctx context.Context, loc types.Location) (*Forecast, error) {
	city := loc.Query
	if city == "" {
		city = loc.DisplayName()
	}

	resp, err := f.fallbackProvider.GetWeather(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to get fallback weather: %w", err)
	}

	return mapFallbackResponse(resp, loc, f.timezoneService)
}

func inFlight(s Source) State {
	if s == SourcePrimary {
		return StatePrimaryInFlight
	}
	return StateFallbackInFlight
}

func succeeded(s Source) State {
	if s == SourcePrimary {
		return StatePrimarySucceeded
	}
	return StateFallbackSucceeded
}

func failed(s Source) State {
	if s == SourcePrimary {
		return StatePrimaryFailed
	}
	return StateFallbackFailed
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
