// Package geocode resolves a free-text city name to a Location.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/providers/openmeteo"
	"weather-dashboard/internal/providers/openstreetmap"
	"weather-dashboard/internal/timezone"
	"weather-dashboard/internal/types"
	"weather-dashboard/internal/upstream"
)

// DefaultTimeout bounds the single lookup call when none is configured
const DefaultTimeout = 5 * time.Second

const maxNameLength = 100

var (
	// ErrNotFound covers blank or malformed names, empty results, non-200
	// answers and matches with out-of-range coordinates
	ErrNotFound = errors.New("city not found")
	// ErrTimeout means the lookup did not answer before the deadline
	ErrTimeout = errors.New("geocoding timed out")
	// ErrNetwork is a transport failure other than a timeout
	ErrNetwork = upstream.ErrNetwork
)

// Service resolves city names. Geocoding has no fallback provider.
type Service interface {
	Resolve(ctx context.Context, city string) (*types.Location, error)
}

// OpenMeteoProvider is the default lookup backend
type OpenMeteoProvider interface {
	Search(ctx context.Context, name string, count int) (*openmeteo.GeocodingAPIResponse, error)
}

// NominatimProvider is the alternative OpenStreetMap backend
type NominatimProvider interface {
	Search(ctx context.Context, query string, limit int) (openstreetmap.SearchAPIResponse, error)
}

// candidateSource adapts one backend's payload to domain locations
type candidateSource interface {
	name() string
	candidates(ctx context.Context, query string) ([]types.Location, error)
}

type geocoder struct {
	source  candidateSource
	timeout time.Duration
	logger  *slog.Logger
}

// NewService builds the geocoder selected by app.geocoder
func NewService(cfg *config.Config, tz timezone.Service, logger *slog.Logger) Service {
	switch cfg.App.Geocoder {
	case config.GeocoderNominatim:
		nominatim := cfg.Providers.Nominatim
		client := openstreetmap.NewClientWithOptions(nominatim.BaseURL, nominatim.UserAgent, nominatim.RequestsPerSecond, &http.Client{}, logger)
		return newGeocoder(&nominatimSource{provider: client, tz: tz}, cfg.Timeouts.Geocode, logger)
	default:
		client := openmeteo.NewGeocodingClientWithURL(cfg.Providers.OpenMeteo.GeocodingURL, &http.Client{}, logger)
		return newGeocoder(&openMeteoSource{provider: client}, cfg.Timeouts.Geocode, logger)
	}
}

// NewServiceWithOpenMeteo creates a geocoder over a custom Open-Meteo provider
// This is useful for testing with mock providers
func NewServiceWithOpenMeteo(provider OpenMeteoProvider, timeout time.Duration, logger *slog.Logger) Service {
	return newGeocoder(&openMeteoSource{provider: provider}, timeout, logger)
}

// NewServiceWithNominatim creates a geocoder over a custom Nominatim provider.
// Nominatim does not report a timezone, so tz fills it in when non-nil.
func NewServiceWithNominatim(provider NominatimProvider, tz timezone.Service, timeout time.Duration, logger *slog.Logger) Service {
	return newGeocoder(&nominatimSource{provider: provider, tz: tz}, timeout, logger)
}

func newGeocoder(source candidateSource, timeout time.Duration, logger *slog.Logger) *geocoder {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &geocoder{
		source:  source,
		timeout: timeout,
		logger:  logger.With("component", "geocoder", "provider", source.name()),
	}
}

// Resolve makes one bounded lookup and returns the first match
func (g *geocoder) Resolve(ctx context.Context, city string) (*types.Location, error) {
	query := strings.TrimSpace(city)
	if !validName(query) {
		return nil, fmt.Errorf("invalid city name %q: %w", city, ErrNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	candidates, err := g.source.candidates(ctx, query)
	if err != nil {
		classified := classify(err)
		g.logger.Warn("geocoding failed", "city", query, "error", err)
		return nil, fmt.Errorf("failed to geocode %q: %w", query, classified)
	}

	if len(candidates) == 0 {
		g.logger.Info("no geocoding match", "city", query)
		return nil, fmt.Errorf("no match for %q: %w", query, ErrNotFound)
	}

	loc := candidates[0]
	if !loc.Coordinates.Valid() {
		g.logger.Warn("geocoding match out of range", "city", query, "coordinates", loc.Coordinates.String())
		return nil, fmt.Errorf("match for %q has invalid coordinates %s: %w", query, loc.Coordinates, ErrNotFound)
	}
	loc.Query = query

	g.logger.Debug("resolved city",
		"city", query,
		"resolvedName", loc.ResolvedName,
		"coordinates", loc.Coordinates.String(),
	)

	return &loc, nil
}

func classify(err error) error {
	switch {
	case upstream.IsTimeout(err):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, upstream.ErrStatus), errors.Is(err, upstream.ErrSchemaMismatch):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, ErrNetwork):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
}

// validName rejects blank, overlong and control-character input before any call is made
func validName(name string) bool {
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return false
	}
	letters := 0
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters > 0
}
