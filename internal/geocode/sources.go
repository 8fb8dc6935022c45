package geocode

import (
	"context"
	"fmt"
	"strings"

	"weather-dashboard/internal/providers/openmeteo"
	"weather-dashboard/internal/timezone"
	"weather-dashboard/internal/types"
	"weather-dashboard/internal/upstream"
)

type openMeteoSource struct {
	provider OpenMeteoProvider
}

func (s *openMeteoSource) name() string { return "openmeteo" }

func (s *openMeteoSource) candidates(ctx context.Context, query string) ([]types.Location, error) {
	resp, err := s.provider.Search(ctx, query, 1)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, nil
	}

	locations := make([]types.Location, 0, len(resp.Results))
	for _, r := range resp.Results {
		locations = append(locations, translateOpenMeteo(r))
	}
	return locations, nil
}

// translateOpenMeteo converts a geocoding result to the domain Location type
func translateOpenMeteo(r openmeteo.GeocodingResult) types.Location {
	return types.Location{
		Coordinates:  types.NewCoords(r.Latitude, r.Longitude),
		ResolvedName: r.Name,
		Country:      r.Country,
		CountryCode:  strings.ToUpper(r.CountryCode),
		Timezone:     r.Timezone,
	}
}

type nominatimSource struct {
	provider NominatimProvider
	tz       timezone.Service
}

func (s *nominatimSource) name() string { return "nominatim" }

func (s *nominatimSource) candidates(ctx context.Context, query string) ([]types.Location, error) {
	resp, err := s.provider.Search(ctx, query, 1)
	if err != nil {
		return nil, err
	}

	locations := make([]types.Location, 0, len(resp))
	for _, r := range resp {
		lat, lon, err := r.Coordinates()
		if err != nil {
			return nil, fmt.Errorf("failed to translate search result: %w", upstream.SchemaError(err))
		}

		name := r.Name
		if name == "" {
			name = firstNonEmpty(r.Address.City, r.Address.Town, r.Address.Village, r.DisplayName)
		}

		loc := types.Location{
			Coordinates:  types.NewCoords(lat, lon),
			ResolvedName: name,
			Country:      r.Address.Country,
			CountryCode:  strings.ToUpper(r.Address.CountryCode),
		}
		if s.tz != nil && loc.Coordinates.Valid() {
			if zone, err := s.tz.GetTimezone(lat, lon); err == nil {
				loc.Timezone = zone
			}
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
