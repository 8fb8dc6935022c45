package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"weather-dashboard/internal/upstream"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Paris&count=1&language=en&format=json
const (
	baseGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
)

type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewGeocodingClient(logger *slog.Logger) *GeocodingClient {
	return NewGeocodingClientWithURL(baseGeocodingURL, &http.Client{}, logger)
}

func NewGeocodingClientWithURL(baseURL string, httpClient *http.Client, logger *slog.Logger) *GeocodingClient {
	return &GeocodingClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "openmeteo-geocoding-client"),
	}
}

// Search returns up to count candidate matches for a place name
func (c *GeocodingClient) Search(ctx context.Context, name string, count int) (*GeocodingAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("language", "en")
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	var apiResp GeocodingAPIResponse
	if err := upstream.GetJSON(ctx, c.httpClient, u.String(), nil, &apiResp); err != nil {
		c.logger.Debug("geocoding request failed", "name", name, "error", err)
		return nil, err
	}

	c.logger.Debug("geocoding request succeeded", "name", name, "results", len(apiResp.Results))

	return &apiResp, nil
}
