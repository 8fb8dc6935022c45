package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"weather-dashboard/internal/upstream"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=48.85&longitude=2.35&current=temperature_2m,relative_humidity_2m,apparent_temperature,pressure_msl,wind_speed_10m,wind_direction_10m,weather_code,cloud_cover,visibility,is_day&hourly=temperature_2m,relative_humidity_2m,weather_code&daily=weather_code,temperature_2m_max,temperature_2m_min,sunrise,sunset,uv_index_max&timezone=Europe/Paris&forecast_days=7
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"

	// DefaultForecastDays covers the five forecast cards with headroom for a
	// late-evening request whose first day is nearly over
	DefaultForecastDays = 7
)

// Units selects the unit system requested from the API
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	units      Units
	logger     *slog.Logger
}

func NewForecastClient(logger *slog.Logger) *ForecastClient {
	return NewForecastClientWithURL(baseForecastURL, UnitsMetric, &http.Client{}, logger)
}

func NewForecastClientWithURL(baseURL string, units Units, httpClient *http.Client, logger *slog.Logger) *ForecastClient {
	return &ForecastClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		units:      units,
		logger:     logger.With("component", "openmeteo-forecast-client"),
	}
}

// GetForecast fetches current, hourly and daily data for the coordinates.
// An empty timezone asks the API to pick the local zone itself.
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	currentVars := []string{
		"temperature_2m",
		"relative_humidity_2m",
		"apparent_temperature",
		"pressure_msl",
		"wind_speed_10m",
		"wind_direction_10m",
		"weather_code",
		"cloud_cover",
		"visibility",
		"is_day",
	}

	hourlyVars := []string{
		"temperature_2m",
		"relative_humidity_2m",
		"weather_code",
	}

	dailyVars := []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"sunrise",
		"sunset",
		"uv_index_max",
	}

	if timezone == "" {
		timezone = "auto"
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", timezone)
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	q.Set("timeformat", "iso8601")
	if c.units == UnitsImperial {
		q.Set("temperature_unit", "fahrenheit")
		q.Set("wind_speed_unit", "mph")
	}
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching forecast",
		"latitude", latitude,
		"longitude", longitude,
		"timezone", timezone,
	)

	var apiResp ForecastAPIResponse
	if err := upstream.GetJSON(ctx, c.httpClient, u.String(), nil, &apiResp); err != nil {
		c.logger.Error("forecast request failed",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, err
	}

	return &apiResp, nil
}
