package openstreetmap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"weather-dashboard/internal/upstream"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Paris&format=json&limit=1&addressdetails=1
// Usage policy: at most one request per second and an identifying User-Agent.
const (
	baseURL          = "https://nominatim.openstreetmap.org/search"
	defaultUserAgent = "weather-dashboard/1.0"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return NewClientWithOptions(baseURL, defaultUserAgent, 1, &http.Client{}, logger)
}

// NewClientWithOptions builds a client allowing requestsPerSecond calls with a burst of one
func NewClientWithOptions(baseURL, userAgent string, requestsPerSecond float64, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		logger:     logger.With("component", "nominatim-client"),
	}
}

// Search looks up a free-text place name and returns up to limit matches
func (c *Client) Search(ctx context.Context, query string, limit int) (SearchAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("addressdetails", "1")
	u.RawQuery = q.Encode()

	// Wait for rate limiter permission or context cancellation
	if err := c.limiter.Wait(ctx); err != nil {
		// Wait fails early when the next slot lies past the deadline
		if !errors.Is(ctx.Err(), context.Canceled) {
			err = fmt.Errorf("%w: %w", upstream.ErrTimeout, err)
		}
		return nil, fmt.Errorf("rate limit wait canceled: %w", upstream.Classify(err))
	}

	header := http.Header{}
	header.Set("User-Agent", c.userAgent)

	var apiResp SearchAPIResponse
	if err := upstream.GetJSON(ctx, c.httpClient, u.String(), header, &apiResp); err != nil {
		c.logger.Debug("search request failed", "query", query, "error", err)
		return nil, err
	}

	c.logger.Debug("search request succeeded", "query", query, "results", len(apiResp))

	return apiResp, nil
}

// Coordinates parses the string lat/lon Nominatim returns
func (r SearchResult) Coordinates() (float64, float64, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", r.Lon, err)
	}
	return lat, lon, nil
}
