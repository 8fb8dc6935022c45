package wttr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"weather-dashboard/internal/upstream"
)

// Docs: https://github.com/chubin/wttr.in#json-output
// Sample request: https://wttr.in/Paris?format=j1
const (
	baseURL   = "https://wttr.in"
	userAgent = "weather-dashboard/1.0"
)

type Client struct {
	client *resty.Client
	logger *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return NewClientWithURL(baseURL, &http.Client{}, logger)
}

// NewClientWithURL builds a client against baseURL. Retries stay disabled:
// the fetcher makes exactly one attempt per source.
func NewClientWithURL(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	logger = logger.With("component", "wttr-client")

	client := resty.NewWithClient(httpClient).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("wttr response",
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time().String(),
			"bytes", len(resp.Body()),
		)
		return nil
	})

	return &Client{
		client: client,
		logger: logger,
	}
}

// GetWeather fetches the JSON summary for a city name
func (c *Client) GetWeather(ctx context.Context, city string) (*APIResponse, error) {
	var apiResp APIResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("city", city).
		SetQueryParam("format", "j1").
		ForceContentType("application/json").
		SetResult(&apiResp).
		Get("/{city}")

	if err != nil {
		// Resty reports a body it could not unmarshal through err on a 2xx response
		if resp != nil && resp.IsSuccess() && ctx.Err() == nil && !upstream.IsTimeout(err) {
			c.logger.Debug("wttr response did not decode", "city", city, "error", err)
			return nil, fmt.Errorf("failed to decode response: %w", upstream.SchemaError(err))
		}
		c.logger.Debug("wttr request failed", "city", city, "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", upstream.Classify(err))
	}

	if resp.StatusCode() != http.StatusOK {
		body := resp.String()
		if len(body) > 512 {
			body = body[:512]
		}
		return nil, fmt.Errorf("fetch returned status %d: %s: %w", resp.StatusCode(), body, upstream.ErrStatus)
	}

	if len(apiResp.CurrentCondition) == 0 {
		return nil, fmt.Errorf("failed to decode response: %w",
			upstream.SchemaError(errors.New("current_condition is empty")))
	}

	return &apiResp, nil
}
