package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of a failed response is kept in the error
const maxErrorBody = 512

// GetJSON issues a GET bound to ctx and decodes a 200 response into out
func GetJSON(ctx context.Context, client *http.Client, rawURL string, header http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", Classify(err))
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("fetch returned status %d: %s: %w", resp.StatusCode, string(body), ErrStatus)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// A body cut short by the deadline surfaces here, not in Do
		if IsTimeout(err) || ctx.Err() != nil {
			return fmt.Errorf("failed to read response: %w", Classify(err))
		}
		return fmt.Errorf("failed to decode response: %w", SchemaError(err))
	}

	return nil
}
