package police

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://data.police.uk/docs/method/crime-street/
// Sample request: https://data.police.uk/api/crimes-street/all-crime?lat=51.5014&lng=-0.1419
const baseURL = "https://data.police.uk"

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "police-client"),
	}
}

// GetStreetCrimes fetches all street-level crime incidents within the
// force's standard one-mile radius of the point for the latest month.
func (c *Client) GetStreetCrimes(ctx context.Context, lat, lng float64) ([]Crime, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = "/api/crimes-street/all-crime"

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lng", fmt.Sprintf("%f", lng))
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching street crimes", "lat", lat, "lng", lng)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var crimes []Crime
	if err := json.NewDecoder(resp.Body).Decode(&crimes); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return crimes, nil
}
