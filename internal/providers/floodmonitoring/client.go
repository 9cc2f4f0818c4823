package floodmonitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://environment.data.gov.uk/flood-monitoring/doc/reference
// Sample request: https://environment.data.gov.uk/flood-monitoring/id/stations?lat=51.5&long=-0.14&dist=10
const baseURL = "https://environment.data.gov.uk"

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "floodmonitoring-client"),
	}
}

// GetStations fetches monitoring stations within distKm of the point.
func (c *Client) GetStations(ctx context.Context, lat, lng float64, distKm int) (*StationsAPIResponse, error) {
	var apiResp StationsAPIResponse
	if err := c.get(ctx, "/flood-monitoring/id/stations", lat, lng, distKm, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetFloods fetches active flood warnings and alerts within distKm of the point.
func (c *Client) GetFloods(ctx context.Context, lat, lng float64, distKm int) (*FloodsAPIResponse, error) {
	var apiResp FloodsAPIResponse
	if err := c.get(ctx, "/flood-monitoring/id/floods", lat, lng, distKm, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

func (c *Client) get(ctx context.Context, path string, lat, lng float64, distKm int, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = path

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("long", fmt.Sprintf("%f", lng))
	q.Set("dist", fmt.Sprintf("%d", distKm))
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching flood monitoring data", "path", path, "lat", lat, "lng", lng, "dist_km", distKm)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
