package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs/climate-api
// Sample request: https://climate-api.open-meteo.com/v1/climate?latitude=51.5&longitude=-0.14&start_date=1991-01-01&end_date=2020-12-31&models=EC_Earth3P_HR&daily=temperature_2m_max,temperature_2m_min,precipitation_sum
const (
	baseClimateURL = "https://climate-api.open-meteo.com/v1/climate"

	// DefaultModel is a downscaled CMIP6 model with daily output at ~0.25
	// degree resolution, adequate for postcode-level comparisons.
	DefaultModel = "EC_Earth3P_HR"
)

type ClimateClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClimateClient(httpClient *http.Client, logger *slog.Logger) *ClimateClient {
	return &ClimateClient{
		httpClient: httpClient,
		baseURL:    baseClimateURL,
		logger:     logger.With("component", "openmeteo-climate-client"),
	}
}

// GetDailySeries fetches the daily temperature and precipitation series for
// one window of years. Dates are ISO "2006-01-02" strings.
func (c *ClimateClient) GetDailySeries(ctx context.Context, latitude, longitude float64, startDate, endDate string) (*ClimateAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	dailyVars := []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)
	q.Set("models", DefaultModel)
	q.Set("daily", strings.Join(dailyVars, ","))
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching climate series",
		"latitude", latitude,
		"longitude", longitude,
		"start_date", startDate,
		"end_date", endDate,
	)

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

	var apiResp ClimateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
