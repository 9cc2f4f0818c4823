package nbnatlas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// API Docs: https://api.nbnatlas.org/
// Sample request: https://records-ws.nbnatlas.org/occurrences/search?lat=51.5&lon=-0.14&radius=2&pageSize=0&facets=species_group&facet=true
const baseURL = "https://records-ws.nbnatlas.org"

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "nbnatlas-client"),
	}
}

// SearchFacet runs a faceted occurrence search around a point: no individual
// records (pageSize=0), only grouped counts for the requested facet field.
// facetLimit caps the number of facet buckets; 0 keeps the upstream default.
func (c *Client) SearchFacet(ctx context.Context, lat, lng, radiusKm float64, facet string, facetLimit int) (*OccurrenceSearchResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = "/occurrences/search"

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lng))
	q.Set("radius", fmt.Sprintf("%g", radiusKm))
	q.Set("pageSize", "0")
	q.Set("facets", facet)
	q.Set("facet", "true")
	if facetLimit > 0 {
		q.Set("flimit", strconv.Itoa(facetLimit))
	}
	u.RawQuery = q.Encode()

	c.logger.Debug("searching occurrences", "facet", facet, "lat", lat, "lng", lng, "radius_km", radiusKm)

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

	var apiResp OccurrenceSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
