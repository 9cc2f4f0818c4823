package bathingwater

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

// API Docs: https://environment.data.gov.uk/bwq/doc/api-reference.html
// The directory has no spatial filter, so callers fetch a fixed page of
// sites and rank by distance client-side.
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
		logger:     logger.With("component", "bathingwater-client"),
	}
}

// GetSites fetches a single page of bathing-water sites.
func (c *Client) GetSites(ctx context.Context, pageSize int) (*SitesAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = "/doc/bathing-water.json"

	q := u.Query()
	q.Set("_pageSize", strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching bathing water sites", "page_size", pageSize)

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

	var apiResp SitesAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
