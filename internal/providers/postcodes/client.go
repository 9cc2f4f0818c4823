package postcodes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://postcodes.io/docs
// Sample request: https://api.postcodes.io/postcodes/SW1A%201AA
const baseURL = "https://api.postcodes.io"

// ErrNotFound is returned when the postcode does not exist.
var ErrNotFound = errors.New("postcode not found")

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "postcodes-client"),
	}
}

// Lookup fetches the canonical record for a postcode.
func (c *Client) Lookup(ctx context.Context, postcode string) (*LookupAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = "/postcodes/" + url.PathEscape(postcode)

	c.logger.Debug("looking up postcode", "postcode", postcode, "url", u.String())

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

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp LookupAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// The envelope repeats the HTTP status; trust it over the transport.
	if apiResp.Status != http.StatusOK {
		return nil, ErrNotFound
	}

	return &apiResp, nil
}
