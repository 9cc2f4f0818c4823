package arcgis

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

// Client queries ArcGIS FeatureServer layers. Several national open datasets
// (Historic England, Woodland Trust, Natural England, the Rivers Trust) are
// published this way; each adapter supplies its own layer URL and fields and
// unmarshals the raw attributes into its own typed struct.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     logger.With("component", "arcgis-client"),
	}
}

// QueryOptions narrows a layer query. A zero MaxRecords leaves the upstream
// default in place.
type QueryOptions struct {
	OutFields      []string
	MaxRecords     int
	ReturnGeometry bool
}

// QueryPoint fetches features intersecting a circle of distanceMeters around
// the point.
func (c *Client) QueryPoint(ctx context.Context, layerURL string, lat, lng float64, distanceMeters int, opts QueryOptions) (*QueryResponse, error) {
	params := c.baseParams(opts)
	params.Set("geometry", fmt.Sprintf("%f,%f", lng, lat))
	params.Set("geometryType", "esriGeometryPoint")
	params.Set("distance", fmt.Sprintf("%d", distanceMeters))
	params.Set("units", "esriSRUnit_Meter")
	return c.query(ctx, layerURL, params)
}

// QueryEnvelope fetches features intersecting a lat/lng bounding box. Some
// layers reject point+distance filters, so callers fall back to an envelope.
func (c *Client) QueryEnvelope(ctx context.Context, layerURL string, minLng, minLat, maxLng, maxLat float64, opts QueryOptions) (*QueryResponse, error) {
	params := c.baseParams(opts)
	params.Set("geometry", fmt.Sprintf("%f,%f,%f,%f", minLng, minLat, maxLng, maxLat))
	params.Set("geometryType", "esriGeometryEnvelope")
	return c.query(ctx, layerURL, params)
}

// QueryCount returns only the number of features intersecting a circle of
// distanceMeters around the point.
func (c *Client) QueryCount(ctx context.Context, layerURL string, lat, lng float64, distanceMeters int) (int, error) {
	params := c.baseParams(QueryOptions{})
	params.Set("geometry", fmt.Sprintf("%f,%f", lng, lat))
	params.Set("geometryType", "esriGeometryPoint")
	params.Set("distance", fmt.Sprintf("%d", distanceMeters))
	params.Set("units", "esriSRUnit_Meter")
	params.Set("returnCountOnly", "true")

	resp, err := c.query(ctx, layerURL, params)
	if err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (c *Client) baseParams(opts QueryOptions) url.Values {
	params := url.Values{}
	params.Set("inSR", "4326")
	params.Set("spatialRel", "esriSpatialRelIntersects")
	params.Set("f", "json")
	if len(opts.OutFields) > 0 {
		params.Set("outFields", strings.Join(opts.OutFields, ","))
	}
	if opts.MaxRecords > 0 {
		params.Set("resultRecordCount", fmt.Sprintf("%d", opts.MaxRecords))
	}
	if opts.ReturnGeometry {
		params.Set("returnGeometry", "true")
		params.Set("outSR", "4326")
	} else {
		params.Set("returnGeometry", "false")
	}
	return params
}

func (c *Client) query(ctx context.Context, layerURL string, params url.Values) (*QueryResponse, error) {
	u := layerURL + "/query?" + params.Encode()

	c.logger.Debug("querying feature layer", "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
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

	var apiResp QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// FeatureServer reports failures in-band with HTTP 200.
	if apiResp.Error != nil {
		return nil, fmt.Errorf("layer returned error %d: %s", apiResp.Error.Code, apiResp.Error.Message)
	}

	return &apiResp, nil
}
