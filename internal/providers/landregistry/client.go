package landregistry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// API Docs: https://landregistry.data.gov.uk/app/qonsole
// The price-paid dataset is exposed as a SPARQL endpoint; queries are POSTed
// form-encoded and answered as SPARQL-results JSON.
const baseURL = "https://landregistry.data.gov.uk"

// Postcodes are interpolated into the SPARQL text, so only canonical
// postcode characters are allowed through.
var postcodePattern = regexp.MustCompile(`^[A-Z0-9 ]+$`)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "landregistry-client"),
	}
}

// GetPricePaid fetches the most recent price-paid transactions for a
// postcode, newest first, capped at limit.
func (c *Client) GetPricePaid(ctx context.Context, postcode string, limit int) (*SPARQLResultsResponse, error) {
	if !postcodePattern.MatchString(postcode) {
		return nil, fmt.Errorf("invalid postcode %q", postcode)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = "/landregistry/query"

	query := pricePaidQuery(postcode, limit)
	form := url.Values{}
	form.Set("query", query)

	c.logger.Debug("querying price paid data", "postcode", postcode, "limit", limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/sparql-results+json")

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

	var apiResp SPARQLResultsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// pricePaidQuery builds the SPARQL text for a price-paid lookup. The field
// names, optional clauses and ordering are part of the upstream contract.
func pricePaidQuery(postcode string, limit int) string {
	return fmt.Sprintf(`
PREFIX lrppi: <http://landregistry.data.gov.uk/def/ppi/>
PREFIX lrcommon: <http://landregistry.data.gov.uk/def/common/>
SELECT ?amount ?date ?propertyType ?paon ?street
WHERE {
  ?tx lrppi:pricePaid ?amount ;
      lrppi:transactionDate ?date ;
      lrppi:propertyAddress ?addr .
  ?addr lrcommon:postcode "%s" .
  OPTIONAL { ?addr lrcommon:paon ?paon }
  OPTIONAL { ?addr lrcommon:street ?street }
  OPTIONAL { ?tx lrppi:propertyType ?propertyType }
}
ORDER BY DESC(?date)
LIMIT %d`, postcode, limit)
}
