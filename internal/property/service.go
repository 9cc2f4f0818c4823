package property

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"area-profile/internal/providers/landregistry"
)

// Transactions are ordered newest first upstream; twenty is enough for a
// recent-sales picture of one postcode.
const maxSales = 20

// Splits a compacted postcode before its final "digit letter letter" unit,
// e.g. "SW1A1AA" -> "SW1A 1AA". The registry only matches the spaced form.
var unitPattern = regexp.MustCompile(`^(.+?)(\d\w\w)$`)

// PricePaidProvider fetches raw price-paid transactions for a postcode.
type PricePaidProvider interface {
	GetPricePaid(ctx context.Context, postcode string, limit int) (*landregistry.SPARQLResultsResponse, error)
}

// Service reports recent house sales for a postcode.
type Service interface {
	GetSales(ctx context.Context, postcode string) (*Report, error)
}

type propertyService struct {
	provider PricePaidProvider
	logger   *slog.Logger
}

// NewService creates a property service backed by the Land Registry
// price-paid SPARQL endpoint.
func NewService(httpClient *http.Client, logger *slog.Logger) Service {
	return NewServiceWithProvider(landregistry.NewClient(httpClient, logger), logger)
}

// NewServiceWithProvider creates a property service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider PricePaidProvider, logger *slog.Logger) Service {
	return &propertyService{
		provider: provider,
		logger:   logger.With("component", "property-service"),
	}
}

// GetSales fetches the most recent transactions and averages the valid
// amounts. Registry records with a zero or negative price (transfers,
// corrections) are excluded from the average but still listed.
func (s *propertyService) GetSales(ctx context.Context, postcode string) (*Report, error) {
	formatted := FormatPostcode(postcode)

	resp, err := s.provider.GetPricePaid(ctx, formatted, maxSales)
	if err != nil {
		s.logger.Warn("failed to get price paid data", "postcode", formatted, "error", err)
		return nil, err
	}

	sales := make([]Sale, 0, len(resp.Results.Bindings))
	for _, b := range resp.Results.Bindings {
		sales = append(sales, mapBinding(b))
	}

	sum := 0
	valid := 0
	for _, sale := range sales {
		if sale.Amount > 0 {
			sum += sale.Amount
			valid++
		}
	}
	avg := 0
	if valid > 0 {
		avg = int(math.Round(float64(sum) / float64(valid)))
	}

	return &Report{
		Sales:        sales,
		AveragePrice: avg,
		Count:        len(sales),
	}, nil
}

func mapBinding(b landregistry.PricePaidBinding) Sale {
	amount := 0
	if b.Amount != nil {
		if v, err := strconv.Atoi(b.Amount.Value); err == nil {
			amount = v
		}
	}

	date := ""
	if b.Date != nil {
		date = b.Date.Value
	}

	// Property type is a vocabulary URI; keep only the last path segment.
	propertyType := "unknown"
	if b.PropertyType != nil && b.PropertyType.Value != "" {
		parts := strings.Split(b.PropertyType.Value, "/")
		propertyType = parts[len(parts)-1]
	}

	var addressParts []string
	if b.Paon != nil && b.Paon.Value != "" {
		addressParts = append(addressParts, b.Paon.Value)
	}
	if b.Street != nil && b.Street.Value != "" {
		addressParts = append(addressParts, b.Street.Value)
	}

	return Sale{
		Amount:  amount,
		Date:    date,
		Type:    propertyType,
		Address: strings.Join(addressParts, " "),
	}
}

// FormatPostcode canonicalizes a postcode for the registry: uppercase, all
// whitespace stripped, then a single space inserted before the final unit.
func FormatPostcode(postcode string) string {
	compact := strings.ToUpper(strings.Join(strings.Fields(postcode), ""))
	return unitPattern.ReplaceAllString(compact, "$1 $2")
}
