package location

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"area-profile/internal/providers/postcodes"
	"area-profile/internal/types"
)

// ErrPostcodeNotFound is returned when the geocoder has no record of the
// postcode. It is the only resolver failure callers are expected to branch
// on.
var ErrPostcodeNotFound = errors.New("postcode not found")

// LookupProvider geocodes a postcode.
type LookupProvider interface {
	Lookup(ctx context.Context, postcode string) (*postcodes.LookupAPIResponse, error)
}

// Service resolves free-text postcodes into canonical locations.
type Service interface {
	Resolve(ctx context.Context, postcode string) (*types.Location, error)
}

type locationService struct {
	provider LookupProvider
	logger   *slog.Logger
}

// NewService creates a location service backed by postcodes.io.
func NewService(httpClient *http.Client, logger *slog.Logger) Service {
	return NewServiceWithProvider(postcodes.NewClient(httpClient, logger), logger)
}

// NewServiceWithProvider creates a location service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider LookupProvider, logger *slog.Logger) Service {
	return &locationService{
		provider: provider,
		logger:   logger.With("component", "location-service"),
	}
}

// Resolve normalizes the input and geocodes it. The canonical postcode in
// the result comes from the geocoder, not the input.
func (s *locationService) Resolve(ctx context.Context, postcode string) (*types.Location, error) {
	normalized := strings.Join(strings.Fields(postcode), " ")

	resp, err := s.provider.Lookup(ctx, normalized)
	if err != nil {
		if errors.Is(err, postcodes.ErrNotFound) {
			s.logger.Info("postcode not found", "postcode", normalized)
			return nil, ErrPostcodeNotFound
		}
		s.logger.Warn("failed to resolve postcode", "postcode", normalized, "error", err)
		return nil, err
	}

	r := resp.Result
	return &types.Location{
		Postcode:      r.Postcode,
		Lat:           r.Latitude,
		Lng:           r.Longitude,
		AdminDistrict: r.AdminDistrict,
		Parish:        r.Parish,
		Lsoa:          r.Lsoa,
		Region:        r.Region,
		Country:       r.Country,
		AdminWard:     r.AdminWard,
	}, nil
}
