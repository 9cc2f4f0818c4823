package bathing

import (
	"context"
	"log/slog"
	"net/http"
	"sort"

	"area-profile/internal/geo"
	"area-profile/internal/providers/bathingwater"
)

const (
	// The directory endpoint has no spatial filter, so fetch a page and rank
	// by distance locally.
	pageSize = 50

	maxSitesShown = 5
)

// SitesProvider fetches the raw bathing-water directory.
type SitesProvider interface {
	GetSites(ctx context.Context, pageSize int) (*bathingwater.SitesAPIResponse, error)
}

// Service reports the nearest designated bathing waters and their latest
// compliance classification.
type Service interface {
	GetNearest(ctx context.Context, lat, lng float64) (*Report, error)
}

type bathingService struct {
	provider SitesProvider
	logger   *slog.Logger
}

// NewService creates a bathing service backed by the EA bathing-water API.
func NewService(httpClient *http.Client, logger *slog.Logger) Service {
	return NewServiceWithProvider(bathingwater.NewClient(httpClient, logger), logger)
}

// NewServiceWithProvider creates a bathing service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider SitesProvider, logger *slog.Logger) Service {
	return &bathingService{
		provider: provider,
		logger:   logger.With("component", "bathing-service"),
	}
}

// GetNearest ranks sites with coordinates by distance and keeps the five
// closest. Entries without coordinates cannot be ranked and are dropped.
func (s *bathingService) GetNearest(ctx context.Context, lat, lng float64) (*Report, error) {
	resp, err := s.provider.GetSites(ctx, pageSize)
	if err != nil {
		s.logger.Warn("failed to get bathing water sites", "error", err)
		return nil, err
	}

	sites := make([]Site, 0, len(resp.Result.Items))
	for _, item := range resp.Result.Items {
		if item.Lat == nil || item.Long == nil {
			continue
		}

		district := ""
		if item.District != nil {
			district = item.District.Name
		}
		classification := "Unknown"
		if item.LatestComplianceAssessment != nil && item.LatestComplianceAssessment.ComplianceClassification.Name != "" {
			classification = item.LatestComplianceAssessment.ComplianceClassification.Name
		}

		sites = append(sites, Site{
			Name:           item.Name,
			Lat:            *item.Lat,
			Lng:            *item.Long,
			District:       district,
			Classification: classification,
			Distance:       geo.DistanceKm(lat, lng, *item.Lat, *item.Long),
		})
	}

	sort.Slice(sites, func(i, j int) bool {
		return sites[i].Distance < sites[j].Distance
	})
	if len(sites) > maxSitesShown {
		sites = sites[:maxSitesShown]
	}

	return &Report{Sites: sites}, nil
}
