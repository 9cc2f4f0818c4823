package species

import (
	"context"
	"log/slog"
	"net/http"
	"sort"

	"area-profile/internal/providers/nbnatlas"
)

const (
	// Occurrence records cluster tightly around survey sites; 2 km keeps the
	// list local to the postcode.
	searchRadiusKm = 2.0

	facetGroups  = "species_group"
	facetSpecies = "taxon_name"

	facetLimit      = 20
	maxSpeciesShown = 15
)

// OccurrenceProvider runs faceted occurrence searches against a species
// atlas.
type OccurrenceProvider interface {
	SearchFacet(ctx context.Context, lat, lng, radiusKm float64, facet string, facetLimit int) (*nbnatlas.OccurrenceSearchResponse, error)
}

// Service summarizes recorded wildlife around a point.
type Service interface {
	GetSummary(ctx context.Context, lat, lng float64) (*Report, error)
}

type speciesService struct {
	provider OccurrenceProvider
	logger   *slog.Logger
}

// NewService creates a species service backed by the NBN Atlas.
func NewService(httpClient *http.Client, logger *slog.Logger) Service {
	return NewServiceWithProvider(nbnatlas.NewClient(httpClient, logger), logger)
}

// NewServiceWithProvider creates a species service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider OccurrenceProvider, logger *slog.Logger) Service {
	return &speciesService{
		provider: provider,
		logger:   logger.With("component", "species-service"),
	}
}

// GetSummary runs two facet queries: one for taxonomic groups and one for
// individual species. The group query is authoritative; if the species
// follow-up fails the summary still goes out with an empty species list.
func (s *speciesService) GetSummary(ctx context.Context, lat, lng float64) (*Report, error) {
	groupsResp, err := s.provider.SearchFacet(ctx, lat, lng, searchRadiusKm, facetGroups, facetLimit)
	if err != nil {
		s.logger.Warn("failed to get species groups", "error", err)
		return nil, err
	}

	report := &Report{
		TotalRecords: groupsResp.TotalRecords,
		Groups:       facetCounts(groupsResp, facetGroups),
		TopSpecies:   []NameCount{},
	}

	speciesResp, err := s.provider.SearchFacet(ctx, lat, lng, searchRadiusKm, facetSpecies, facetLimit)
	if err != nil {
		s.logger.Warn("failed to get top species", "error", err)
		return report, nil
	}

	top := facetCounts(speciesResp, facetSpecies)
	if len(top) > maxSpeciesShown {
		top = top[:maxSpeciesShown]
	}
	report.TopSpecies = top

	return report, nil
}

// facetCounts extracts the counts for one facet field, sorted by count
// descending with ties broken alphabetically.
func facetCounts(resp *nbnatlas.OccurrenceSearchResponse, field string) []NameCount {
	counts := []NameCount{}
	for _, fr := range resp.FacetResults {
		if fr.FieldName != field {
			continue
		}
		for _, fc := range fr.FieldResult {
			counts = append(counts, NameCount{Name: fc.Label, Count: fc.Count})
		}
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})
	return counts
}
