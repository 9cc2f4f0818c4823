package trees

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"

	"area-profile/internal/geo"
	"area-profile/internal/providers/arcgis"
)

const (
	ancientTreeLayer = "https://services1.arcgis.com/k6HWkz7DMAcnnYfV/arcgis/rest/services/Ancient_Tree_Inventory/FeatureServer/0"

	// The inventory layer rejects point+distance filters, so search a degree
	// envelope around the point instead (roughly 5 km at UK latitudes).
	envelopeDegrees = 0.05
	maxRecords      = 50

	maxTreesShown  = 20
	maxSpeciesTop  = 10
	unrankedWeight = 999
)

// FeatureProvider queries an ArcGIS FeatureServer layer by envelope.
type FeatureProvider interface {
	QueryEnvelope(ctx context.Context, layerURL string, minLng, minLat, maxLng, maxLat float64, opts arcgis.QueryOptions) (*arcgis.QueryResponse, error)
}

// Service reports ancient and veteran trees around a point.
type Service interface {
	GetTrees(ctx context.Context, lat, lng float64) (*Report, error)
}

type treesService struct {
	provider FeatureProvider
	logger   *slog.Logger
}

// NewService creates a trees service backed by the Ancient Tree Inventory.
func NewService(httpClient *http.Client, logger *slog.Logger) Service {
	return NewServiceWithProvider(arcgis.NewClient(httpClient, logger), logger)
}

// NewServiceWithProvider creates a trees service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider FeatureProvider, logger *slog.Logger) Service {
	return &treesService{
		provider: provider,
		logger:   logger.With("component", "trees-service"),
	}
}

type treeAttributes struct {
	Species string `json:"Species"`
	Veteran string `json:"VETERAN"`
}

// GetTrees lists the twenty nearest inventory entries. Trees without
// geometry cannot be ranked and sort after every located tree.
func (s *treesService) GetTrees(ctx context.Context, lat, lng float64) (*Report, error) {
	resp, err := s.provider.QueryEnvelope(ctx, ancientTreeLayer,
		lng-envelopeDegrees, lat-envelopeDegrees, lng+envelopeDegrees, lat+envelopeDegrees,
		arcgis.QueryOptions{
			OutFields:      []string{"Species", "VETERAN"},
			MaxRecords:     maxRecords,
			ReturnGeometry: true,
		})
	if err != nil {
		s.logger.Warn("failed to get ancient trees", "error", err)
		return nil, err
	}

	trees := make([]Tree, 0, len(resp.Features))
	byCategory := make(map[string]int)
	speciesCounts := make(map[string]int)
	for _, f := range resp.Features {
		var attrs treeAttributes
		if err := json.Unmarshal(f.Attributes, &attrs); err != nil {
			s.logger.Warn("skipping malformed tree attributes", "error", err)
			continue
		}

		species := attrs.Species
		if species == "" {
			species = "unknown"
		}
		category := attrs.Veteran
		if category == "" {
			category = "unknown"
		}
		byCategory[category]++
		speciesCounts[species]++

		var distance *float64
		if f.Geometry != nil {
			d := geo.DistanceKm(lat, lng, f.Geometry.Y, f.Geometry.X)
			distance = &d
		}

		trees = append(trees, Tree{
			Species:  species,
			Category: category,
			Distance: distance,
		})
	}

	sort.SliceStable(trees, func(i, j int) bool {
		return rankDistance(trees[i].Distance) < rankDistance(trees[j].Distance)
	})

	total := len(trees)
	if len(trees) > maxTreesShown {
		trees = trees[:maxTreesShown]
	}

	return &Report{
		Count:      total,
		Trees:      trees,
		ByCategory: byCategory,
		BySpecies:  topSpecies(speciesCounts),
	}, nil
}

func rankDistance(d *float64) float64 {
	if d == nil {
		return unrankedWeight
	}
	return *d
}

// topSpecies ranks species by count descending, ties alphabetical, and keeps
// the top ten.
func topSpecies(counts map[string]int) []SpeciesCount {
	top := make([]SpeciesCount, 0, len(counts))
	for species, count := range counts {
		top = append(top, SpeciesCount{Species: species, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Species < top[j].Species
	})
	if len(top) > maxSpeciesTop {
		top = top[:maxSpeciesTop]
	}
	return top
}
