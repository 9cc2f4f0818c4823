package nature

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"sync"

	"area-profile/internal/geo"
	"area-profile/internal/providers/arcgis"
)

const (
	naturalEnglandBase = "https://services.arcgis.com/JJzESW51TqeY9uat/arcgis/rest/services"

	sssiLayer       = naturalEnglandBase + "/SSSI_England/FeatureServer/0"
	nnrLayer        = naturalEnglandBase + "/National_Nature_Reserves_England/FeatureServer/0"
	parksLayer      = naturalEnglandBase + "/Country_Parks_England/FeatureServer/0"
	openAccessLayer = naturalEnglandBase + "/CRoW_Act_2000_Access_Layer/FeatureServer/0"

	// Designated sites are sparse; 3 km finds what a resident could walk to.
	searchRadiusMeters = 3000
	maxRecords         = 20

	// Sorts features without usable geometry after every located one.
	unrankedDistanceKm = 999
)

// FeatureProvider queries ArcGIS FeatureServer layers by point.
type FeatureProvider interface {
	QueryPoint(ctx context.Context, layerURL string, lat, lng float64, distanceMeters int, opts arcgis.QueryOptions) (*arcgis.QueryResponse, error)
	QueryCount(ctx context.Context, layerURL string, lat, lng float64, distanceMeters int) (int, error)
}

// Service reports designated nature sites around a point.
type Service interface {
	GetSites(ctx context.Context, lat, lng float64) (*Report, error)
}

type natureService struct {
	provider FeatureProvider
	logger   *slog.Logger
}

// NewService creates a nature service backed by the Natural England open
// data layers.
func NewService(httpClient *http.Client, logger *slog.Logger) Service {
	return NewServiceWithProvider(arcgis.NewClient(httpClient, logger), logger)
}

// NewServiceWithProvider creates a nature service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider FeatureProvider, logger *slog.Logger) Service {
	return &natureService{
		provider: provider,
		logger:   logger.With("component", "nature-service"),
	}
}

type siteAttributes struct {
	Name    string  `json:"NAME"`
	Status  string  `json:"STATUS"`
	Measure float64 `json:"MEASURE"`
}

// GetSites runs the four layer queries concurrently. A failed layer leaves
// its slice empty; the report only fails when every layer fails.
func (s *natureService) GetSites(ctx context.Context, lat, lng float64) (*Report, error) {
	var (
		wg sync.WaitGroup

		sssis, nnrs, parks *arcgis.QueryResponse
		openAccessCount    int

		sssiErr, nnrErr, parksErr, crowErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		sssis, sssiErr = s.queryLayer(ctx, sssiLayer, lat, lng, []string{"NAME", "MEASURE"})
	}()
	go func() {
		defer wg.Done()
		nnrs, nnrErr = s.queryLayer(ctx, nnrLayer, lat, lng, []string{"NAME", "MEASURE"})
	}()
	go func() {
		defer wg.Done()
		parks, parksErr = s.queryLayer(ctx, parksLayer, lat, lng, []string{"NAME", "STATUS", "MEASURE"})
	}()
	go func() {
		defer wg.Done()
		openAccessCount, crowErr = s.provider.QueryCount(ctx, openAccessLayer, lat, lng, searchRadiusMeters)
		if crowErr != nil {
			s.logger.Warn("failed to get open access count", "error", crowErr)
		}
	}()
	wg.Wait()

	if sssiErr != nil && nnrErr != nil && parksErr != nil && crowErr != nil {
		return nil, errors.New("all natural england layers failed")
	}

	report := &Report{
		SSSIs:       []ProtectedSite{},
		NNRs:        []ProtectedSite{},
		GreenSpaces: []GreenSpace{},
		OpenAccess:  openAccessCount > 0,
	}
	for _, site := range s.mapSites(sssis, lat, lng) {
		report.SSSIs = append(report.SSSIs, ProtectedSite{Name: site.Name, AreaHa: site.AreaHa, Distance: site.Distance})
	}
	for _, site := range s.mapSites(nnrs, lat, lng) {
		report.NNRs = append(report.NNRs, ProtectedSite{Name: site.Name, AreaHa: site.AreaHa, Distance: site.Distance})
	}
	for _, site := range s.mapSites(parks, lat, lng) {
		report.GreenSpaces = append(report.GreenSpaces, site)
	}

	return report, nil
}

func (s *natureService) queryLayer(ctx context.Context, layerURL string, lat, lng float64, outFields []string) (*arcgis.QueryResponse, error) {
	resp, err := s.provider.QueryPoint(ctx, layerURL, lat, lng, searchRadiusMeters, arcgis.QueryOptions{
		OutFields:      outFields,
		MaxRecords:     maxRecords,
		ReturnGeometry: true,
	})
	if err != nil {
		s.logger.Warn("failed to query nature layer", "layer", layerURL, "error", err)
		return nil, err
	}
	return resp, nil
}

// mapSites normalizes one layer's features sorted nearest first. A nil
// response (failed layer) maps to an empty slice.
func (s *natureService) mapSites(resp *arcgis.QueryResponse, lat, lng float64) []GreenSpace {
	if resp == nil {
		return nil
	}

	sites := make([]GreenSpace, 0, len(resp.Features))
	for _, f := range resp.Features {
		var attrs siteAttributes
		if err := json.Unmarshal(f.Attributes, &attrs); err != nil {
			s.logger.Warn("skipping malformed site attributes", "error", err)
			continue
		}
		sites = append(sites, GreenSpace{
			Name:     attrs.Name,
			Status:   attrs.Status,
			AreaHa:   attrs.Measure,
			Distance: featureDistanceKm(f.Geometry, lat, lng),
		})
	}

	sort.Slice(sites, func(i, j int) bool {
		return sites[i].Distance < sites[j].Distance
	})
	return sites
}

// featureDistanceKm measures to a point feature directly, or to the vertex
// mean of a polygon's outer ring.
func featureDistanceKm(g *arcgis.Geometry, lat, lng float64) float64 {
	if g == nil {
		return unrankedDistanceKm
	}
	if len(g.Rings) > 0 {
		ring := g.Rings[0]
		var cx, cy float64
		n := 0
		for _, vertex := range ring {
			if len(vertex) < 2 {
				continue
			}
			cx += vertex[0]
			cy += vertex[1]
			n++
		}
		if n == 0 {
			return unrankedDistanceKm
		}
		cx /= float64(n)
		cy /= float64(n)
		return geo.DistanceKm(lat, lng, cy, cx)
	}
	return geo.DistanceKm(lat, lng, g.Y, g.X)
}
