package sewage

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"sort"

	"area-profile/internal/providers/arcgis"
)

const (
	stormOverflowLayer = "https://services3.arcgis.com/VCOY1atHWVcDlvlJ/arcgis/rest/services/EDM_2023_Storm_Overflow_Annual_Return/FeatureServer/0"

	// Overflows discharge into watercourses that flow past the postcode, so
	// search wider than the immediate neighbourhood.
	searchRadiusMeters = 5000
	maxRecords         = 200

	maxOverflowsShown = 20
)

// FeatureProvider queries an ArcGIS FeatureServer layer by point.
type FeatureProvider interface {
	QueryPoint(ctx context.Context, layerURL string, lat, lng float64, distanceMeters int, opts arcgis.QueryOptions) (*arcgis.QueryResponse, error)
}

// Service reports monitored storm-overflow discharges around a point.
type Service interface {
	GetOverflows(ctx context.Context, lat, lng float64) (*Report, error)
}

type sewageService struct {
	provider FeatureProvider
	logger   *slog.Logger
}

// NewService creates a sewage service backed by the event-duration
// monitoring annual-returns layer.
func NewService(httpClient *http.Client, logger *slog.Logger) Service {
	return NewServiceWithProvider(arcgis.NewClient(httpClient, logger), logger)
}

// NewServiceWithProvider creates a sewage service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider FeatureProvider, logger *slog.Logger) Service {
	return &sewageService{
		provider: provider,
		logger:   logger.With("component", "sewage-service"),
	}
}

type overflowAttributes struct {
	CompanyName        string  `json:"CompanyName"`
	SiteName           string  `json:"SiteName"`
	ReceivingWater     string  `json:"ReceivingWater"`
	TotalSpills        int     `json:"TotalSpills"`
	TotalDurationHours float64 `json:"TotalDurationHours"`
}

// GetOverflows keeps only sites that actually spilled, worst first. Totals
// and the per-operator breakdown cover every spilling site found, not just
// the twenty shown.
func (s *sewageService) GetOverflows(ctx context.Context, lat, lng float64) (*Report, error) {
	resp, err := s.provider.QueryPoint(ctx, stormOverflowLayer, lat, lng, searchRadiusMeters, arcgis.QueryOptions{
		OutFields:  []string{"CompanyName", "SiteName", "ReceivingWater", "TotalSpills", "TotalDurationHours"},
		MaxRecords: maxRecords,
	})
	if err != nil {
		s.logger.Warn("failed to get storm overflows", "error", err)
		return nil, err
	}

	overflows := make([]Overflow, 0, len(resp.Features))
	for _, f := range resp.Features {
		var attrs overflowAttributes
		if err := json.Unmarshal(f.Attributes, &attrs); err != nil {
			s.logger.Warn("skipping malformed overflow attributes", "error", err)
			continue
		}
		if attrs.TotalSpills < 1 {
			continue
		}
		overflows = append(overflows, Overflow{
			Company:        attrs.CompanyName,
			Site:           attrs.SiteName,
			ReceivingWater: attrs.ReceivingWater,
			Spills:         attrs.TotalSpills,
			DurationHours:  round1(attrs.TotalDurationHours),
		})
	}

	sort.Slice(overflows, func(i, j int) bool {
		if overflows[i].Spills != overflows[j].Spills {
			return overflows[i].Spills > overflows[j].Spills
		}
		return overflows[i].Site < overflows[j].Site
	})

	totalSpills := 0
	totalHours := 0.0
	waters := make([]string, 0)
	seenWaters := make(map[string]bool)
	byCompany := make(map[string]*CompanyTotals)
	for _, o := range overflows {
		totalSpills += o.Spills
		totalHours += o.DurationHours
		if o.ReceivingWater != "" && !seenWaters[o.ReceivingWater] {
			seenWaters[o.ReceivingWater] = true
			waters = append(waters, o.ReceivingWater)
		}
		ct := byCompany[o.Company]
		if ct == nil {
			ct = &CompanyTotals{}
			byCompany[o.Company] = ct
		}
		ct.Spills += o.Spills
		ct.DurationHours = round1(ct.DurationHours + o.DurationHours)
	}
	sort.Strings(waters)

	shown := overflows
	if len(shown) > maxOverflowsShown {
		shown = shown[:maxOverflowsShown]
	}

	return &Report{
		Count:           len(overflows),
		Overflows:       shown,
		TotalSpills:     totalSpills,
		TotalHours:      round1(totalHours),
		ReceivingWaters: waters,
		ByCompany:       byCompany,
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
