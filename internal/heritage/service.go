package heritage

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"area-profile/internal/providers/arcgis"
)

const (
	listedBuildingsLayer = "https://services-eu1.arcgis.com/ZOdPfBS3aqqDYPUQ/arcgis/rest/services/National_Heritage_List_for_England_NHLE_v02_VIEW/FeatureServer/0"

	// Listed buildings are point features; 1 km covers the immediate
	// neighbourhood of a postcode.
	searchRadiusMeters = 1000
	maxRecords         = 200
)

// Grade I outranks II* outranks II; anything else sorts last.
var gradeOrder = map[string]int{"I": 0, "II*": 1, "II": 2}

// FeatureProvider queries an ArcGIS FeatureServer layer.
type FeatureProvider interface {
	QueryPoint(ctx context.Context, layerURL string, lat, lng float64, distanceMeters int, opts arcgis.QueryOptions) (*arcgis.QueryResponse, error)
}

// Service reports listed buildings around a point.
type Service interface {
	GetListedBuildings(ctx context.Context, lat, lng float64) (*Report, error)
}

type heritageService struct {
	provider FeatureProvider
	logger   *slog.Logger
}

// NewService creates a heritage service backed by the National Heritage List
// for England layer.
func NewService(httpClient *http.Client, logger *slog.Logger) Service {
	return NewServiceWithProvider(arcgis.NewClient(httpClient, logger), logger)
}

// NewServiceWithProvider creates a heritage service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider FeatureProvider, logger *slog.Logger) Service {
	return &heritageService{
		provider: provider,
		logger:   logger.With("component", "heritage-service"),
	}
}

type buildingAttributes struct {
	Name      string `json:"Name"`
	Grade     string `json:"Grade"`
	ListDate  *int64 `json:"ListDate"`
	ListEntry int64  `json:"ListEntry"`
}

// GetListedBuildings lists buildings ordered by grade significance. The
// stable sort keeps the upstream order within each grade.
func (s *heritageService) GetListedBuildings(ctx context.Context, lat, lng float64) (*Report, error) {
	resp, err := s.provider.QueryPoint(ctx, listedBuildingsLayer, lat, lng, searchRadiusMeters, arcgis.QueryOptions{
		OutFields:  []string{"Name", "Grade", "ListDate", "ListEntry"},
		MaxRecords: maxRecords,
	})
	if err != nil {
		s.logger.Warn("failed to get listed buildings", "error", err)
		return nil, err
	}

	buildings := make([]Building, 0, len(resp.Features))
	byGrade := make(map[string]int)
	for _, f := range resp.Features {
		var attrs buildingAttributes
		if err := json.Unmarshal(f.Attributes, &attrs); err != nil {
			s.logger.Warn("skipping malformed building attributes", "error", err)
			continue
		}

		grade := attrs.Grade
		if grade == "" {
			grade = "unknown"
		}
		byGrade[grade]++

		buildings = append(buildings, Building{
			Name:       attrs.Name,
			Grade:      grade,
			ListEntry:  attrs.ListEntry,
			YearListed: yearFromEpochMs(attrs.ListDate),
		})
	}

	sort.SliceStable(buildings, func(i, j int) bool {
		return gradeRank(buildings[i].Grade) < gradeRank(buildings[j].Grade)
	})

	return &Report{
		Count:         len(buildings),
		Buildings:     buildings,
		ByGrade:       byGrade,
		ExceededLimit: resp.ExceededTransferLimit,
	}, nil
}

func gradeRank(grade string) int {
	if rank, ok := gradeOrder[grade]; ok {
		return rank
	}
	return 3
}

// yearFromEpochMs converts a list date in epoch milliseconds to a UTC year.
func yearFromEpochMs(ms *int64) *int {
	if ms == nil {
		return nil
	}
	year := time.UnixMilli(*ms).UTC().Year()
	return &year
}
