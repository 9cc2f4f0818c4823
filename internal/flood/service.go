package flood

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"area-profile/internal/geo"
	"area-profile/internal/providers/floodmonitoring"
)

const (
	// Monitoring stations are dense along rivers; 10 km is enough context.
	stationsRadiusKm = 10
	// Warnings cover whole river reaches, so search wider.
	warningsRadiusKm = 20

	maxStationsShown = 10
	maxWarningsShown = 5
)

// MonitoringProvider fetches raw flood-monitoring records.
type MonitoringProvider interface {
	GetStations(ctx context.Context, lat, lng float64, distKm int) (*floodmonitoring.StationsAPIResponse, error)
	GetFloods(ctx context.Context, lat, lng float64, distKm int) (*floodmonitoring.FloodsAPIResponse, error)
}

// Service reports nearby monitoring stations and active flood warnings.
type Service interface {
	GetStations(ctx context.Context, lat, lng float64) (*StationsReport, error)
	GetWarnings(ctx context.Context, lat, lng float64) (*WarningsReport, error)
}

type floodService struct {
	provider MonitoringProvider
	logger   *slog.Logger
}

// NewService creates a flood service backed by the EA flood-monitoring API.
func NewService(httpClient *http.Client, logger *slog.Logger) Service {
	return NewServiceWithProvider(floodmonitoring.NewClient(httpClient, logger), logger)
}

// NewServiceWithProvider creates a flood service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider MonitoringProvider, logger *slog.Logger) Service {
	return &floodService{
		provider: provider,
		logger:   logger.With("component", "flood-service"),
	}
}

// GetStations lists the ten nearest stations in upstream order but reports
// the total count, rivers and catchments across everything found.
func (s *floodService) GetStations(ctx context.Context, lat, lng float64) (*StationsReport, error) {
	resp, err := s.provider.GetStations(ctx, lat, lng, stationsRadiusKm)
	if err != nil {
		s.logger.Warn("failed to get flood stations", "error", err)
		return nil, err
	}

	all := resp.Items

	shown := all
	if len(shown) > maxStationsShown {
		shown = shown[:maxStationsShown]
	}

	stations := make([]Station, 0, len(shown))
	for _, item := range shown {
		stations = append(stations, Station{
			Label:     item.Label,
			River:     item.RiverName,
			Town:      item.Town,
			Catchment: item.CatchmentName,
			Status:    normalizeStatus(item.Status),
			Lat:       item.Lat,
			Lng:       item.Long,
			Distance:  geo.DistanceKm(lat, lng, item.Lat, item.Long),
		})
	}

	rivers := make([]string, 0)
	catchments := make([]string, 0)
	seenRivers := make(map[string]bool)
	seenCatchments := make(map[string]bool)
	for _, item := range all {
		if item.RiverName != "" && !seenRivers[item.RiverName] {
			seenRivers[item.RiverName] = true
			rivers = append(rivers, item.RiverName)
		}
		if item.CatchmentName != "" && !seenCatchments[item.CatchmentName] {
			seenCatchments[item.CatchmentName] = true
			catchments = append(catchments, item.CatchmentName)
		}
	}

	return &StationsReport{
		Count:      len(all),
		Stations:   stations,
		Rivers:     rivers,
		Catchments: catchments,
	}, nil
}

// GetWarnings lists up to five active warnings but reports the total count.
func (s *floodService) GetWarnings(ctx context.Context, lat, lng float64) (*WarningsReport, error) {
	resp, err := s.provider.GetFloods(ctx, lat, lng, warningsRadiusKm)
	if err != nil {
		s.logger.Warn("failed to get flood warnings", "error", err)
		return nil, err
	}

	shown := resp.Items
	if len(shown) > maxWarningsShown {
		shown = shown[:maxWarningsShown]
	}

	warnings := make([]Warning, 0, len(shown))
	for _, item := range shown {
		warnings = append(warnings, Warning{
			Description: item.Description,
			Severity:    item.SeverityLevel,
			Message:     item.Message,
			Area:        item.EaAreaName,
		})
	}

	return &WarningsReport{
		Count:    len(resp.Items),
		Warnings: warnings,
	}, nil
}

// normalizeStatus collapses the EA status vocabulary URI to a plain label.
func normalizeStatus(status string) string {
	switch {
	case strings.Contains(status, "Active"):
		return "active"
	case strings.Contains(status, "Closed"):
		return "closed"
	default:
		return "unknown"
	}
}
