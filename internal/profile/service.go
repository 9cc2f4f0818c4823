package profile

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"area-profile/internal/bathing"
	"area-profile/internal/climate"
	"area-profile/internal/crime"
	"area-profile/internal/flood"
	"area-profile/internal/heritage"
	"area-profile/internal/location"
	"area-profile/internal/nature"
	"area-profile/internal/observability"
	"area-profile/internal/property"
	"area-profile/internal/sewage"
	"area-profile/internal/species"
	"area-profile/internal/trees"
)

// Adapters bundles every data-source service the orchestrator fans out to.
type Adapters struct {
	Location location.Service
	Crime    crime.Service
	Flood    flood.Service
	Property property.Service
	Bathing  bathing.Service
	Species  species.Service
	Heritage heritage.Service
	Trees    trees.Service
	Nature   nature.Service
	Sewage   sewage.Service
	Climate  climate.Service
}

// Service assembles composite area profiles.
type Service interface {
	GetProfile(ctx context.Context, postcode string) (*Report, error)
}

type profileService struct {
	adapters Adapters
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewService wires every adapter against one shared HTTP client, so they all
// share the same timeout and response cache.
func NewService(httpClient *http.Client, metrics *observability.Metrics, logger *slog.Logger) Service {
	return NewServiceWithAdapters(Adapters{
		Location: location.NewService(httpClient, logger),
		Crime:    crime.NewService(httpClient, logger),
		Flood:    flood.NewService(httpClient, logger),
		Property: property.NewService(httpClient, logger),
		Bathing:  bathing.NewService(httpClient, logger),
		Species:  species.NewService(httpClient, logger),
		Heritage: heritage.NewService(httpClient, logger),
		Trees:    trees.NewService(httpClient, logger),
		Nature:   nature.NewService(httpClient, logger),
		Sewage:   sewage.NewService(httpClient, logger),
		Climate:  climate.NewService(httpClient, logger),
	}, metrics, logger)
}

// NewServiceWithAdapters creates a profile service with custom adapters.
// This is useful for testing with mock services.
func NewServiceWithAdapters(adapters Adapters, metrics *observability.Metrics, logger *slog.Logger) Service {
	return &profileService{
		adapters: adapters,
		metrics:  metrics,
		logger:   logger.With("component", "profile-service"),
	}
}

// GetProfile resolves the postcode, then settles every adapter concurrently.
// A failed adapter leaves its section nil; the only error callers see is an
// unresolvable postcode.
func (s *profileService) GetProfile(ctx context.Context, postcode string) (*Report, error) {
	timer := clock.Now()

	loc, err := s.adapters.Location.Resolve(ctx, postcode)
	if err != nil {
		if errors.Is(err, location.ErrPostcodeNotFound) {
			s.metrics.ProfileRequests.WithLabelValues("not_found").Inc()
		} else {
			s.metrics.ProfileRequests.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	report := &Report{
		Location:    *loc,
		GeneratedAt: clock.Now().UTC(),
	}
	lat, lng := loc.Lat, loc.Lng

	var wg sync.WaitGroup
	settle(&wg, s, "crime", &report.Crime, func() (*crime.Summary, error) {
		return s.adapters.Crime.GetSummary(ctx, lat, lng)
	})
	settle(&wg, s, "flood_stations", &report.FloodStations, func() (*flood.StationsReport, error) {
		return s.adapters.Flood.GetStations(ctx, lat, lng)
	})
	settle(&wg, s, "flood_warnings", &report.FloodWarnings, func() (*flood.WarningsReport, error) {
		return s.adapters.Flood.GetWarnings(ctx, lat, lng)
	})
	settle(&wg, s, "house_prices", &report.HousePrices, func() (*property.Report, error) {
		return s.adapters.Property.GetSales(ctx, loc.Postcode)
	})
	settle(&wg, s, "bathing_water", &report.BathingWater, func() (*bathing.Report, error) {
		return s.adapters.Bathing.GetNearest(ctx, lat, lng)
	})
	settle(&wg, s, "species", &report.Species, func() (*species.Report, error) {
		return s.adapters.Species.GetSummary(ctx, lat, lng)
	})
	settle(&wg, s, "listed_buildings", &report.ListedBuildings, func() (*heritage.Report, error) {
		return s.adapters.Heritage.GetListedBuildings(ctx, lat, lng)
	})
	settle(&wg, s, "ancient_trees", &report.AncientTrees, func() (*trees.Report, error) {
		return s.adapters.Trees.GetTrees(ctx, lat, lng)
	})
	settle(&wg, s, "natural_england", &report.NaturalEngland, func() (*nature.Report, error) {
		return s.adapters.Nature.GetSites(ctx, lat, lng)
	})
	settle(&wg, s, "sewage_overflows", &report.SewageOverflows, func() (*sewage.Report, error) {
		return s.adapters.Sewage.GetOverflows(ctx, lat, lng)
	})
	settle(&wg, s, "climate_outlook", &report.ClimateOutlook, func() (*climate.Report, error) {
		return s.adapters.Climate.GetOutlook(ctx, lat, lng)
	})
	wg.Wait()

	s.metrics.ProfileRequests.WithLabelValues("ok").Inc()
	s.metrics.ProfileDuration.Observe(clock.Since(timer).Seconds())

	return report, nil
}

// settle runs one adapter in its own goroutine and writes its result into
// the report slot. Any error becomes a nil slot and an "absent" outcome;
// nothing an adapter does can fail the composite.
func settle[T any](wg *sync.WaitGroup, s *profileService, source string, slot **T, fetch func() (*T, error)) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		result, err := fetch()
		if err != nil {
			s.logger.Info("source absent from profile", "source", source, "error", err)
			s.metrics.SourceOutcomes.WithLabelValues(source, "absent").Inc()
			return
		}
		*slot = result
		s.metrics.SourceOutcomes.WithLabelValues(source, "ok").Inc()
	}()
}
