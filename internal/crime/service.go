package crime

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"area-profile/internal/providers/police"
)

// StreetCrimeProvider fetches raw street-level incidents around a point.
type StreetCrimeProvider interface {
	GetStreetCrimes(ctx context.Context, lat, lng float64) ([]police.Crime, error)
}

// Service summarizes street crime near a location.
type Service interface {
	GetSummary(ctx context.Context, lat, lng float64) (*Summary, error)
}

type crimeService struct {
	provider StreetCrimeProvider
	logger   *slog.Logger
}

// NewService creates a crime service backed by the police.uk API.
func NewService(httpClient *http.Client, logger *slog.Logger) Service {
	return NewServiceWithProvider(police.NewClient(httpClient, logger), logger)
}

// NewServiceWithProvider creates a crime service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider StreetCrimeProvider, logger *slog.Logger) Service {
	return &crimeService{
		provider: provider,
		logger:   logger.With("component", "crime-service"),
	}
}

// GetSummary groups the month's incidents by category, most frequent first.
func (s *crimeService) GetSummary(ctx context.Context, lat, lng float64) (*Summary, error) {
	crimes, err := s.provider.GetStreetCrimes(ctx, lat, lng)
	if err != nil {
		s.logger.Warn("failed to get street crimes", "error", err)
		return nil, err
	}

	byCategory := make(map[string]int)
	for _, c := range crimes {
		category := strings.ReplaceAll(c.Category, "-", " ")
		byCategory[category]++
	}

	sorted := make([]CategoryCount, 0, len(byCategory))
	for category, count := range byCategory {
		sorted = append(sorted, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Category < sorted[j].Category
	})

	// The incident month is uniform across the response; take it from the
	// first record.
	month := "unknown"
	if len(crimes) > 0 && crimes[0].Month != "" {
		month = crimes[0].Month
	}

	return &Summary{
		Total:      len(crimes),
		ByCategory: sorted,
		Month:      month,
	}, nil
}
