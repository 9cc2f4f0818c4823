package climate

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"

	"area-profile/internal/providers/openmeteo"
)

// Thirty-year windows; the baseline matches the current WMO climate normal.
const (
	baselineStart = "1991-01-01"
	baselineEnd   = "2020-12-31"
	futureStart   = "2041-01-01"
	futureEnd     = "2070-12-31"

	// A UK "hot day" is a maximum above 25 degrees C.
	hotDayThresholdC = 25.0
)

var errNoSummerData = errors.New("climate series has no valid summer temperatures")

// SeriesProvider fetches a daily climate-model series for one window.
type SeriesProvider interface {
	GetDailySeries(ctx context.Context, latitude, longitude float64, startDate, endDate string) (*openmeteo.ClimateAPIResponse, error)
}

// Service compares a modelled future climate window against the baseline
// normal for a point.
type Service interface {
	GetOutlook(ctx context.Context, lat, lng float64) (*Report, error)
}

type climateService struct {
	provider SeriesProvider
	logger   *slog.Logger
}

// NewService creates a climate service backed by the Open-Meteo climate API.
func NewService(httpClient *http.Client, logger *slog.Logger) Service {
	return NewServiceWithProvider(openmeteo.NewClimateClient(httpClient, logger), logger)
}

// NewServiceWithProvider creates a climate service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider SeriesProvider, logger *slog.Logger) Service {
	return &climateService{
		provider: provider,
		logger:   logger.With("component", "climate-service"),
	}
}

// GetOutlook fetches the two windows in turn; the projection request is
// skipped when the baseline already failed. Either window lacking a valid
// summer temperature fails the whole outlook.
func (s *climateService) GetOutlook(ctx context.Context, lat, lng float64) (*Report, error) {
	baseline, err := s.windowStats(ctx, lat, lng, baselineStart, baselineEnd)
	if err != nil {
		s.logger.Warn("failed to get baseline climate window", "error", err)
		return nil, err
	}

	future, err := s.windowStats(ctx, lat, lng, futureStart, futureEnd)
	if err != nil {
		s.logger.Warn("failed to get projection climate window", "error", err)
		return nil, err
	}

	return &Report{
		Baseline:              *baseline,
		Future:                *future,
		SummerWarmingC:        round1(future.SummerDayTempC - baseline.SummerDayTempC),
		WinterPrecipChangePct: percentChange(baseline.WinterDailyPrecipMm, future.WinterDailyPrecipMm),
		SummerPrecipChangePct: percentChange(baseline.SummerDailyPrecipMm, future.SummerDailyPrecipMm),
	}, nil
}

func (s *climateService) windowStats(ctx context.Context, lat, lng float64, startDate, endDate string) (*WindowStats, error) {
	resp, err := s.provider.GetDailySeries(ctx, lat, lng, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return summarizeWindow(resp)
}

// summarizeWindow reduces a daily series to seasonal statistics. Days with a
// missing value are skipped per statistic rather than failing the window.
func summarizeWindow(resp *openmeteo.ClimateAPIResponse) (*WindowStats, error) {
	daily := resp.Daily

	var (
		summerMaxSum, summerMinSum   float64
		summerMaxN, summerMinN       int
		summerPrecSum, winterPrecSum float64
		summerPrecN, winterPrecN     int

		hotDays int
		years   = map[string]bool{}
	)

	for i, date := range daily.Time {
		if len(date) < 7 {
			continue
		}
		year, month := date[:4], date[5:7]
		years[year] = true

		summer := month == "06" || month == "07" || month == "08"
		winter := month == "12" || month == "01" || month == "02"

		if i < len(daily.Temperature2MMax) && daily.Temperature2MMax[i] != nil {
			tmax := *daily.Temperature2MMax[i]
			if summer {
				summerMaxSum += tmax
				summerMaxN++
			}
			if tmax > hotDayThresholdC {
				hotDays++
			}
		}
		if summer && i < len(daily.Temperature2MMin) && daily.Temperature2MMin[i] != nil {
			summerMinSum += *daily.Temperature2MMin[i]
			summerMinN++
		}
		if i < len(daily.PrecipitationSum) && daily.PrecipitationSum[i] != nil {
			prec := *daily.PrecipitationSum[i]
			if summer {
				summerPrecSum += prec
				summerPrecN++
			}
			if winter {
				winterPrecSum += prec
				winterPrecN++
			}
		}
	}

	if summerMaxN == 0 {
		return nil, errNoSummerData
	}

	hotDaysPerYear := 0.0
	if len(years) > 0 {
		hotDaysPerYear = round1(float64(hotDays) / float64(len(years)))
	}

	return &WindowStats{
		SummerDayTempC:      round1(summerMaxSum / float64(summerMaxN)),
		SummerNightTempC:    round1(mean(summerMinSum, summerMinN)),
		WinterDailyPrecipMm: round1(mean(winterPrecSum, winterPrecN)),
		SummerDailyPrecipMm: round1(mean(summerPrecSum, summerPrecN)),
		HotDaysPerYear:      hotDaysPerYear,
	}, nil
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// percentChange returns the whole-percent change from baseline, or nil when
// the baseline is zero or negative and the ratio is undefined.
func percentChange(baseline, future float64) *int {
	if baseline <= 0 {
		return nil
	}
	pct := int(math.Round((future - baseline) / baseline * 100))
	return &pct
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
