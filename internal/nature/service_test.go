package nature

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"area-profile/internal/providers/arcgis"
)

type mockProvider struct {
	byLayer map[string]*arcgis.QueryResponse
	errs    map[string]error
	count   int
	countE  error
}

func layerKey(layerURL string) string {
	parts := strings.Split(layerURL, "/")
	// .../<service>/FeatureServer/0
	return parts[len(parts)-3]
}

func (m *mockProvider) QueryPoint(ctx context.Context, layerURL string, lat, lng float64, distanceMeters int, opts arcgis.QueryOptions) (*arcgis.QueryResponse, error) {
	key := layerKey(layerURL)
	if err := m.errs[key]; err != nil {
		return nil, err
	}
	if resp := m.byLayer[key]; resp != nil {
		return resp, nil
	}
	return &arcgis.QueryResponse{}, nil
}

func (m *mockProvider) QueryCount(ctx context.Context, layerURL string, lat, lng float64, distanceMeters int) (int, error) {
	return m.count, m.countE
}

func siteFeature(t *testing.T, name string, areaHa float64, geom *arcgis.Geometry) arcgis.Feature {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"NAME": name, "MEASURE": areaHa})
	if err != nil {
		t.Fatalf("marshal attributes: %v", err)
	}
	return arcgis.Feature{Attributes: raw, Geometry: geom}
}

func TestNatureService_GetSites(t *testing.T) {
	// The far SSSI is a polygon whose outer ring centres further away than
	// the near point feature; sorting must put the point first.
	svc := NewServiceWithProvider(&mockProvider{
		byLayer: map[string]*arcgis.QueryResponse{
			"SSSI_England": {Features: []arcgis.Feature{
				siteFeature(t, "Far Marsh", 120, &arcgis.Geometry{Rings: [][][]float64{{
					{-0.10, 51.60}, {-0.10, 51.62}, {-0.08, 51.62}, {-0.08, 51.60},
				}}}),
				siteFeature(t, "Near Heath", 45, &arcgis.Geometry{X: -0.14, Y: 51.51}),
			}},
			"National_Nature_Reserves_England": {Features: []arcgis.Feature{
				siteFeature(t, "Old Wood", 80, &arcgis.Geometry{X: -0.15, Y: 51.49}),
			}},
			"Country_Parks_England": {Features: []arcgis.Feature{
				siteFeature(t, "Riverside Park", 30, nil),
			}},
		},
		count: 3,
	}, slog.Default())

	got, err := svc.GetSites(context.Background(), 51.5, -0.14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.SSSIs) != 2 {
		t.Fatalf("len(SSSIs) = %d, want 2", len(got.SSSIs))
	}
	if got.SSSIs[0].Name != "Near Heath" {
		t.Errorf("SSSIs[0].Name = %q, want Near Heath (closest)", got.SSSIs[0].Name)
	}
	if len(got.NNRs) != 1 || got.NNRs[0].Name != "Old Wood" {
		t.Errorf("NNRs = %v", got.NNRs)
	}
	if len(got.GreenSpaces) != 1 {
		t.Fatalf("len(GreenSpaces) = %d, want 1", len(got.GreenSpaces))
	}
	// No geometry means the park cannot be ranked.
	if got.GreenSpaces[0].Distance != 999 {
		t.Errorf("GreenSpaces[0].Distance = %f, want 999", got.GreenSpaces[0].Distance)
	}
	if !got.OpenAccess {
		t.Error("OpenAccess = false, want true")
	}
}

func TestNatureService_GetSites_PartialFailure(t *testing.T) {
	svc := NewServiceWithProvider(&mockProvider{
		byLayer: map[string]*arcgis.QueryResponse{
			"National_Nature_Reserves_England": {Features: []arcgis.Feature{
				siteFeature(t, "Old Wood", 80, &arcgis.Geometry{X: -0.15, Y: 51.49}),
			}},
		},
		errs:   map[string]error{"SSSI_England": errors.New("layer down")},
		countE: errors.New("layer down"),
	}, slog.Default())

	got, err := svc.GetSites(context.Background(), 51.5, -0.14)
	if err != nil {
		t.Fatalf("partial failure must not fail the report: %v", err)
	}
	if len(got.SSSIs) != 0 {
		t.Errorf("len(SSSIs) = %d, want 0 for failed layer", len(got.SSSIs))
	}
	if len(got.NNRs) != 1 {
		t.Errorf("len(NNRs) = %d, want 1", len(got.NNRs))
	}
	if got.OpenAccess {
		t.Error("OpenAccess = true, want false when the count query fails")
	}
}

func TestFeatureDistanceKm_DegenerateRings(t *testing.T) {
	tests := []struct {
		name string
		geom *arcgis.Geometry
		want float64
	}{
		{"nil geometry", nil, 999},
		{"empty ring", &arcgis.Geometry{Rings: [][][]float64{{}}}, 999},
		{"one-coordinate vertex", &arcgis.Geometry{Rings: [][][]float64{{{1.0}}}}, 999},
		{"all vertices truncated", &arcgis.Geometry{Rings: [][][]float64{{{-0.14}, {}}}}, 999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := featureDistanceKm(tt.geom, 51.5, -0.14); got != tt.want {
				t.Errorf("featureDistanceKm() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestFeatureDistanceKm_SkipsTruncatedVertices(t *testing.T) {
	// The centroid must come from the two complete vertices only.
	geom := &arcgis.Geometry{Rings: [][][]float64{{
		{-0.14, 51.50},
		{7.0},
		{-0.14, 51.52},
	}}}

	got := featureDistanceKm(geom, 51.51, -0.14)
	if got > 0.01 {
		t.Errorf("featureDistanceKm() = %f, want ~0 (centroid of complete vertices)", got)
	}
}

func TestNatureService_GetSites_MalformedGeometry(t *testing.T) {
	svc := NewServiceWithProvider(&mockProvider{
		byLayer: map[string]*arcgis.QueryResponse{
			"SSSI_England": {Features: []arcgis.Feature{
				siteFeature(t, "Broken Marsh", 10, &arcgis.Geometry{Rings: [][][]float64{{{1.0}}}}),
			}},
		},
	}, slog.Default())

	got, err := svc.GetSites(context.Background(), 51.5, -0.14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.SSSIs) != 1 {
		t.Fatalf("len(SSSIs) = %d, want 1", len(got.SSSIs))
	}
	if got.SSSIs[0].Distance != 999 {
		t.Errorf("SSSIs[0].Distance = %f, want 999 for unusable geometry", got.SSSIs[0].Distance)
	}
}

func TestNatureService_GetSites_AllLayersFail(t *testing.T) {
	boom := errors.New("boom")
	svc := NewServiceWithProvider(&mockProvider{
		errs: map[string]error{
			"SSSI_England":                     boom,
			"National_Nature_Reserves_England": boom,
			"Country_Parks_England":            boom,
		},
		countE: boom,
	}, slog.Default())

	if _, err := svc.GetSites(context.Background(), 51.5, -0.14); err == nil {
		t.Fatal("expected error when every layer fails")
	}
}
