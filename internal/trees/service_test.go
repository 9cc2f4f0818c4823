package trees

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"area-profile/internal/providers/arcgis"
)

type mockProvider struct {
	resp *arcgis.QueryResponse
	err  error
}

func (m *mockProvider) QueryEnvelope(ctx context.Context, layerURL string, minLng, minLat, maxLng, maxLat float64, opts arcgis.QueryOptions) (*arcgis.QueryResponse, error) {
	return m.resp, m.err
}

func treeFeature(t *testing.T, species, veteran string, geom *arcgis.Geometry) arcgis.Feature {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"Species": species, "VETERAN": veteran})
	if err != nil {
		t.Fatalf("marshal attributes: %v", err)
	}
	return arcgis.Feature{Attributes: raw, Geometry: geom}
}

func TestTreesService_GetTrees(t *testing.T) {
	// 25 located oaks at increasing distance plus one entry with no geometry;
	// the list caps at twenty with the unlocated tree ranked last anyway.
	features := make([]arcgis.Feature, 0, 26)
	features = append(features, treeFeature(t, "Yew", "Veteran tree", nil))
	for i := 25; i >= 1; i-- {
		features = append(features, treeFeature(t, "Oak", "Ancient tree", &arcgis.Geometry{
			X: -0.14,
			Y: 51.5 + float64(i)*0.002,
		}))
	}

	svc := NewServiceWithProvider(&mockProvider{
		resp: &arcgis.QueryResponse{Features: features},
	}, slog.Default())

	got, err := svc.GetTrees(context.Background(), 51.5, -0.14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Count != 26 {
		t.Errorf("Count = %d, want 26", got.Count)
	}
	if len(got.Trees) != 20 {
		t.Fatalf("len(Trees) = %d, want 20", len(got.Trees))
	}
	for i := 1; i < len(got.Trees); i++ {
		if *got.Trees[i].Distance < *got.Trees[i-1].Distance {
			t.Errorf("Trees not sorted by distance at index %d", i)
		}
	}
	for _, tree := range got.Trees {
		if tree.Species == "Yew" {
			t.Error("tree without geometry must rank after all located trees")
		}
	}
	if got.ByCategory["Ancient tree"] != 25 || got.ByCategory["Veteran tree"] != 1 {
		t.Errorf("ByCategory = %v", got.ByCategory)
	}
	if len(got.BySpecies) != 2 || got.BySpecies[0].Species != "Oak" {
		t.Errorf("BySpecies = %v, want Oak first", got.BySpecies)
	}
}

func TestTreesService_GetTrees_SpeciesPairsJSON(t *testing.T) {
	report := &Report{
		BySpecies: []SpeciesCount{{Species: "Oak", Count: 12}, {Species: "Ash", Count: 3}},
	}
	raw, err := json.Marshal(report.BySpecies)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[["Oak",12],["Ash",3]]`
	if string(raw) != want {
		t.Errorf("BySpecies JSON = %s, want %s", raw, want)
	}
}

func TestTreesService_GetTrees_TopSpeciesCap(t *testing.T) {
	features := make([]arcgis.Feature, 0, 12)
	for i := 0; i < 12; i++ {
		features = append(features, treeFeature(t, fmt.Sprintf("Species %02d", i), "Ancient tree", nil))
	}

	svc := NewServiceWithProvider(&mockProvider{
		resp: &arcgis.QueryResponse{Features: features},
	}, slog.Default())

	got, err := svc.GetTrees(context.Background(), 51.5, -0.14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.BySpecies) != 10 {
		t.Errorf("len(BySpecies) = %d, want 10", len(got.BySpecies))
	}
	// Equal counts fall back to alphabetical order.
	if got.BySpecies[0].Species != "Species 00" {
		t.Errorf("BySpecies[0] = %q, want Species 00", got.BySpecies[0].Species)
	}
}

func TestTreesService_GetTrees_Error(t *testing.T) {
	svc := NewServiceWithProvider(&mockProvider{err: errors.New("boom")}, slog.Default())
	if _, err := svc.GetTrees(context.Background(), 51.5, -0.14); err == nil {
		t.Fatal("expected error, got nil")
	}
}
