package sewage

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

func (m *mockProvider) QueryPoint(ctx context.Context, layerURL string, lat, lng float64, distanceMeters int, opts arcgis.QueryOptions) (*arcgis.QueryResponse, error) {
	return m.resp, m.err
}

func overflowFeature(t *testing.T, company, site, water string, spills int, hours float64) arcgis.Feature {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"CompanyName":        company,
		"SiteName":           site,
		"ReceivingWater":     water,
		"TotalSpills":        spills,
		"TotalDurationHours": hours,
	})
	if err != nil {
		t.Fatalf("marshal attributes: %v", err)
	}
	return arcgis.Feature{Attributes: raw}
}

func TestSewageService_GetOverflows(t *testing.T) {
	svc := NewServiceWithProvider(&mockProvider{
		resp: &arcgis.QueryResponse{Features: []arcgis.Feature{
			overflowFeature(t, "Thames Water", "CSO Alpha", "River Brent", 12, 36.25),
			overflowFeature(t, "Thames Water", "CSO Beta", "River Brent", 40, 120.5),
			overflowFeature(t, "Southern Water", "CSO Gamma", "River Mole", 5, 2.04),
			// Zero spills never make the report.
			overflowFeature(t, "Thames Water", "CSO Delta", "River Crane", 0, 0),
		}},
	}, slog.Default())

	got, err := svc.GetOverflows(context.Background(), 51.5, -0.14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Count != 3 {
		t.Errorf("Count = %d, want 3", got.Count)
	}
	if got.Overflows[0].Site != "CSO Beta" {
		t.Errorf("Overflows[0].Site = %q, want CSO Beta (most spills)", got.Overflows[0].Site)
	}
	if got.TotalSpills != 57 {
		t.Errorf("TotalSpills = %d, want 57", got.TotalSpills)
	}
	// 36.3 + 120.5 + 2.0 after per-site rounding.
	if got.TotalHours != 158.8 {
		t.Errorf("TotalHours = %f, want 158.8", got.TotalHours)
	}
	if len(got.ReceivingWaters) != 2 {
		t.Errorf("ReceivingWaters = %v, want 2 distinct", got.ReceivingWaters)
	}
	tw := got.ByCompany["Thames Water"]
	if tw == nil || tw.Spills != 52 {
		t.Errorf("ByCompany[Thames Water] = %+v, want 52 spills", tw)
	}
	if sw := got.ByCompany["Southern Water"]; sw == nil || sw.DurationHours != 2.0 {
		t.Errorf("ByCompany[Southern Water] = %+v, want 2.0 hours", sw)
	}
}

func TestSewageService_GetOverflows_Cap(t *testing.T) {
	features := make([]arcgis.Feature, 0, 30)
	for i := 1; i <= 30; i++ {
		features = append(features, overflowFeature(t, "Wessex Water", fmt.Sprintf("CSO %02d", i), "River Avon", i, float64(i)))
	}

	svc := NewServiceWithProvider(&mockProvider{
		resp: &arcgis.QueryResponse{Features: features},
	}, slog.Default())

	got, err := svc.GetOverflows(context.Background(), 51.5, -0.14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Count != 30 {
		t.Errorf("Count = %d, want 30", got.Count)
	}
	if len(got.Overflows) != 20 {
		t.Errorf("len(Overflows) = %d, want 20", len(got.Overflows))
	}
	if got.Overflows[0].Spills != 30 {
		t.Errorf("Overflows[0].Spills = %d, want 30 (descending)", got.Overflows[0].Spills)
	}
	// Totals cover all thirty sites, not just the twenty shown.
	if got.TotalSpills != 465 {
		t.Errorf("TotalSpills = %d, want 465", got.TotalSpills)
	}
}

func TestSewageService_GetOverflows_Error(t *testing.T) {
	svc := NewServiceWithProvider(&mockProvider{err: errors.New("boom")}, slog.Default())
	if _, err := svc.GetOverflows(context.Background(), 51.5, -0.14); err == nil {
		t.Fatal("expected error, got nil")
	}
}
