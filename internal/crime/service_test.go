package crime

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"area-profile/internal/providers/police"
)

type mockProvider struct {
	crimes []police.Crime
	err    error
}

func (m *mockProvider) GetStreetCrimes(ctx context.Context, lat, lng float64) ([]police.Crime, error) {
	return m.crimes, m.err
}

func TestCrimeService_GetSummary(t *testing.T) {
	tests := []struct {
		name     string
		crimes   []police.Crime
		err      error
		wantErr  bool
		validate func(*testing.T, *Summary)
	}{
		{
			name: "groups and sorts by count descending",
			crimes: []police.Crime{
				{Category: "burglary", Month: "2025-06"},
				{Category: "anti-social-behaviour", Month: "2025-06"},
				{Category: "anti-social-behaviour", Month: "2025-06"},
				{Category: "anti-social-behaviour", Month: "2025-06"},
				{Category: "vehicle-crime", Month: "2025-06"},
				{Category: "vehicle-crime", Month: "2025-06"},
			},
			validate: func(t *testing.T, s *Summary) {
				if s.Total != 6 {
					t.Errorf("Total = %d, want 6", s.Total)
				}
				if s.Month != "2025-06" {
					t.Errorf("Month = %q, want 2025-06", s.Month)
				}
				want := []CategoryCount{
					{Category: "anti social behaviour", Count: 3},
					{Category: "vehicle crime", Count: 2},
					{Category: "burglary", Count: 1},
				}
				if len(s.ByCategory) != len(want) {
					t.Fatalf("ByCategory has %d entries, want %d", len(s.ByCategory), len(want))
				}
				for i, w := range want {
					if s.ByCategory[i] != w {
						t.Errorf("ByCategory[%d] = %+v, want %+v", i, s.ByCategory[i], w)
					}
				}
			},
		},
		{
			name:   "empty response reports unknown month",
			crimes: []police.Crime{},
			validate: func(t *testing.T, s *Summary) {
				if s.Total != 0 {
					t.Errorf("Total = %d, want 0", s.Total)
				}
				if s.Month != "unknown" {
					t.Errorf("Month = %q, want unknown", s.Month)
				}
				if len(s.ByCategory) != 0 {
					t.Errorf("ByCategory has %d entries, want 0", len(s.ByCategory))
				}
			},
		},
		{
			name:    "provider error propagates",
			err:     errors.New("timeout"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewServiceWithProvider(&mockProvider{crimes: tt.crimes, err: tt.err}, slog.Default())
			got, err := svc.GetSummary(context.Background(), 51.5014, -0.1419)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, got)
		})
	}
}

func TestCrimeService_CountsSumToTotal(t *testing.T) {
	crimes := []police.Crime{
		{Category: "burglary", Month: "2025-06"},
		{Category: "burglary", Month: "2025-06"},
		{Category: "drugs", Month: "2025-06"},
		{Category: "shoplifting", Month: "2025-06"},
	}
	svc := NewServiceWithProvider(&mockProvider{crimes: crimes}, slog.Default())
	got, err := svc.GetSummary(context.Background(), 51.5, -0.14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sum := 0
	for _, c := range got.ByCategory {
		sum += c.Count
	}
	if sum != got.Total {
		t.Errorf("category counts sum to %d, want total %d", sum, got.Total)
	}
}
