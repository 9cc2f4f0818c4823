package geo

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lon1 float64
		lat2, lon2 float64
		expected   float64
		tolerance  float64
	}{
		{"identical points", 51.5014, -0.1419, 51.5014, -0.1419, 0, 0.000001},
		{"westminster to tower bridge", 51.5014, -0.1419, 51.5055, -0.0754, 4.62, 0.05},
		{"london to edinburgh", 51.5074, -0.1278, 55.9533, -3.1883, 534, 2},
		{"across the equator", 1, 0, -1, 0, 222.4, 0.5},
		{"antipodal points", 0, 0, 0, 180, 20015, 5},
		{"near antipodal", 51.5, -0.12, -51.5, 179.88, 20015, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.IsNaN(got) {
				t.Fatalf("DistanceKm returned NaN")
			}
			if math.Abs(got-tt.expected) > tt.tolerance {
				t.Errorf("DistanceKm() = %f, want %f (±%f)", got, tt.expected, tt.tolerance)
			}
		})
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	a := DistanceKm(51.5014, -0.1419, 55.9533, -3.1883)
	b := DistanceKm(55.9533, -3.1883, 51.5014, -0.1419)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance is not symmetric: %f vs %f", a, b)
	}
}
