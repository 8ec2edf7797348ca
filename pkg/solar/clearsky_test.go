package solar

import (
	"math"
	"testing"
)

func TestCalculateClearSkyGHI(t *testing.T) {
	tests := []struct {
		name         string
		elevationDeg float64
		wantZero     bool
	}{
		{"sun below horizon", -10, true},
		{"sun at horizon", 0, true},
		{"low sun", 5, false},
		{"mid sun", 45, false},
		{"sun overhead", 90, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ghi := CalculateClearSkyGHI(tt.elevationDeg, 90-tt.elevationDeg)
			if tt.wantZero {
				if ghi != 0 {
					t.Errorf("GHI = %.2f, expected 0", ghi)
				}
				return
			}
			if ghi <= 0 || math.IsNaN(ghi) || math.IsInf(ghi, 0) {
				t.Errorf("GHI = %v, expected finite positive value", ghi)
			}
		})
	}
}

func TestClearSkyGHIIncreasesWithElevation(t *testing.T) {
	prev := 0.0
	for el := 1.0; el <= 90; el++ {
		ghi := CalculateClearSkyGHI(el, 90-el)
		if ghi < prev {
			t.Fatalf("clear-sky GHI decreased from %.2f to %.2f at elevation %.0f", prev, ghi, el)
		}
		prev = ghi
	}
}
