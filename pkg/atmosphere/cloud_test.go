package atmosphere

import "testing"

func TestCloudImpactBands(t *testing.T) {
	tests := []struct {
		name       string
		cloudCover float64
		temp       float64
		expected   float64
	}{
		{"clear sky", 0, 20, 0.95},
		{"just under near-clear band", 9.9, 20, 0.95},
		{"overcast", 95, 20, 0.15},
		{"fully overcast", 100, 20, 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CloudImpact(tt.cloudCover, tt.temp)
			if got != tt.expected {
				t.Errorf("CloudImpact(%v, %v) = %v, expected %v", tt.cloudCover, tt.temp, got, tt.expected)
			}
		})
	}
}

func TestCloudImpactMonotonic(t *testing.T) {
	// More cloud never means more light, at any temperature
	for _, temp := range []float64{-20, 0, 20, 45} {
		prev := CloudImpact(0, temp)
		for cc := 0.5; cc <= 100; cc += 0.5 {
			got := CloudImpact(cc, temp)
			if got > prev {
				t.Fatalf("CloudImpact increased from %v to %v at cloudCover=%v temp=%v", prev, got, cc, temp)
			}
			prev = got
		}
	}
}

func TestCloudImpactBounds(t *testing.T) {
	for cc := 0.0; cc <= 100; cc += 1 {
		for _, temp := range []float64{-40, -5, 25, 50} {
			got := CloudImpact(cc, temp)
			if got < 0.1 || got > 0.95 {
				t.Fatalf("CloudImpact(%v, %v) = %v, outside [0.1, 0.95]", cc, temp, got)
			}
		}
	}
}
