package units

import "testing"

// The factor table must be total over the documented codes: every defined
// insertion-units code maps to its exact millimeter factor.
func TestHeaderFactorTable(t *testing.T) {
	tests := []struct {
		code int
		want float64
	}{
		{1, 25.4},
		{2, 304.8},
		{3, 1.609e6},
		{4, 1.0},
		{5, 10.0},
		{6, 1000.0},
		{7, 1.0e6},
		{8, 25.4 / 1e6},
		{9, 0.001},
		{10, 914.4},
		{11, 0.0000254},
		{12, 0.000001},
		{13, 0.001},
		{14, 100.0},
		{15, 10000.0},
		{16, 100000.0},
		{17, 1e12},
		{18, 1.495978707e14},
		{19, 9.4607304725808e18},
		{20, 3.08567758146719e19},
	}

	for _, tt := range tests {
		got, ok := HeaderFactor(tt.code)
		if !ok {
			t.Errorf("HeaderFactor(%d) not found", tt.code)
			continue
		}
		if got != tt.want {
			t.Errorf("HeaderFactor(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestHeaderFactorAbsence(t *testing.T) {
	for _, code := range []int{0, 21, -1, 999} {
		if _, ok := HeaderFactor(code); ok {
			t.Errorf("HeaderFactor(%d) should report absence", code)
		}
	}
}

func TestPlausibleSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		want          bool
	}{
		{"typical site in mm", 12000, 9000, true},
		{"too small (site drawn in meters)", 12, 9, false},
		{"below 5m floor", 4000, 9000, false},
		{"above 2km ceiling", 2500000, 9000, false},
		{"large site at 1:5000", 1400000, 2000000, true},
		{"wide but no A3 scale fits", 1600000, 50000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlausibleSize(tt.width, tt.height); got != tt.want {
				t.Errorf("PlausibleSize(%v, %v) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}
