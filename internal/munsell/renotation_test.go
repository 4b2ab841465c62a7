package munsell

import (
	"math"
	"testing"
)

// newTestTable loads the embedded dataset once for the package tests.
func newTestTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable()
	if err != nil {
		t.Fatalf("NewTable() failed: %v", err)
	}
	return table
}

func TestNewTableLoadsDataset(t *testing.T) {
	table := newTestTable(t)
	if table.Len() < 1000 {
		t.Errorf("table has %d entries, expected the full renotation dataset", table.Len())
	}
}

func TestLookupExact(t *testing.T) {
	table := newTestTable(t)

	tests := []struct {
		name   string
		hue    float64
		family Family
		value  int
		chroma int
		wantOK bool
	}{
		{name: "present mid-gamut", hue: 5, family: FamilyR, value: 5, chroma: 2, wantOK: true},
		{name: "present high chroma", hue: 5, family: FamilyR, value: 5, chroma: 20, wantOK: true},
		{name: "value 0 degenerate", hue: 5, family: FamilyR, value: 0, chroma: 2, wantOK: false},
		{name: "value 10 degenerate", hue: 5, family: FamilyR, value: 10, chroma: 2, wantOK: false},
		{name: "chroma beyond maximum", hue: 5, family: FamilyR, value: 5, chroma: 60, wantOK: false},
		{name: "odd chroma absent", hue: 5, family: FamilyR, value: 5, chroma: 3, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := table.LookupExact(tt.hue, tt.family, tt.value, tt.chroma)
			if ok != tt.wantOK {
				t.Fatalf("LookupExact ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (x <= 0 || x >= 1 || y <= 0 || y >= 1) {
				t.Errorf("LookupExact returned out-of-range chromaticity (%v, %v)", x, y)
			}
		})
	}
}

func TestBoundingStandardHues(t *testing.T) {
	table := newTestTable(t)

	tests := []struct {
		name     string
		hue      float64
		family   Family
		wantCW   float64
		wantFamC Family
		wantCCW  float64
		wantFamU Family
	}{
		{name: "standard hue brackets itself", hue: 7.5, family: FamilyG, wantCW: 7.5, wantFamC: FamilyG, wantCCW: 7.5, wantFamU: FamilyG},
		{name: "interior hue", hue: 6.2, family: FamilyY, wantCW: 5, wantFamC: FamilyY, wantCCW: 7.5, wantFamU: FamilyY},
		{name: "crosses family boundary below 2.5", hue: 1.3, family: FamilyR, wantCW: 10, wantFamC: FamilyRP, wantCCW: 2.5, wantFamU: FamilyR},
		{name: "upper segment", hue: 8.9, family: FamilyPB, wantCW: 7.5, wantFamC: FamilyPB, wantCCW: 10, wantFamU: FamilyPB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cw, famCW, ccw, famCCW := table.BoundingStandardHues(tt.hue, tt.family)
			if cw != tt.wantCW || famCW != tt.wantFamC || ccw != tt.wantCCW || famCCW != tt.wantFamU {
				t.Errorf("BoundingStandardHues(%v, %v) = (%v %v, %v %v), want (%v %v, %v %v)",
					tt.hue, tt.family, cw, famCW, ccw, famCCW,
					tt.wantCW, tt.wantFamC, tt.wantCCW, tt.wantFamU)
			}
		})
	}
}

func TestMaximumChroma(t *testing.T) {
	table := newTestTable(t)

	if got := table.MaximumChroma(5, 5, FamilyR); got < 2 {
		t.Errorf("MaximumChroma(5R, value 5) = %v, expected a tabulated gamut", got)
	}

	// The maximum at an integer value must admit an exact lookup.
	maxC := table.MaximumChroma(5, 5, FamilyR)
	if _, _, ok := table.LookupExact(5, FamilyR, 5, int(maxC)); !ok {
		t.Errorf("entry at MaximumChroma %v missing from table", maxC)
	}
	if _, _, ok := table.LookupExact(5, FamilyR, 5, int(maxC)+2); ok {
		t.Errorf("entry beyond MaximumChroma %v unexpectedly present", maxC)
	}

	// Values above 9 fall back to the value-9 plane.
	if got := table.MaximumChroma(5, 9.5, FamilyR); got != table.MaximumChroma(5, 9, FamilyR) {
		t.Errorf("MaximumChroma above value 9 = %v, want value-9 plane maximum", got)
	}
}

func TestGreyLuminance(t *testing.T) {
	table := newTestTable(t)

	// Integer grey points come straight from the dataset and must agree with
	// the value scale to within the asset's precision.
	for v := 1; v <= 9; v++ {
		got := table.GreyLuminance(float64(v))
		want := ValueToLuminance(float64(v))
		if math.Abs(got-want) > 1e-5 {
			t.Errorf("GreyLuminance(%d) = %v, value scale gives %v", v, got, want)
		}
	}

	// Interpolated points sit between their neighbours.
	mid := table.GreyLuminance(4.5)
	if mid <= table.GreyLuminance(4) || mid >= table.GreyLuminance(5) {
		t.Errorf("GreyLuminance(4.5) = %v not between integer grey points", mid)
	}

	if got := table.GreyLuminance(0); got != 0 {
		t.Errorf("GreyLuminance(0) = %v, want 0", got)
	}
	if got := table.GreyLuminance(10); got != 1 {
		t.Errorf("GreyLuminance(10) = %v, want 1", got)
	}
}
