package course

import (
	"math"
	"testing"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"80", 80, true},
		{" 72.5 ", 72.5, true},
		{"80 pts", 80, true},
		{"-4", -4, true},
		{".5", 0.5, true},
		{"1e2", 100, true},
		{"", 0, false},
		{"abc", 0, false},
		{"pts 80", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseScore(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseScore(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseCreditUnits(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"3", 3, true},
		{"3.7", 3, true},
		{"4 SKS", 4, true},
		{"-2", -2, true},
		{"", 0, false},
		{"SKS", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseCreditUnits(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseCreditUnits(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDiscussionValue(t *testing.T) {
	tests := map[string]string{
		"85":   "85",
		"85.0": "85",
		"120":  "100",
		"0":    "",
		"-1":   "",
		"x":    "",
		"0.25": "0.25",
	}
	for in, want := range tests {
		if got := DiscussionValue(in); got != want {
			t.Errorf("DiscussionValue(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidCreditUnits(t *testing.T) {
	tests := map[int]bool{-1: false, 0: true, 3: true, MaxCreditUnits: true, MaxCreditUnits + 1: false, math.MaxInt: false}
	for n, want := range tests {
		if got := ValidCreditUnits(n); got != want {
			t.Errorf("ValidCreditUnits(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestModuleCount(t *testing.T) {
	tests := map[int]int{-1: 3, 0: 3, 1: 3, 2: 6, 4: 12, MaxCreditUnits: 72, 25: 72, math.MaxInt: 72}
	for units, want := range tests {
		if got := ModuleCount(units); got != want {
			t.Errorf("ModuleCount(%d) = %d, want %d", units, got, want)
		}
	}
}
