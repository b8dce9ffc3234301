package models

import "testing"

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1500.005, 1500.01},
		{1500.004, 1500.0},
		{-12.345, -12.35},
		{0, 0},
		{33.333333, 33.33},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{33.33333, 33.3},
		{33.35, 33.4},
		{50.0, 50.0},
		{-0.25, -0.3}, // math.Round halves go away from zero
	}
	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatMarketCap(t *testing.T) {
	tests := []struct {
		name    string
		dollars float64
		want    string
	}{
		{"billions with fraction", 65_400_000_000, "65.4B"},
		{"billions exact", 65_000_000_000, "65B"},
		{"trillions", 1_230_000_000_000, "1.2T"},
		{"trillions exact", 2_000_000_000_000, "2T"},
		{"millions", 850_500_000, "850.5M"},
		{"sub-million", 950_000, "950000"},
		{"zero", 0, ""},
		{"negative", -5_000_000_000, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMarketCap(tt.dollars); got != tt.want {
				t.Errorf("FormatMarketCap(%v) = %q, want %q", tt.dollars, got, tt.want)
			}
		})
	}
}
