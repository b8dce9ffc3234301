package insight

import (
	"reflect"
	"testing"

	"github.com/dkellaway/vantage/internal/models"
)

func valuedHolding(symbol, sector string, price, low, high float64) *models.ValuedHolding {
	return &models.ValuedHolding{
		HoldingRecord: models.HoldingRecord{Symbol: symbol, Sector: sector},
		CurrentPrice:  price,
		Week52Low:     low,
		Week52High:    high,
	}
}

func TestClassifyNearLowBoundary(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		wantLow bool
	}{
		{"well above low", 115, false},
		{"exactly at threshold", 110, true}, // low 100 * 1.10
		{"just above threshold", 110.01, false},
		{"at the low", 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Classify([]*models.ValuedHolding{
				valuedHolding("TEST", "Technology", tt.price, 100, 500),
			})
			got := len(report.OpportunityZone) == 1
			if got != tt.wantLow {
				t.Errorf("price %v: near-low = %v, want %v", tt.price, got, tt.wantLow)
			}
		})
	}
}

func TestClassifyNearHighBoundary(t *testing.T) {
	// High 160: threshold is 152
	report := Classify([]*models.ValuedHolding{
		valuedHolding("AAPL", "Technology", 150, 120, 160),
	})
	if len(report.OverheatedZone) != 0 {
		t.Errorf("150 < 152 threshold, but holding flagged near-high: %+v", report.OverheatedZone)
	}

	report = Classify([]*models.ValuedHolding{
		valuedHolding("AAPL", "Technology", 152, 120, 160),
	})
	if len(report.OverheatedZone) != 1 {
		t.Fatalf("152 >= 152 threshold, but holding not flagged")
	}
	if gap := report.OverheatedZone[0].Gap; gap != 5.0 {
		t.Errorf("gap = %v, want 5.0", gap)
	}
}

func TestClassifyGapRounding(t *testing.T) {
	// Price 107, low 100: gap = 7.0. Price 103.33, low 100: gap = 3.3
	report := Classify([]*models.ValuedHolding{
		valuedHolding("A", "Technology", 103.33, 100, 500),
	})
	if len(report.OpportunityZone) != 1 {
		t.Fatal("holding not flagged near-low")
	}
	if gap := report.OpportunityZone[0].Gap; gap != 3.3 {
		t.Errorf("gap = %v, want 3.3", gap)
	}
}

func TestClassifyBothZonesDegenerate(t *testing.T) {
	// Low and high coincide: a matching price lands in both zones
	report := Classify([]*models.ValuedHolding{
		valuedHolding("FLAT", "Technology", 100, 100, 100),
	})
	if len(report.OpportunityZone) != 1 || len(report.OverheatedZone) != 1 {
		t.Errorf("degenerate range not in both zones: lows=%d highs=%d",
			len(report.OpportunityZone), len(report.OverheatedZone))
	}
}

func TestClassifyZeroRangeExcluded(t *testing.T) {
	// Fallback-valued holdings carry a zero range and belong in neither zone
	report := Classify([]*models.ValuedHolding{
		valuedHolding("NOQUOTE", "Technology", 40, 0, 0),
	})
	if len(report.OpportunityZone) != 0 || len(report.OverheatedZone) != 0 {
		t.Errorf("zero-range holding classified: %+v", report)
	}
}

func TestClassifyConcentrationAlerts(t *testing.T) {
	tests := []struct {
		name         string
		techCount    int
		energyCount  int
		healthCount  int
		wantAlerts   int
		wantSeverity models.AlertSeverity
	}{
		{"no concentration", 2, 2, 1, 0, ""},
		{"medium above 40%", 1, 1, 0, 2, models.SeverityMedium},
		{"high above 60%", 7, 3, 0, 1, models.SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var valued []*models.ValuedHolding
			for i := 0; i < tt.techCount; i++ {
				valued = append(valued, valuedHolding("T", "Technology", 50, 10, 500))
			}
			for i := 0; i < tt.energyCount; i++ {
				valued = append(valued, valuedHolding("O", "Energy", 50, 10, 500))
			}
			for i := 0; i < tt.healthCount; i++ {
				valued = append(valued, valuedHolding("H", "Healthcare", 50, 10, 500))
			}

			report := Classify(valued)
			if len(report.Alerts) != tt.wantAlerts {
				t.Fatalf("got %d alerts, want %d: %+v", len(report.Alerts), tt.wantAlerts, report.Alerts)
			}
			if tt.wantAlerts > 0 && report.Alerts[len(report.Alerts)-1].Severity != tt.wantSeverity {
				t.Errorf("severity = %s, want %s", report.Alerts[len(report.Alerts)-1].Severity, tt.wantSeverity)
			}
		})
	}
}

func TestClassifyAlertMessage(t *testing.T) {
	valued := []*models.ValuedHolding{
		valuedHolding("A", "Technology", 50, 10, 500),
		valuedHolding("B", "Technology", 50, 10, 500),
		valuedHolding("C", "Technology", 50, 10, 500),
		valuedHolding("D", "Energy", 50, 10, 500),
	}

	report := Classify(valued)
	if len(report.Alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(report.Alerts))
	}
	alert := report.Alerts[0]
	if alert.Sector != "Technology" {
		t.Errorf("sector = %q, want Technology", alert.Sector)
	}
	want := "Technology makes up 75% of your holdings. Consider diversifying."
	if alert.Message != want {
		t.Errorf("message = %q, want %q", alert.Message, want)
	}
	if alert.Severity != models.SeverityHigh {
		t.Errorf("severity = %s, want High", alert.Severity)
	}
}

func TestClassifyDiversificationScore(t *testing.T) {
	tests := []struct {
		sectors int
		want    int
	}{
		{0, 0},
		{2, 30},
		{6, 90},
		{7, 100}, // min(100, 105)
		{10, 100},
	}

	sectorNames := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	for _, tt := range tests {
		var valued []*models.ValuedHolding
		for i := 0; i < tt.sectors; i++ {
			valued = append(valued, valuedHolding("X", sectorNames[i], 50, 10, 500))
		}
		report := Classify(valued)
		if report.DiversificationScore != tt.want {
			t.Errorf("%d sectors: score = %d, want %d", tt.sectors, report.DiversificationScore, tt.want)
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	valued := []*models.ValuedHolding{
		valuedHolding("AMD", "Technology", 105, 100, 300),
		valuedHolding("NVDA", "Technology", 290, 100, 300),
		valuedHolding("JNJ", "Healthcare", 150, 120, 180),
	}

	first := Classify(valued)
	second := Classify(valued)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("classifier is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
