package portfolio

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderAllocationChart renders the user's sector allocation as a PNG donut
// chart. Returns raw PNG bytes.
func (s *Service) RenderAllocationChart(ctx context.Context, userID string) ([]byte, error) {
	summary, err := s.GetSummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	return renderAllocation(summary.SectorAllocation)
}

func renderAllocation(allocation map[string]float64) ([]byte, error) {
	if len(allocation) == 0 {
		return nil, fmt.Errorf("no sector allocation to chart")
	}

	sectors := make([]string, 0, len(allocation))
	for sector := range allocation {
		sectors = append(sectors, sector)
	}
	// Largest share first, stable output
	sort.Slice(sectors, func(i, j int) bool {
		if allocation[sectors[i]] != allocation[sectors[j]] {
			return allocation[sectors[i]] > allocation[sectors[j]]
		}
		return sectors[i] < sectors[j]
	})

	values := make([]chart.Value, 0, len(sectors))
	for _, sector := range sectors {
		share := allocation[sector]
		if share <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %s%%", sector, formatShare(share)),
			Value: share,
		})
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no sector allocation to chart")
	}

	graph := chart.DonutChart{
		Title:  "Sector Allocation",
		Width:  600,
		Height: 600,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

func formatShare(share float64) string {
	return strconv.FormatFloat(share, 'f', -1, 64)
}
