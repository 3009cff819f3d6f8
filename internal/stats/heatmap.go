package stats

import (
	"context"

	"github.com/2beens/hevystats/internal/hevy"
	"github.com/2beens/hevystats/internal/telemetry/tracing"
)

var heatmapWeekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type HeatmapResponse struct {
	Weekdays []string   `json:"weekdays"`
	Counts   [7][24]int `json:"counts"` // [weekday][hour] set counts, Monday first
	Max      int        `json:"max"`
}

// Heatmap counts the recorded sets per weekday and hour of day,
// feeding the "when do I train" chart.
func (a *Analyzer) Heatmap(ctx context.Context, params hevy.SetParams) (*HeatmapResponse, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.heatmap")
	defer span.End()

	sets, err := a.repo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	heatmap := &HeatmapResponse{
		Weekdays: heatmapWeekdays,
	}
	for _, set := range sets {
		weekday := (int(set.StartTime.Weekday()) + 6) % 7
		hour := set.StartTime.Hour()
		heatmap.Counts[weekday][hour]++
		if heatmap.Counts[weekday][hour] > heatmap.Max {
			heatmap.Max = heatmap.Counts[weekday][hour]
		}
	}

	return heatmap, nil
}
