package stats

import (
	"context"
	"sort"
	"time"

	"github.com/2beens/hevystats/internal/hevy"
	"github.com/2beens/hevystats/internal/telemetry/tracing"
)

type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

type StreaksResponse struct {
	Daily  Streak `json:"daily"`
	Weekly Streak `json:"weekly"`
}

// Streaks computes the daily and weekly training streaks. A daily
// streak is alive when the last training day is today or yesterday
// relative to now; a weekly streak when the last active ISO week is
// the current or the previous one.
func (a *Analyzer) Streaks(ctx context.Context, params hevy.SetParams, now time.Time) (*StreaksResponse, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.streaks")
	defer span.End()

	sets, err := a.repo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	daySet := make(map[time.Time]struct{})
	weekSet := make(map[time.Time]struct{})
	for _, set := range sets {
		day := set.Day()
		daySet[day] = struct{}{}
		weekSet[mondayOf(day)] = struct{}{}
	}

	today := now.UTC().Truncate(24 * time.Hour)

	return &StreaksResponse{
		Daily:  streakOf(daySet, today, 24*time.Hour),
		Weekly: streakOf(weekSet, mondayOf(today), 7*24*time.Hour),
	}, nil
}

// mondayOf returns the Monday (midnight UTC) of the ISO week of t.
func mondayOf(t time.Time) time.Time {
	t = t.Truncate(24 * time.Hour)
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -daysSinceMonday)
}

// streakOf computes the longest and the current run of consecutive
// active periods. Periods are identified by their start time and are
// consecutive when exactly one step apart. The current streak counts
// only if the last active period is at most one step behind the
// reference period.
func streakOf(periods map[time.Time]struct{}, reference time.Time, step time.Duration) Streak {
	if len(periods) == 0 {
		return Streak{}
	}

	sorted := make([]time.Time, 0, len(periods))
	for period := range periods {
		sorted = append(sorted, period)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	var streak Streak
	run := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) == step {
			run++
		} else {
			run = 1
		}
		if run > streak.Longest {
			streak.Longest = run
		}
	}
	if run > streak.Longest {
		streak.Longest = run
	}

	last := sorted[len(sorted)-1]
	if reference.Sub(last) <= step {
		streak.Current = run
	}

	return streak
}
