package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/hevystats/internal/hevy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setsOnDays(days ...time.Time) []hevy.Set {
	sets := make([]hevy.Set, 0, len(days))
	for _, day := range days {
		sets = append(sets, hevy.Set{
			StartTime:     day,
			ExerciseTitle: "Bench Press (Barbell)",
			Reps:          8,
		})
	}
	return sets
}

func TestAnalyzer_Streaks_Daily(t *testing.T) {
	repoMock, analyzer := newTestAnalyzer(t)

	// tuesday noon
	now := time.Date(2023, 10, 17, 12, 0, 0, 0, time.UTC)
	testSets := setsOnDays(
		// an older 4 day run
		now.AddDate(0, 0, -20),
		now.AddDate(0, 0, -19),
		now.AddDate(0, 0, -18),
		now.AddDate(0, 0, -17),
		// the live 2 day run, ending yesterday
		now.AddDate(0, 0, -2),
		now.AddDate(0, 0, -1),
	)
	repoMock.EXPECT().ListAll(gomock.Any(), gomock.Any()).Return(testSets, nil)

	streaks, err := analyzer.Streaks(context.Background(), hevy.SetParams{}, now)
	require.NoError(t, err)
	assert.Equal(t, 2, streaks.Daily.Current)
	assert.Equal(t, 4, streaks.Daily.Longest)
}

func TestAnalyzer_Streaks_DailyDead(t *testing.T) {
	repoMock, analyzer := newTestAnalyzer(t)

	now := time.Date(2023, 10, 17, 12, 0, 0, 0, time.UTC)
	testSets := setsOnDays(
		now.AddDate(0, 0, -5),
		now.AddDate(0, 0, -4),
		now.AddDate(0, 0, -3),
	)
	repoMock.EXPECT().ListAll(gomock.Any(), gomock.Any()).Return(testSets, nil)

	streaks, err := analyzer.Streaks(context.Background(), hevy.SetParams{}, now)
	require.NoError(t, err)
	// last active day more than one day back -> streak is over
	assert.Equal(t, 0, streaks.Daily.Current)
	assert.Equal(t, 3, streaks.Daily.Longest)
}

func TestAnalyzer_Streaks_Weekly(t *testing.T) {
	repoMock, analyzer := newTestAnalyzer(t)

	// tuesday 17 Oct 2023
	now := time.Date(2023, 10, 17, 12, 0, 0, 0, time.UTC)
	testSets := setsOnDays(
		// three consecutive weeks: two weeks ago, last week, this week
		time.Date(2023, 10, 4, 12, 0, 0, 0, time.UTC),
		time.Date(2023, 10, 11, 12, 0, 0, 0, time.UTC),
		time.Date(2023, 10, 16, 12, 0, 0, 0, time.UTC),
		// a lone week far back
		time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC),
	)
	repoMock.EXPECT().ListAll(gomock.Any(), gomock.Any()).Return(testSets, nil)

	streaks, err := analyzer.Streaks(context.Background(), hevy.SetParams{}, now)
	require.NoError(t, err)
	assert.Equal(t, 3, streaks.Weekly.Current)
	assert.Equal(t, 3, streaks.Weekly.Longest)
}

func TestAnalyzer_Streaks_WeeklyAliveFromPreviousWeek(t *testing.T) {
	repoMock, analyzer := newTestAnalyzer(t)

	now := time.Date(2023, 10, 17, 12, 0, 0, 0, time.UTC)
	testSets := setsOnDays(
		// nothing this week, but the previous two weeks are active
		time.Date(2023, 10, 5, 12, 0, 0, 0, time.UTC),
		time.Date(2023, 10, 12, 12, 0, 0, 0, time.UTC),
	)
	repoMock.EXPECT().ListAll(gomock.Any(), gomock.Any()).Return(testSets, nil)

	streaks, err := analyzer.Streaks(context.Background(), hevy.SetParams{}, now)
	require.NoError(t, err)
	assert.Equal(t, 2, streaks.Weekly.Current)
}

func TestAnalyzer_Streaks_Empty(t *testing.T) {
	repoMock, analyzer := newTestAnalyzer(t)

	repoMock.EXPECT().ListAll(gomock.Any(), gomock.Any()).Return(nil, nil)

	streaks, err := analyzer.Streaks(context.Background(), hevy.SetParams{}, time.Now())
	require.NoError(t, err)
	assert.Zero(t, streaks.Daily.Current)
	assert.Zero(t, streaks.Daily.Longest)
	assert.Zero(t, streaks.Weekly.Current)
	assert.Zero(t, streaks.Weekly.Longest)
}

func TestAnalyzer_Heatmap(t *testing.T) {
	repoMock, analyzer := newTestAnalyzer(t)

	// monday 18:xx and wednesday 7:xx
	monday := time.Date(2023, 10, 16, 18, 15, 0, 0, time.UTC)
	wednesday := time.Date(2023, 10, 18, 7, 40, 0, 0, time.UTC)
	testSets := setsOnDays(monday, monday, monday, wednesday)
	repoMock.EXPECT().ListAll(gomock.Any(), gomock.Any()).Return(testSets, nil)

	heatmap, err := analyzer.Heatmap(context.Background(), hevy.SetParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, heatmap.Weekdays)
	assert.Equal(t, 3, heatmap.Counts[0][18])
	assert.Equal(t, 1, heatmap.Counts[2][7])
	assert.Equal(t, 3, heatmap.Max)
}
