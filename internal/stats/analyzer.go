package stats

import (
	"context"
	"sort"
	"time"

	"github.com/2beens/hevystats/internal/hevy"
	"github.com/2beens/hevystats/internal/telemetry/tracing"
)

// an exercise needs this many distinct training days before its
// progression chart says anything useful
const minProgressionDays = 12

type setsRepo interface {
	ListAll(ctx context.Context, params hevy.SetParams) ([]hevy.Set, error)
	UnknownExercises(ctx context.Context) ([]string, error)
}

// Overview holds the headline numbers shown at the top of the dashboard.
type Overview struct {
	TotalVolume       float64  `json:"totalVolume"`
	Workouts          int      `json:"workouts"`
	TotalHours        float64  `json:"totalHours"`
	TotalSets         int      `json:"totalSets"`
	TotalReps         int      `json:"totalReps"`
	AvgSetsPerWorkout float64  `json:"avgSetsPerWorkout"`
	UnknownExercises  []string `json:"unknownExercises"`
}

type MonthVolume struct {
	Month   string             `json:"month"` // YYYY-MM
	Total   float64            `json:"total"`
	ByGroup map[string]float64 `json:"byGroup"`
}

type MonthlyVolumeResponse struct {
	Metric string        `json:"metric"`
	Groups []string      `json:"groups"`
	Months []MonthVolume `json:"months"`
}

const (
	MetricTotal      = "total"
	MetricPerWorkout = "perWorkout"
)

type GroupShare struct {
	Group       string  `json:"group"`
	Volume      float64 `json:"volume"`
	VolumeShare float64 `json:"volumeShare"`
}

type DistributionResponse struct {
	TotalVolume float64      `json:"totalVolume"`
	Groups      []GroupShare `json:"groups"`
}

type BalanceEntry struct {
	Group       string  `json:"group"`
	VolumeShare float64 `json:"volumeShare"`
	SetsShare   float64 `json:"setsShare"`
}

type BalanceResponse struct {
	Entries []BalanceEntry `json:"entries"`
}

type ProgressPoint struct {
	Date        time.Time `json:"date"`
	AvgWeight   float64   `json:"avgWeight"`
	MaxWeight   float64   `json:"maxWeight"`
	TotalVolume float64   `json:"totalVolume"`
	SetCount    int       `json:"setCount"`
}

type ExerciseProgression struct {
	Exercise    string          `json:"exercise"`
	MuscleGroup string          `json:"muscleGroup"`
	Eligible    bool            `json:"eligible"`
	Points      []ProgressPoint `json:"points"`
}

type EligibleExercise struct {
	Exercise    string `json:"exercise"`
	MuscleGroup string `json:"muscleGroup"`
	Days        int    `json:"days"`
}

// Analyzer computes all the dashboard statistics from the processed sets.
type Analyzer struct {
	repo       setsRepo
	majorOrder []string
}

func NewAnalyzer(repo setsRepo, majorGroups []string) *Analyzer {
	return &Analyzer{
		repo:       repo,
		majorOrder: majorGroups,
	}
}

func (a *Analyzer) Overview(ctx context.Context, params hevy.SetParams) (*Overview, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.overview")
	defer span.End()

	sets, err := a.repo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	unknown, err := a.repo.UnknownExercises(ctx)
	if err != nil {
		return nil, err
	}
	if unknown == nil {
		unknown = []string{}
	}

	overview := &Overview{
		TotalSets:        len(sets),
		UnknownExercises: unknown,
	}

	days := make(map[time.Time]struct{})
	workoutDurations := make(map[time.Time]time.Duration)
	for _, set := range sets {
		overview.TotalVolume += set.Volume
		overview.TotalReps += set.Reps
		days[set.Day()] = struct{}{}
		if _, ok := workoutDurations[set.StartTime]; !ok && set.EndTime.After(set.StartTime) {
			workoutDurations[set.StartTime] = set.EndTime.Sub(set.StartTime)
		}
	}

	overview.Workouts = len(days)
	for _, duration := range workoutDurations {
		overview.TotalHours += duration.Hours()
	}
	if overview.Workouts > 0 {
		overview.AvgSetsPerWorkout = float64(overview.TotalSets) / float64(overview.Workouts)
	}

	return overview, nil
}

// MonthlyVolume breaks the volume down per YYYY-MM month and per major
// muscle group. With a major group filter set, the breakdown narrows to
// the specific muscle groups within it. The perWorkout metric divides
// each month by its distinct workout days.
func (a *Analyzer) MonthlyVolume(
	ctx context.Context,
	params hevy.SetParams,
	metric string,
) (*MonthlyVolumeResponse, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.monthlyVolume")
	defer span.End()

	sets, err := a.repo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	if metric != MetricPerWorkout {
		metric = MetricTotal
	}

	byMonth := make(map[string]map[string]float64)
	monthDays := make(map[string]map[time.Time]struct{})
	groupSet := make(map[string]struct{})
	for _, set := range sets {
		month := set.StartTime.Format("2006-01")
		group := set.MajorGroup
		if params.MajorGroup != "" {
			group = set.MuscleGroup
		}
		groupSet[group] = struct{}{}

		if byMonth[month] == nil {
			byMonth[month] = make(map[string]float64)
			monthDays[month] = make(map[time.Time]struct{})
		}
		byMonth[month][group] += set.Volume
		monthDays[month][set.Day()] = struct{}{}
	}

	groups := make([]string, 0, len(groupSet))
	for group := range groupSet {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	months := make([]MonthVolume, 0, len(byMonth))
	for month, byGroup := range byMonth {
		divisor := 1.0
		if metric == MetricPerWorkout {
			divisor = float64(len(monthDays[month]))
		}

		monthVolume := MonthVolume{
			Month:   month,
			ByGroup: make(map[string]float64, len(byGroup)),
		}
		for group, volume := range byGroup {
			monthVolume.ByGroup[group] = volume / divisor
			monthVolume.Total += volume / divisor
		}
		months = append(months, monthVolume)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})

	return &MonthlyVolumeResponse{
		Metric: metric,
		Groups: groups,
		Months: months,
	}, nil
}

func (a *Analyzer) Distribution(ctx context.Context, params hevy.SetParams) (*DistributionResponse, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.distribution")
	defer span.End()

	sets, err := a.repo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	byGroup := make(map[string]float64)
	var totalVolume float64
	for _, set := range sets {
		byGroup[set.MajorGroup] += set.Volume
		totalVolume += set.Volume
	}

	groups := make([]GroupShare, 0, len(byGroup))
	for group, volume := range byGroup {
		share := GroupShare{
			Group:  group,
			Volume: volume,
		}
		if totalVolume > 0 {
			share.VolumeShare = volume / totalVolume
		}
		groups = append(groups, share)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Volume == groups[j].Volume {
			return groups[i].Group < groups[j].Group
		}
		return groups[i].Volume > groups[j].Volume
	})

	return &DistributionResponse{
		TotalVolume: totalVolume,
		Groups:      groups,
	}, nil
}

// Balance compares the major groups against each other: the share of
// total volume and the share of total sets each one takes. All major
// groups appear, also the ones with no training at all.
func (a *Analyzer) Balance(ctx context.Context, params hevy.SetParams) (*BalanceResponse, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.balance")
	defer span.End()

	sets, err := a.repo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	volumeByGroup := make(map[string]float64)
	setsByGroup := make(map[string]int)
	var totalVolume float64
	for _, set := range sets {
		volumeByGroup[set.MajorGroup] += set.Volume
		setsByGroup[set.MajorGroup]++
		totalVolume += set.Volume
	}

	entries := make([]BalanceEntry, 0, len(a.majorOrder))
	for _, group := range a.majorOrder {
		entry := BalanceEntry{Group: group}
		if totalVolume > 0 {
			entry.VolumeShare = volumeByGroup[group] / totalVolume
		}
		if len(sets) > 0 {
			entry.SetsShare = float64(setsByGroup[group]) / float64(len(sets))
		}
		entries = append(entries, entry)
	}

	return &BalanceResponse{Entries: entries}, nil
}

func (a *Analyzer) ExerciseProgression(
	ctx context.Context,
	params hevy.SetParams,
	exercise string,
) (*ExerciseProgression, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.exerciseProgression")
	defer span.End()

	params.ExerciseTitle = exercise
	sets, err := a.repo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	progression := &ExerciseProgression{
		Exercise: exercise,
	}

	type dayAgg struct {
		weightSum   float64
		maxWeight   float64
		totalVolume float64
		setCount    int
	}
	byDay := make(map[time.Time]*dayAgg)
	for _, set := range sets {
		progression.MuscleGroup = set.MuscleGroup

		day := set.Day()
		agg, ok := byDay[day]
		if !ok {
			agg = &dayAgg{}
			byDay[day] = agg
		}
		agg.weightSum += set.WeightKg
		if set.WeightKg > agg.maxWeight {
			agg.maxWeight = set.WeightKg
		}
		agg.totalVolume += set.Volume
		agg.setCount++
	}

	progression.Points = make([]ProgressPoint, 0, len(byDay))
	for day, agg := range byDay {
		progression.Points = append(progression.Points, ProgressPoint{
			Date:        day,
			AvgWeight:   agg.weightSum / float64(agg.setCount),
			MaxWeight:   agg.maxWeight,
			TotalVolume: agg.totalVolume,
			SetCount:    agg.setCount,
		})
	}
	sort.Slice(progression.Points, func(i, j int) bool {
		return progression.Points[i].Date.Before(progression.Points[j].Date)
	})

	progression.Eligible = len(progression.Points) >= minProgressionDays

	return progression, nil
}

// EligibleExercises lists the exercises with enough distinct training
// days for a progression chart, ordered by muscle group and title.
func (a *Analyzer) EligibleExercises(ctx context.Context, params hevy.SetParams) ([]EligibleExercise, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.eligibleExercises")
	defer span.End()

	sets, err := a.repo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	daysByExercise := make(map[string]map[time.Time]struct{})
	groupByExercise := make(map[string]string)
	for _, set := range sets {
		if daysByExercise[set.ExerciseTitle] == nil {
			daysByExercise[set.ExerciseTitle] = make(map[time.Time]struct{})
		}
		daysByExercise[set.ExerciseTitle][set.Day()] = struct{}{}
		groupByExercise[set.ExerciseTitle] = set.MuscleGroup
	}

	eligible := make([]EligibleExercise, 0)
	for exercise, days := range daysByExercise {
		if len(days) < minProgressionDays {
			continue
		}
		eligible = append(eligible, EligibleExercise{
			Exercise:    exercise,
			MuscleGroup: groupByExercise[exercise],
			Days:        len(days),
		})
	}
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].MuscleGroup == eligible[j].MuscleGroup {
			return eligible[i].Exercise < eligible[j].Exercise
		}
		return eligible[i].MuscleGroup < eligible[j].MuscleGroup
	})

	return eligible, nil
}
