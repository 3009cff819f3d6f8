package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/2beens/hevystats/internal/bodyweight"
	"github.com/2beens/hevystats/internal/exercisedb"
	"github.com/2beens/hevystats/internal/hevy"
	"github.com/2beens/hevystats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// the expected file names inside the data dir, matching the Hevy export
// and the auxiliary files maintained next to it
const (
	WorkoutFile    = "workout_data.csv"
	ExerciseDBFile = "exercise_database.json"
	BodyweightFile = "bodyweight_data.csv"
	PhasesFile     = "body_composition_phases.csv"
)

var ErrWorkoutDataNotFound = errors.New("workout data not found")

// Dataset is the in-memory snapshot of the processed workout data.
// Load swaps in a complete new snapshot, readers keep working on the
// old one until then.
type Dataset struct {
	dataDir string

	mu       sync.RWMutex
	sets     []hevy.Set
	unknown  []string
	bwLog    *bodyweight.Log
	phases   []bodyweight.Phase
	loadedAt time.Time
}

func New(dataDir string) *Dataset {
	return &Dataset{
		dataDir: dataDir,
		bwLog:   bodyweight.NewLog(nil),
	}
}

// Load reads all data files and processes them into a new snapshot:
// excluded exercises and warmup sets are dropped, the remaining sets get
// enriched with muscle group metadata and their computed volume.
// On failure the previous snapshot stays untouched.
func (d *Dataset) Load(ctx context.Context) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "dataset.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workoutCsvPath := filepath.Join(d.dataDir, WorkoutFile)
	workoutFile, err := os.Open(workoutCsvPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrWorkoutDataNotFound, workoutCsvPath)
		}
		return fmt.Errorf("open workout data: %w", err)
	}
	defer func() {
		if closeErr := workoutFile.Close(); closeErr != nil {
			log.Warnf("close workout data file: %s", closeErr)
		}
	}()

	rawSets, err := hevy.ParseExport(csv.NewReader(workoutFile))
	if err != nil {
		return fmt.Errorf("parse workout data: %w", err)
	}
	log.Debugf("workout data: %d raw set rows", len(rawSets))

	db := d.loadExerciseDatabase()
	bwLog := d.loadBodyweightLog()
	phases := d.loadPhases()

	sets, unknown := process(rawSets, db, bwLog)
	log.Infof("dataset loaded: %d sets (%d raw rows, %d unknown exercises)",
		len(sets), len(rawSets), len(unknown))

	span.SetAttributes(attribute.Int("sets", len(sets)))
	span.SetAttributes(attribute.Int("unknown_exercises", len(unknown)))

	d.mu.Lock()
	defer d.mu.Unlock()
	d.sets = sets
	d.unknown = unknown
	d.bwLog = bwLog
	d.phases = phases
	d.loadedAt = time.Now()

	return nil
}

// loadExerciseDatabase reads the mapping file; a missing or broken file
// degrades to an empty database, leaving all exercises unknown.
func (d *Dataset) loadExerciseDatabase() *exercisedb.Database {
	dbPath := filepath.Join(d.dataDir, ExerciseDBFile)
	dbFile, err := os.Open(dbPath)
	if err != nil {
		log.Warnf("exercise database not found at %s, all exercises will be unknown", dbPath)
		return exercisedb.Empty()
	}
	defer func() {
		if closeErr := dbFile.Close(); closeErr != nil {
			log.Warnf("close exercise database file: %s", closeErr)
		}
	}()

	db, err := exercisedb.Load(dbFile)
	if err != nil {
		log.Errorf("load exercise database: %s", err)
		return exercisedb.Empty()
	}
	return db
}

func (d *Dataset) loadBodyweightLog() *bodyweight.Log {
	bwPath := filepath.Join(d.dataDir, BodyweightFile)
	bwFile, err := os.Open(bwPath)
	if err != nil {
		log.Debugf("bodyweight data not found at %s, using default bodyweight", bwPath)
		return bodyweight.NewLog(nil)
	}
	defer func() {
		if closeErr := bwFile.Close(); closeErr != nil {
			log.Warnf("close bodyweight file: %s", closeErr)
		}
	}()

	bwLog, err := bodyweight.ParseLog(csv.NewReader(bwFile))
	if err != nil {
		log.Errorf("parse bodyweight data: %s", err)
		return bodyweight.NewLog(nil)
	}
	return bwLog
}

func (d *Dataset) loadPhases() []bodyweight.Phase {
	phasesPath := filepath.Join(d.dataDir, PhasesFile)
	phasesFile, err := os.Open(phasesPath)
	if err != nil {
		log.Debugf("phases data not found at %s", phasesPath)
		return nil
	}
	defer func() {
		if closeErr := phasesFile.Close(); closeErr != nil {
			log.Warnf("close phases file: %s", closeErr)
		}
	}()

	phases, err := bodyweight.ParsePhases(csv.NewReader(phasesFile))
	if err != nil {
		log.Errorf("parse phases data: %s", err)
		return nil
	}
	return phases
}

func process(
	rawSets []hevy.Set,
	db *exercisedb.Database,
	bwLog *bodyweight.Log,
) (sets []hevy.Set, unknown []string) {
	unknownTitles := make(map[string]struct{})

	sets = make([]hevy.Set, 0, len(rawSets))
	for _, set := range rawSets {
		if db.IsExcluded(set.ExerciseTitle) {
			continue
		}
		if set.SetType == hevy.SetTypeWarmup {
			continue
		}

		set.MuscleGroup = db.MuscleGroup(set.ExerciseTitle)
		set.MajorGroup = exercisedb.MajorGroup(set.MuscleGroup)
		set.WeightType = db.WeightType(set.ExerciseTitle)
		set.Volume = volume(set, bwLog)

		if set.MuscleGroup == exercisedb.MuscleGroupUnknown {
			unknownTitles[set.ExerciseTitle] = struct{}{}
		}

		sets = append(sets, set)
	}

	unknown = make([]string, 0, len(unknownTitles))
	for title := range unknownTitles {
		unknown = append(unknown, title)
	}
	sort.Strings(unknown)

	return sets, unknown
}

// volume computes the training load of a single set:
//   - standard:      weight x reps
//   - double_weight: weight x 2 x reps (per-dumbbell weights)
//   - assisted:      (bodyweight - assistance) x reps, clamped at 0
func volume(set hevy.Set, bwLog *bodyweight.Log) float64 {
	switch set.WeightType {
	case hevy.WeightTypeDouble:
		return set.WeightKg * 2 * float64(set.Reps)
	case hevy.WeightTypeAssisted:
		effectiveWeight := bwLog.ForDate(set.Day()) - set.WeightKg
		if effectiveWeight < 0 {
			effectiveWeight = 0
		}
		return effectiveWeight * float64(set.Reps)
	default:
		return set.WeightKg * float64(set.Reps)
	}
}

// ListAll returns the processed sets passing the given filters,
// ordered as they appear in the export.
func (d *Dataset) ListAll(ctx context.Context, params hevy.SetParams) ([]hevy.Set, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "dataset.listall")
	defer span.End()
	span.SetAttributes(attribute.Int("year", params.Year))
	span.SetAttributes(attribute.String("routine", params.Routine))
	span.SetAttributes(attribute.String("muscle_group", params.MuscleGroup))

	d.mu.RLock()
	defer d.mu.RUnlock()

	filtered := make([]hevy.Set, 0, len(d.sets))
	for _, set := range d.sets {
		if params.Matches(set) {
			filtered = append(filtered, set)
		}
	}
	return filtered, nil
}

// Routines returns all routine names, ordered by the start of their first
// workout, newest first. Mirrors the split selector of the dashboard:
// the most recently introduced split comes first, even when an older one
// is still in rotation.
func (d *Dataset) Routines(ctx context.Context) ([]string, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "dataset.routines")
	defer span.End()

	d.mu.RLock()
	defer d.mu.RUnlock()

	firstWorkout := make(map[string]time.Time)
	for _, set := range d.sets {
		if first, ok := firstWorkout[set.Routine]; !ok || set.StartTime.Before(first) {
			firstWorkout[set.Routine] = set.StartTime
		}
	}

	routines := make([]string, 0, len(firstWorkout))
	for routine := range firstWorkout {
		routines = append(routines, routine)
	}
	sort.Slice(routines, func(i, j int) bool {
		return firstWorkout[routines[i]].After(firstWorkout[routines[j]])
	})
	return routines, nil
}

// Years returns all years with at least one set, newest first.
func (d *Dataset) Years(ctx context.Context) ([]int, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "dataset.years")
	defer span.End()

	d.mu.RLock()
	defer d.mu.RUnlock()

	yearSet := make(map[int]struct{})
	for _, set := range d.sets {
		yearSet[set.StartTime.Year()] = struct{}{}
	}

	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

// UnknownExercises returns the exercise titles missing from the database.
func (d *Dataset) UnknownExercises(ctx context.Context) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.unknown, nil
}

// BodyweightEntries returns the date-sorted bodyweight history.
func (d *Dataset) BodyweightEntries(ctx context.Context) ([]bodyweight.Entry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.bwLog.Entries(), nil
}

// Phases returns the body-composition phase switches, date-sorted.
func (d *Dataset) Phases(ctx context.Context) ([]bodyweight.Phase, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.phases, nil
}

// Bodyweight returns the bodyweight on a given day.
func (d *Dataset) Bodyweight(date time.Time) float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.bwLog.ForDate(date)
}

// SetsCount returns the number of loaded (processed) sets.
func (d *Dataset) SetsCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.sets)
}

// LoadedAt returns the time of the last successful load.
func (d *Dataset) LoadedAt() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loadedAt
}
