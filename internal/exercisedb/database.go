package exercisedb

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/2beens/hevystats/internal/hevy"

	"github.com/xeipuuv/gojsonschema"
)

// MuscleGroupUnknown marks exercises missing from the database,
// so the dashboard can nag about updating exercise_database.json.
const MuscleGroupUnknown = "unknown"

//go:embed schema.json
var schemaJson string

var ErrInvalidDatabase = errors.New("invalid exercise database")

// groupMapping maps a specific muscle group to its major group.
// Groups without an entry (chest, shoulders, core, ...) are their own major group.
var groupMapping = map[string]string{
	"biceps":     "arms",
	"triceps":    "arms",
	"forearms":   "arms",
	"calves":     "legs",
	"quads":      "legs",
	"hamstrings": "legs",
	"glutes":     "legs",
	"upper_back": "back",
	"lats":       "back",
	"traps":      "back",
}

// MajorGroup returns the major muscle group for a specific one.
func MajorGroup(muscleGroup string) string {
	if major, ok := groupMapping[muscleGroup]; ok {
		return major
	}
	return muscleGroup
}

// MajorGroups returns the fixed ordering of major groups used by the charts.
func MajorGroups() []string {
	return []string{"arms", "legs", "back", "chest", "shoulders", "core"}
}

// ExerciseInfo is the per-exercise metadata of the database file.
type ExerciseInfo struct {
	MuscleGroup string `json:"muscle_group"`
	WeightType  string `json:"weight_type,omitempty"`
}

// Database maps exercise titles of the Hevy export to their muscle group
// and weight type, plus the set of exercises excluded from all stats.
type Database struct {
	Exercises map[string]ExerciseInfo
	Excluded  map[string]struct{}
}

type databaseFile struct {
	Exercises map[string]ExerciseInfo `json:"exercises"`
	Excluded  []string                `json:"excluded_exercises"`
}

// Empty returns a usable database with no entries:
// every exercise is unknown, nothing is excluded.
func Empty() *Database {
	return &Database{
		Exercises: map[string]ExerciseInfo{},
		Excluded:  map[string]struct{}{},
	}
}

// Load reads and validates an exercise database JSON.
func Load(r io.Reader) (*Database, error) {
	dbBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read exercise database: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJson),
		gojsonschema.NewBytesLoader(dbBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("validate exercise database: %w", err)
	}
	if !result.Valid() {
		validationErr := ErrInvalidDatabase
		for _, resErr := range result.Errors() {
			validationErr = fmt.Errorf("%w: %s", validationErr, resErr)
		}
		return nil, validationErr
	}

	var dbFile databaseFile
	if err := json.Unmarshal(dbBytes, &dbFile); err != nil {
		return nil, fmt.Errorf("unmarshal exercise database: %w", err)
	}

	db := Empty()
	db.Exercises = dbFile.Exercises
	for _, excluded := range dbFile.Excluded {
		db.Excluded[excluded] = struct{}{}
	}
	return db, nil
}

// IsExcluded reports whether the exercise is excluded from all stats.
func (db *Database) IsExcluded(exerciseTitle string) bool {
	_, excluded := db.Excluded[exerciseTitle]
	return excluded
}

// MuscleGroup returns the muscle group of an exercise, or unknown.
func (db *Database) MuscleGroup(exerciseTitle string) string {
	info, ok := db.Exercises[exerciseTitle]
	if !ok || info.MuscleGroup == "" {
		return MuscleGroupUnknown
	}
	return info.MuscleGroup
}

// WeightType returns the volume calculation mode of an exercise.
func (db *Database) WeightType(exerciseTitle string) hevy.WeightType {
	info, ok := db.Exercises[exerciseTitle]
	if !ok {
		return hevy.WeightTypeStandard
	}
	switch hevy.WeightType(info.WeightType) {
	case hevy.WeightTypeDouble:
		return hevy.WeightTypeDouble
	case hevy.WeightTypeAssisted:
		return hevy.WeightTypeAssisted
	default:
		return hevy.WeightTypeStandard
	}
}
