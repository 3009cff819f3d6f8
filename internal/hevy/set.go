package hevy

import "time"

// SetType comes straight from the Hevy export. Warmup sets are
// dropped during processing and never reach the stats.
type SetType string

const (
	SetTypeNormal  SetType = "normal"
	SetTypeWarmup  SetType = "warmup"
	SetTypeFailure SetType = "failure"
	SetTypeDropset SetType = "dropset"
)

// WeightType describes how the logged weight translates into volume:
//   - double_weight: the logged kilos are per dumbbell, so volume doubles
//   - assisted: the machine assistance is subtracted from bodyweight
//   - anything else: plain weight x reps
type WeightType string

const (
	WeightTypeStandard WeightType = "standard"
	WeightTypeDouble   WeightType = "double_weight"
	WeightTypeAssisted WeightType = "assisted"
)

// Set is a single set row of the Hevy workout export,
// enriched with the exercise database metadata and the computed volume.
type Set struct {
	Routine       string    `json:"routine"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	ExerciseTitle string    `json:"exerciseTitle"`
	SupersetID    string    `json:"supersetId,omitempty"`
	SetIndex      int       `json:"setIndex"`
	SetType       SetType   `json:"setType"`
	WeightKg      float64   `json:"weightKg"`
	Reps          int       `json:"reps"`
	DistanceKm    float64   `json:"distanceKm,omitempty"`
	DurationSec   int       `json:"durationSeconds,omitempty"`
	RPE           float64   `json:"rpe,omitempty"`

	// enrichment, set by the dataset processing
	MuscleGroup string     `json:"muscleGroup"`
	MajorGroup  string     `json:"majorGroup"`
	WeightType  WeightType `json:"weightType"`
	Volume      float64    `json:"volume"`
}

// Day returns the workout day of the set, truncated to midnight UTC.
func (s Set) Day() time.Time {
	return s.StartTime.Truncate(24 * time.Hour)
}

// SetParams filters the processed sets. Zero values mean "no filter".
type SetParams struct {
	Year          int
	Routine       string
	MuscleGroup   string
	MajorGroup    string
	ExerciseTitle string
}

// Matches reports whether the set passes all non-zero filters.
func (p SetParams) Matches(s Set) bool {
	if p.Year != 0 && s.StartTime.Year() != p.Year {
		return false
	}
	if p.Routine != "" && s.Routine != p.Routine {
		return false
	}
	if p.MuscleGroup != "" && s.MuscleGroup != p.MuscleGroup {
		return false
	}
	if p.MajorGroup != "" && s.MajorGroup != p.MajorGroup {
		return false
	}
	if p.ExerciseTitle != "" && s.ExerciseTitle != p.ExerciseTitle {
		return false
	}
	return true
}
