package exercisedb_test

import (
	"strings"
	"testing"

	"github.com/2beens/hevystats/internal/exercisedb"
	"github.com/2beens/hevystats/internal/hevy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDatabaseJson = `{
	"exercises": {
		"Bench Press (Barbell)": {"muscle_group": "chest"},
		"Bench Press (Dumbbell)": {"muscle_group": "chest", "weight_type": "double_weight"},
		"Chin Up (Assisted)": {"muscle_group": "lats", "weight_type": "assisted"},
		"Bicep Curl (Dumbbell)": {"muscle_group": "biceps", "weight_type": "double_weight"}
	},
	"excluded_exercises": ["Running", "Plank"]
}`

func TestLoad(t *testing.T) {
	db, err := exercisedb.Load(strings.NewReader(testDatabaseJson))
	require.NoError(t, err)

	assert.Equal(t, "chest", db.MuscleGroup("Bench Press (Barbell)"))
	assert.Equal(t, "lats", db.MuscleGroup("Chin Up (Assisted)"))
	assert.Equal(t, exercisedb.MuscleGroupUnknown, db.MuscleGroup("Mystery Machine"))

	assert.Equal(t, hevy.WeightTypeStandard, db.WeightType("Bench Press (Barbell)"))
	assert.Equal(t, hevy.WeightTypeDouble, db.WeightType("Bench Press (Dumbbell)"))
	assert.Equal(t, hevy.WeightTypeAssisted, db.WeightType("Chin Up (Assisted)"))
	assert.Equal(t, hevy.WeightTypeStandard, db.WeightType("Mystery Machine"))

	assert.True(t, db.IsExcluded("Running"))
	assert.True(t, db.IsExcluded("Plank"))
	assert.False(t, db.IsExcluded("Bench Press (Barbell)"))
}

func TestLoad_Invalid(t *testing.T) {
	// missing required "exercises" key
	_, err := exercisedb.Load(strings.NewReader(`{"excluded_exercises": []}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, exercisedb.ErrInvalidDatabase)

	// muscle_group missing for an exercise
	_, err = exercisedb.Load(strings.NewReader(`{"exercises": {"Squat": {"weight_type": "standard"}}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, exercisedb.ErrInvalidDatabase)

	// not even json
	_, err = exercisedb.Load(strings.NewReader(`exercises: {}`))
	require.Error(t, err)
}

func TestMajorGroup(t *testing.T) {
	assert.Equal(t, "arms", exercisedb.MajorGroup("biceps"))
	assert.Equal(t, "arms", exercisedb.MajorGroup("triceps"))
	assert.Equal(t, "legs", exercisedb.MajorGroup("quads"))
	assert.Equal(t, "back", exercisedb.MajorGroup("lats"))
	assert.Equal(t, "chest", exercisedb.MajorGroup("chest"))
	assert.Equal(t, "shoulders", exercisedb.MajorGroup("shoulders"))
	assert.Equal(t, exercisedb.MuscleGroupUnknown, exercisedb.MajorGroup(exercisedb.MuscleGroupUnknown))
}
