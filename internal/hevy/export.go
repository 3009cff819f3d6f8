package hevy

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// TimeLayout is the timestamp format used by the Hevy export,
// e.g. "10 Oct 2023, 12:00".
const TimeLayout = "2 Jan 2006, 15:04"

// the columns of the Hevy workout export we care about
const (
	colTitle = "title"
	colStart = "start_time"
	colEnd   = "end_time"
	colExTit = "exercise_title"
	colSSID  = "superset_id"
	colSetIx = "set_index"
	colSetTp = "set_type"
	colKilos = "weight_kg"
	colReps  = "reps"
	colDist  = "distance_km"
	colDur   = "duration_seconds"
	colRPE   = "rpe"
)

// ParseExport reads a Hevy workout export CSV and returns its set rows.
// Column order is taken from the header, so exports with extra or
// reordered columns still parse. Empty numeric cells become zero values.
func ParseExport(r *csv.Reader) ([]Set, error) {
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty export file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{colTitle, colStart, colExTit} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("export header misses column %q", required)
		}
	}

	field := func(record []string, name string) string {
		ix, ok := col[name]
		if !ok || ix >= len(record) {
			return ""
		}
		return record[ix]
	}

	var sets []Set
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record at line %d: %w", line+1, err)
		}
		line++

		startTime, err := time.Parse(TimeLayout, field(record, colStart))
		if err != nil {
			return nil, fmt.Errorf("parse start time at line %d: %w", line, err)
		}

		// a missing end time only costs us the duration KPI
		var endTime time.Time
		if endVal := field(record, colEnd); endVal != "" {
			endTime, err = time.Parse(TimeLayout, endVal)
			if err != nil {
				log.Warnf("line %d: unparsable end time [%s], duration will be 0", line, endVal)
				endTime = time.Time{}
			}
		}

		sets = append(sets, Set{
			Routine:       field(record, colTitle),
			StartTime:     startTime,
			EndTime:       endTime,
			ExerciseTitle: field(record, colExTit),
			SupersetID:    field(record, colSSID),
			SetIndex:      parseIntField(field(record, colSetIx)),
			SetType:       SetType(field(record, colSetTp)),
			WeightKg:      parseFloatField(field(record, colKilos)),
			Reps:          parseIntField(field(record, colReps)),
			DistanceKm:    parseFloatField(field(record, colDist)),
			DurationSec:   parseIntField(field(record, colDur)),
			RPE:           parseFloatField(field(record, colRPE)),
		})
	}

	return sets, nil
}

func parseIntField(val string) int {
	if val == "" {
		return 0
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		// Hevy sometimes exports integers as floats
		f, ferr := strconv.ParseFloat(val, 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return i
}

func parseFloatField(val string) float64 {
	if val == "" {
		return 0
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return f
}
