package bodyweight

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"
)

// DefaultKilos is assumed when no bodyweight log is available,
// it only affects the volume of assisted exercises.
const DefaultKilos = 70.0

// DateLayout is the date format of the bodyweight and phases CSVs.
const DateLayout = "2006-01-02"

// Entry is a single bodyweight measurement.
type Entry struct {
	Date     time.Time `json:"date"`
	WeightKg float64   `json:"weightKg"`
}

// Log is a date-sorted bodyweight history.
type Log struct {
	entries []Entry
}

// NewLog builds a log from entries, sorting them by date.
func NewLog(entries []Entry) *Log {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return &Log{entries: sorted}
}

// ParseLog reads a bodyweight CSV: date,weight_kg with a header row.
func ParseLog(r *csv.Reader) (*Log, error) {
	records, err := readDatedRecords(r, "weight_kg")
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		weight, err := strconv.ParseFloat(rec.value, 64)
		if err != nil {
			return nil, fmt.Errorf("parse weight [%s]: %w", rec.value, err)
		}
		entries = append(entries, Entry{Date: rec.date, WeightKg: weight})
	}

	return NewLog(entries), nil
}

// Entries returns the full, date-sorted history.
func (l *Log) Entries() []Entry {
	if l == nil {
		return nil
	}
	return l.entries
}

// ForDate returns the bodyweight on a given day: the most recent
// measurement at or before it. Dates preceding the whole log get the
// earliest measurement, an empty log gets DefaultKilos.
func (l *Log) ForDate(date time.Time) float64 {
	if l == nil || len(l.entries) == 0 {
		return DefaultKilos
	}

	// first entry AFTER the date
	ix := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].Date.After(date)
	})
	if ix == 0 {
		return l.entries[0].WeightKg
	}
	return l.entries[ix-1].WeightKg
}

// Phase is a body-composition phase switch: from its date on, the given
// phase (bulk / cut / maintenance) applies, until the next entry.
type Phase struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

// ParsePhases reads a phases CSV: date,phase with a header row.
func ParsePhases(r *csv.Reader) ([]Phase, error) {
	records, err := readDatedRecords(r, "phase")
	if err != nil {
		return nil, err
	}

	phases := make([]Phase, 0, len(records))
	for _, rec := range records {
		phases = append(phases, Phase{Date: rec.date, Name: rec.value})
	}
	sort.Slice(phases, func(i, j int) bool {
		return phases[i].Date.Before(phases[j].Date)
	})
	return phases, nil
}

type datedRecord struct {
	date  time.Time
	value string
}

// readDatedRecords reads a two-column CSV of date + named value column.
func readDatedRecords(r *csv.Reader, valueColumn string) ([]datedRecord, error) {
	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	dateIx, valueIx := -1, -1
	for i, name := range header {
		switch name {
		case "date":
			dateIx = i
		case valueColumn:
			valueIx = i
		}
	}
	if dateIx < 0 || valueIx < 0 {
		return nil, fmt.Errorf("header misses column [date] or [%s]", valueColumn)
	}

	var records []datedRecord
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		date, err := time.Parse(DateLayout, record[dateIx])
		if err != nil {
			return nil, fmt.Errorf("parse date [%s]: %w", record[dateIx], err)
		}
		records = append(records, datedRecord{date: date, value: record[valueIx]})
	}

	return records, nil
}
