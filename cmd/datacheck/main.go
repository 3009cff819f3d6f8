package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/2beens/hevystats/internal/dataset"
	"github.com/2beens/hevystats/internal/hevy"
	"github.com/2beens/hevystats/internal/logging"

	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
)

// datacheck loads the data dir the same way the service does and prints
// a verification summary, spot-checking the volume formulas on the way.
// Exits non-zero on load failure or a formula mismatch.
func main() {
	dataDir := flag.String("data", "./data", "path of the workout data dir")
	logLevel := flag.String("loglevel", "warn", "log level [trace|debug|info|warn|error]")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    *logLevel,
	})

	ctx := context.Background()
	ds := dataset.New(*dataDir)
	if err := ds.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "load data dir %s: %s\n", *dataDir, err)
		os.Exit(1)
	}

	sets, err := ds.ListAll(ctx, hevy.SetParams{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "list sets: %s\n", err)
		os.Exit(1)
	}
	unknown, err := ds.UnknownExercises(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list unknown exercises: %s\n", err)
		os.Exit(1)
	}

	var totalVolume float64
	var firstDay, lastDay time.Time
	for _, set := range sets {
		totalVolume += set.Volume
		if firstDay.IsZero() || set.StartTime.Before(firstDay) {
			firstDay = set.StartTime
		}
		if set.StartTime.After(lastDay) {
			lastDay = set.StartTime
		}
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"check", "value"})
	tw.AppendRows([]table.Row{
		{"data dir", *dataDir},
		{"processed sets", len(sets)},
		{"first workout", formatDay(firstDay)},
		{"last workout", formatDay(lastDay)},
		{"total volume (kg)", fmt.Sprintf("%.1f", totalVolume)},
		{"unknown exercises", len(unknown)},
	})
	tw.Render()

	if len(unknown) > 0 {
		fmt.Println("\nexercises missing from the exercise database:")
		for _, title := range unknown {
			fmt.Printf("  - %s\n", title)
		}
	}

	failed := false
	if !verifyVolumeFormula(ds, sets, hevy.WeightTypeDouble) {
		failed = true
	}
	if !verifyVolumeFormula(ds, sets, hevy.WeightTypeAssisted) {
		failed = true
	}

	if failed {
		fmt.Fprintln(os.Stderr, "\ndata check FAILED")
		os.Exit(1)
	}
	fmt.Println("\ndata check OK")
}

// verifyVolumeFormula recomputes the volume of the first set of the
// given weight type and compares it against the processed value.
func verifyVolumeFormula(ds *dataset.Dataset, sets []hevy.Set, weightType hevy.WeightType) bool {
	for _, set := range sets {
		if set.WeightType != weightType {
			continue
		}

		var expected float64
		switch weightType {
		case hevy.WeightTypeDouble:
			expected = set.WeightKg * 2 * float64(set.Reps)
		case hevy.WeightTypeAssisted:
			expected = (ds.Bodyweight(set.Day()) - set.WeightKg) * float64(set.Reps)
			if expected < 0 {
				expected = 0
			}
		default:
			expected = set.WeightKg * float64(set.Reps)
		}

		if math.Abs(expected-set.Volume) > 1e-9 {
			fmt.Fprintf(os.Stderr,
				"volume mismatch for %s [%s] on %s: expected %.2f, got %.2f\n",
				set.ExerciseTitle, weightType, formatDay(set.StartTime), expected, set.Volume,
			)
			return false
		}

		fmt.Printf("spot check [%s] %s: volume %.1f ok\n", weightType, set.ExerciseTitle, set.Volume)
		return true
	}

	log.Debugf("no sets with weight type %s found, nothing to spot check", weightType)
	return true
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
