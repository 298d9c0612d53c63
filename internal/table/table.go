// Package table builds the precomputed VDOT equivalence table and
// serializes it into the embeddable blob shipped with the application.
package table

import (
	"fmt"
	"math"

	"vdot/internal/analysis"
)

// Grid bounds: VDOT values 30.0 through 85.0 stored as integer keys
// (VDOT * 10), one row per tenth.
const (
	MinIndex = 300
	MaxIndex = 850

	// RowCount is the number of rows in a complete table.
	RowCount = MaxIndex - MinIndex + 1
)

// Row is one record of the equivalence table. Race times are in whole
// seconds, paces in whole seconds per kilometer.
type Row struct {
	V int // grid index, VDOT * 10

	FiveK    int
	TenK     int
	Half     int
	Marathon int

	EasySlow     int
	EasyFast     int
	MarathonPace int
	Threshold    int
	Interval     int
	Repetition   int
}

// VDOT returns the fitness score the row is keyed by.
func (r Row) VDOT() float64 {
	return float64(r.V) / 10
}

// GridIndex canonicalizes a fitness score to its integer table key.
func GridIndex(vdot float64) int {
	return int(math.Round(vdot * 10))
}

// InRange reports whether a grid index falls inside the supported table.
func InRange(index int) bool {
	return index >= MinIndex && index <= MaxIndex
}

// ComputeRow derives the full equivalence row for an arbitrary fitness
// score, grid-aligned or not. This is the same computation the generator
// runs per grid point, so live results agree with table lookups at
// coincident scores.
func ComputeRow(vdot float64) (Row, error) {
	row := Row{V: GridIndex(vdot)}

	var err error
	if row.FiveK, err = analysis.RaceTime(vdot, analysis.Distance5K); err != nil {
		return Row{}, err
	}
	if row.TenK, err = analysis.RaceTime(vdot, analysis.Distance10K); err != nil {
		return Row{}, err
	}
	if row.Half, err = analysis.RaceTime(vdot, analysis.DistanceHalfMara); err != nil {
		return Row{}, err
	}
	if row.Marathon, err = analysis.RaceTime(vdot, analysis.DistanceMarathon); err != nil {
		return Row{}, err
	}

	row.EasySlow = analysis.TrainingPace(vdot, analysis.EffortEasySlow)
	row.EasyFast = analysis.TrainingPace(vdot, analysis.EffortEasyFast)
	row.Threshold = analysis.TrainingPace(vdot, analysis.EffortThreshold)
	row.Interval = analysis.TrainingPace(vdot, analysis.EffortInterval)

	// Marathon pace comes from the solved marathon time, not from an
	// effort fraction.
	row.MarathonPace = int(math.Round(float64(row.Marathon) / 42.195))

	row.Repetition = row.Interval - repetitionOffset(vdot)

	return row, nil
}

// repetitionOffset is the zone-dependent correction subtracted from the
// interval pace. The step at 50.0 is intentional and matches the
// reference tables.
func repetitionOffset(vdot float64) int {
	if vdot < 50.0 {
		return 20
	}
	return 15
}

// Generate computes every row of the supported grid. It fails outright
// if any grid point cannot be solved: a partial table is worse than no
// table, and by construction of the grid bounds every point resolves.
func Generate() ([]Row, error) {
	rows := make([]Row, 0, RowCount)

	for v := MinIndex; v <= MaxIndex; v++ {
		row, err := ComputeRow(float64(v) / 10)
		if err != nil {
			return nil, fmt.Errorf("grid index %d: %w", v, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
