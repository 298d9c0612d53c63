// Package analysis implements the physiological model behind the VDOT
// methodology: the relation between running velocity, duration, and
// aerobic capacity, and the relation between aerobic capacity and
// sustainable training paces.
//
// All model math works in minutes and meters. Rounding to whole seconds
// happens only at the storage/display boundary, never inside the model.
package analysis

import (
	"math"

	"vdot/internal/solver"
)

// Standard race distances in meters
const (
	Distance5K       = 5000.0
	Distance10K      = 10000.0
	DistanceHalfMara = 21097.5
	DistanceMarathon = 42195.0
)

// Effort fractions of maximal aerobic capacity defining the training
// intensity zones
const (
	EffortEasySlow  = 0.6304
	EffortEasyFast  = 0.7346
	EffortThreshold = 0.8799
	EffortInterval  = 0.9743
)

// Race duration bracket in minutes for the residual inversion. Wide
// enough that every VDOT in [30, 85] brackets a sign change at every
// standard distance.
const (
	minRaceMinutes = 1.0
	maxRaceMinutes = 600.0
)

// RaceTimeResidual returns the deviation of the VDOT implied by running
// distanceMeters in x minutes from the target vdot. A root in x is the
// race duration consistent with the given VDOT and distance.
func RaceTimeResidual(x, vdot, distanceMeters float64) float64 {
	vo2 := -4.6 + 0.182258*distanceMeters/x + 0.000104*distanceMeters*distanceMeters/(x*x)
	pct := 0.8 + 0.1894393*math.Exp(-0.012778*x) + 0.2989558*math.Exp(-0.1932605*x)
	return vo2/pct - vdot
}

// EffortVelocity returns the velocity in meters per minute sustainable
// at the given effort fraction for the given VDOT. Closed form, no
// inversion needed.
func EffortVelocity(vdot, effort float64) float64 {
	return (-0.182258 + math.Sqrt(0.033218-0.000416*(-4.6-vdot*effort))) / 0.000208
}

// CalculateVDOT derives VDOT from a race result by direct evaluation.
// distanceMeters: the race distance in meters
// durationSeconds: the finish time in seconds
func CalculateVDOT(distanceMeters float64, durationSeconds int) float64 {
	if durationSeconds <= 0 || distanceMeters <= 0 {
		return 0
	}

	t := float64(durationSeconds) / 60
	v := distanceMeters / t

	vo2 := -4.6 + 0.182258*v + 0.000104*v*v
	pct := 0.8 + 0.1894393*math.Exp(-0.012778*t) + 0.2989558*math.Exp(-0.1932605*t)
	return vo2 / pct
}

// RaceTime predicts the race time in whole seconds for a target distance
// given a VDOT, by inverting the residual over the standard bracket.
// Returns solver.ErrNoRootInBracket for VDOT values outside the
// physiologically plausible range.
func RaceTime(vdot, distanceMeters float64) (int, error) {
	root, err := solver.Bisect(func(x float64) float64 {
		return RaceTimeResidual(x, vdot, distanceMeters)
	}, minRaceMinutes, maxRaceMinutes)
	if err != nil {
		return 0, err
	}
	return int(math.Round(root * 60)), nil
}

// TrainingPace returns the pace in whole seconds per kilometer
// sustainable at the given effort fraction for the given VDOT.
func TrainingPace(vdot, effort float64) int {
	v := EffortVelocity(vdot, effort)
	return int(math.Round(1000 / v * 60))
}
