package analysis

import (
	"errors"
	"math"
	"testing"

	"vdot/internal/solver"
)

func TestCalculateVDOT(t *testing.T) {
	tests := []struct {
		name            string
		distanceMeters  float64
		durationSeconds int
		wantVDOT        float64
		tolerance       float64
	}{
		{
			name:            "10K at 40:00",
			distanceMeters:  Distance10K,
			durationSeconds: 2400,
			wantVDOT:        51.9,
			tolerance:       0.2,
		},
		{
			name:            "5K at 19:57 (VDOT ~50)",
			distanceMeters:  Distance5K,
			durationSeconds: 1197,
			wantVDOT:        50.0,
			tolerance:       0.3,
		},
		{
			name:            "Marathon at 3:10:49 (VDOT ~50)",
			distanceMeters:  DistanceMarathon,
			durationSeconds: 11449,
			wantVDOT:        50.0,
			tolerance:       0.3,
		},
		{
			name:            "slow 5K maps to low VDOT",
			distanceMeters:  Distance5K,
			durationSeconds: 2400, // 40:00
			wantVDOT:        31.0,
			tolerance:       1.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateVDOT(tt.distanceMeters, tt.durationSeconds)
			if math.Abs(got-tt.wantVDOT) > tt.tolerance {
				t.Errorf("CalculateVDOT() = %v, want %v (±%v)", got, tt.wantVDOT, tt.tolerance)
			}
		})
	}
}

func TestCalculateVDOT_EdgeCases(t *testing.T) {
	if got := CalculateVDOT(Distance5K, 0); got != 0 {
		t.Errorf("CalculateVDOT with zero duration = %v, want 0", got)
	}
	if got := CalculateVDOT(Distance5K, -100); got != 0 {
		t.Errorf("CalculateVDOT with negative duration = %v, want 0", got)
	}
	if got := CalculateVDOT(0, 1200); got != 0 {
		t.Errorf("CalculateVDOT with zero distance = %v, want 0", got)
	}
}

func TestRaceTime(t *testing.T) {
	tests := []struct {
		name           string
		vdot           float64
		targetDistance float64
		wantSeconds    int
		tolerance      int
	}{
		{
			name:           "VDOT 50 marathon is about 3:10:49",
			vdot:           50.0,
			targetDistance: DistanceMarathon,
			wantSeconds:    11449,
			tolerance:      2,
		},
		{
			name:           "VDOT 50 5K is just under 20 minutes",
			vdot:           50.0,
			targetDistance: Distance5K,
			wantSeconds:    1197,
			tolerance:      5,
		},
		{
			name:           "VDOT 30 5K is over half an hour",
			vdot:           30.0,
			targetDistance: Distance5K,
			wantSeconds:    1841,
			tolerance:      30,
		},
		{
			name:           "VDOT 85 marathon is elite",
			vdot:           85.0,
			targetDistance: DistanceMarathon,
			wantSeconds:    7275,
			tolerance:      90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RaceTime(tt.vdot, tt.targetDistance)
			if err != nil {
				t.Fatalf("RaceTime() error = %v", err)
			}
			if abs(got-tt.wantSeconds) > tt.tolerance {
				t.Errorf("RaceTime() = %v, want %v (±%v)", got, tt.wantSeconds, tt.tolerance)
			}
		})
	}
}

func TestRaceTime_NoRoot(t *testing.T) {
	// A negative fitness score has no race duration inside the bracket.
	_, err := RaceTime(-10, Distance5K)
	if !errors.Is(err, solver.ErrNoRootInBracket) {
		t.Errorf("RaceTime() error = %v, want ErrNoRootInBracket", err)
	}
}

func TestRaceTime_MonotonicInDistance(t *testing.T) {
	distances := []float64{Distance5K, Distance10K, DistanceHalfMara, DistanceMarathon}

	for _, vdot := range []float64{30, 42.5, 50, 67.3, 85} {
		prev := 0
		for _, d := range distances {
			got, err := RaceTime(vdot, d)
			if err != nil {
				t.Fatalf("RaceTime(%v, %v) error = %v", vdot, d, err)
			}
			if got <= prev {
				t.Errorf("RaceTime(%v, %v) = %v, want > %v (times must grow with distance)", vdot, d, got, prev)
			}
			prev = got
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// VDOT computed from a time should predict back a similar time.
	tests := []struct {
		distance float64
		duration int
	}{
		{Distance5K, 1200},        // 20:00
		{Distance10K, 2400},       // 40:00
		{DistanceHalfMara, 5400},  // 1:30:00
		{DistanceMarathon, 11400}, // 3:10:00
	}

	for _, tt := range tests {
		vdot := CalculateVDOT(tt.distance, tt.duration)
		predicted, err := RaceTime(vdot, tt.distance)
		if err != nil {
			t.Fatalf("RaceTime() error = %v", err)
		}
		if abs(predicted-tt.duration) > 1 {
			t.Errorf("round trip for %v m: original %v s, VDOT %.2f, predicted %v s",
				tt.distance, tt.duration, vdot, predicted)
		}
	}
}

func TestTrainingPace(t *testing.T) {
	// VDOT 50 reference paces in seconds per km.
	tests := []struct {
		name      string
		effort    float64
		wantPace  int
		tolerance int
	}{
		{"easy slow", EffortEasySlow, 334, 2},
		{"easy fast", EffortEasyFast, 295, 2},
		{"threshold", EffortThreshold, 255, 2},
		{"interval", EffortInterval, 235, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrainingPace(50.0, tt.effort)
			if abs(got-tt.wantPace) > tt.tolerance {
				t.Errorf("TrainingPace(50, %v) = %v, want %v (±%v)", tt.effort, got, tt.wantPace, tt.tolerance)
			}
		})
	}
}

func TestTrainingPace_OrderedByEffort(t *testing.T) {
	efforts := []float64{EffortEasySlow, EffortEasyFast, EffortThreshold, EffortInterval}

	for _, vdot := range []float64{30, 50, 70, 85} {
		prev := math.MaxInt
		for _, e := range efforts {
			got := TrainingPace(vdot, e)
			if got >= prev {
				t.Errorf("TrainingPace(%v, %v) = %v, want < %v (higher effort must be faster)", vdot, e, got, prev)
			}
			prev = got
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
