package solver

import (
	"errors"
	"math"
	"testing"
)

func TestBisect(t *testing.T) {
	tests := []struct {
		name     string
		f        func(float64) float64
		lo, hi   float64
		wantRoot float64
	}{
		{
			name:     "linear",
			f:        func(x float64) float64 { return x - 3 },
			lo:       0,
			hi:       10,
			wantRoot: 3,
		},
		{
			name:     "quadratic",
			f:        func(x float64) float64 { return x*x - 2 },
			lo:       0,
			hi:       2,
			wantRoot: math.Sqrt2,
		},
		{
			name:     "decreasing",
			f:        func(x float64) float64 { return 5 - x },
			lo:       1,
			hi:       100,
			wantRoot: 5,
		},
		{
			name:     "exponential",
			f:        func(x float64) float64 { return math.Exp(x) - 10 },
			lo:       0,
			hi:       5,
			wantRoot: math.Log(10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bisect(tt.f, tt.lo, tt.hi)
			if err != nil {
				t.Fatalf("Bisect() error = %v", err)
			}
			if math.Abs(got-tt.wantRoot) > 1e-6 {
				t.Errorf("Bisect() = %v, want %v", got, tt.wantRoot)
			}
		})
	}
}

func TestBisect_SwappedBracket(t *testing.T) {
	got, err := Bisect(func(x float64) float64 { return x - 3 }, 10, 0)
	if err != nil {
		t.Fatalf("Bisect() error = %v", err)
	}
	if math.Abs(got-3) > 1e-6 {
		t.Errorf("Bisect() = %v, want 3", got)
	}
}

func TestBisect_RootAtEndpoint(t *testing.T) {
	got, err := Bisect(func(x float64) float64 { return x }, 0, 1)
	if err != nil {
		t.Fatalf("Bisect() error = %v", err)
	}
	if got != 0 {
		t.Errorf("Bisect() = %v, want 0", got)
	}
}

func TestBisect_NoRootInBracket(t *testing.T) {
	_, err := Bisect(func(x float64) float64 { return x*x + 1 }, -5, 5)
	if !errors.Is(err, ErrNoRootInBracket) {
		t.Errorf("Bisect() error = %v, want ErrNoRootInBracket", err)
	}
}

func TestBisect_Deterministic(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) - x }

	first, err := Bisect(f, 0, 1)
	if err != nil {
		t.Fatalf("Bisect() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := Bisect(f, 0, 1)
		if err != nil {
			t.Fatalf("Bisect() error = %v", err)
		}
		if got != first {
			t.Errorf("Bisect() = %v on repeat call, want %v", got, first)
		}
	}
}
