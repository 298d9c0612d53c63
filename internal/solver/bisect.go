// Package solver provides a bounded bisection root finder for the
// physiological model equations.
package solver

import (
	"errors"
	"math"
)

// ErrNoRootInBracket is returned when the function does not change sign
// between the bracket endpoints.
var ErrNoRootInBracket = errors.New("no root in bracket")

const (
	// tolerance is the interval width at which bisection stops.
	// Comfortably below the one-second rounding done at the storage
	// boundary, which works in minutes.
	tolerance = 1e-9

	// maxIterations bounds the search so it always terminates.
	maxIterations = 256
)

// Bisect finds the zero crossing of f within [lo, hi].
// f must be continuous and the endpoints must bracket a sign change,
// otherwise ErrNoRootInBracket is returned.
func Bisect(f func(float64) float64, lo, hi float64) (float64, error) {
	if lo > hi {
		lo, hi = hi, lo
	}

	flo := f(lo)
	fhi := f(hi)

	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if math.Signbit(flo) == math.Signbit(fhi) {
		return 0, ErrNoRootInBracket
	}

	for i := 0; i < maxIterations && hi-lo > tolerance; i++ {
		mid := lo + (hi-lo)/2
		fmid := f(mid)

		if fmid == 0 {
			return mid, nil
		}

		if math.Signbit(fmid) == math.Signbit(flo) {
			lo = mid
			flo = fmid
		} else {
			hi = mid
		}
	}

	return lo + (hi-lo)/2, nil
}
