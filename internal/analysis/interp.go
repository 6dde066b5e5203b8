package analysis

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotMonotonic is returned by Interp when xs is not strictly increasing
var ErrNotMonotonic = errors.New("interpolation points are not strictly increasing")

// Interp evaluates the piecewise-linear curve through (xs[i], ys[i]) at x.
// xs must be strictly increasing. Outside the curve the nearest end value is
// returned.
func Interp(x float64, xs, ys []float64) (float64, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return 0, fmt.Errorf("interp: %d x values for %d y values", len(xs), len(ys))
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return 0, fmt.Errorf("%w: x[%d]=%v, x[%d]=%v", ErrNotMonotonic, i-1, xs[i-1], i, xs[i])
		}
	}
	if math.IsNaN(x) {
		return 0, fmt.Errorf("interp: x is NaN")
	}

	last := len(xs) - 1
	if x <= xs[0] {
		return ys[0], nil
	}
	if x >= xs[last] {
		return ys[last], nil
	}

	// Binary search for the bracketing points
	low, high := 0, last
	for high-low > 1 {
		mid := (low + high) / 2
		if xs[mid] <= x {
			low = mid
		} else {
			high = mid
		}
	}

	fraction := (x - xs[low]) / (xs[high] - xs[low])
	return ys[low] + fraction*(ys[high]-ys[low]), nil
}
