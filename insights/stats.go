package insights

import (
	"math"
	"sort"
)

// madScale converts a median absolute deviation into a consistent
// estimator of the standard deviation for normal data.
const madScale = 1.4826

func median(xs []float64) float64 {
	a := append([]float64(nil), xs...)
	sort.Float64s(a)
	m := len(a) / 2
	if len(a)%2 == 1 {
		return a[m]
	}
	return (a[m-1] + a[m]) / 2
}

// mad returns the median absolute deviation, substituting 1 when the
// deviation is zero so single-element or constant distributions never
// divide by zero.
func mad(xs []float64) float64 {
	m := median(xs)
	dev := make([]float64, len(xs))
	for i, x := range xs {
		dev[i] = math.Abs(x - m)
	}
	if d := median(dev); d != 0 {
		return d
	}
	return 1
}

// robustZ scores x against the distribution xs using the scaled-MAD
// estimator.
func robustZ(x float64, xs []float64) float64 {
	return math.Abs(x-median(xs)) / (madScale * mad(xs))
}
