package interpolate

// Linspace returns n evenly spaced values from lo to hi, inclusive. The final
// value is exactly hi. Linspace returns an empty slice for n = 0 and {lo} for
// n = 1.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	} else if n == 1 {
		return []float64{lo}
	}

	xs := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + dx*float64(i)
	}
	xs[n-1] = hi

	return xs
}

// ClampedKnots returns a clamped, uniform knot vector for numCtrl control
// points: 0 and the final knot are each repeated degree + 1 times, with the
// interior knots at consecutive integers. For example, degree 3 and 6 control
// points gives [0 0 0 0 1 2 3 3 3 3].
//
// numCtrl must be at least degree + 1.
func ClampedKnots(degree, numCtrl int) []float64 {
	if degree < 0 {
		panic("degree must be non-negative.")
	} else if numCtrl < degree+1 {
		panic("numCtrl must be at least degree + 1.")
	}

	knots := make([]float64, numCtrl+degree+1)
	interior := numCtrl - degree - 1
	for i := range knots {
		switch {
		case i <= degree:
			knots[i] = 0
		case i < degree+1+interior:
			knots[i] = float64(i - degree)
		default:
			knots[i] = float64(interior + 1)
		}
	}

	return knots
}
