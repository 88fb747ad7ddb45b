package interpolate

import (
	"fmt"
)

// BSpline evaluates the B-spline basis functions of a knot vector and blends
// a set of control points with them.
//
// A BSpline is immutable after NewBSpline returns, so it is safe to use from
// multiple goroutines.
type BSpline struct {
	degree int
	knots  []float64
	ts     []float64
	ctrl   [][]float64
	dim    int
}

// NewBSpline creates a B-spline of the given degree over knots which will be
// sampled at numSamples evenly spaced parameter values running from the first
// knot to the last knot, inclusive.
//
// len(ctrl) must be len(knots) - (degree + 1) and every control point must
// have the same number of coordinates. knots must be non-decreasing; this is
// not checked. knots and ctrl are copied.
func NewBSpline(
	degree int, knots []float64, numSamples int, ctrl [][]float64,
) (*BSpline, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: degree is %d", ErrInvalidConfig, degree)
	} else if numSamples < 0 {
		return nil, fmt.Errorf(
			"%w: sample count is %d", ErrInvalidConfig, numSamples,
		)
	} else if len(knots) < degree+2 {
		return nil, fmt.Errorf(
			"%w: degree %d needs at least %d knots, but %d were given",
			ErrInvalidConfig, degree, degree+2, len(knots),
		)
	}

	if want := len(knots) - (degree + 1); len(ctrl) != want {
		return nil, &ControlPointCountError{
			Degree: degree, Knots: len(knots), Got: len(ctrl), Want: want,
		}
	}

	dim := len(ctrl[0])
	if dim == 0 {
		return nil, fmt.Errorf(
			"%w: control points have no coordinates", ErrInvalidConfig,
		)
	}
	for i := range ctrl {
		if len(ctrl[i]) != dim {
			return nil, fmt.Errorf(
				"%w: control point %d has %d coordinates, but control "+
					"point 0 has %d", ErrInvalidConfig, i, len(ctrl[i]), dim,
			)
		}
	}

	sp := &BSpline{degree: degree, dim: dim}
	sp.knots = append([]float64(nil), knots...)
	sp.ctrl = make([][]float64, len(ctrl))
	for i := range ctrl {
		sp.ctrl[i] = append([]float64(nil), ctrl[i]...)
	}
	sp.ts = Linspace(sp.knots[0], sp.knots[len(sp.knots)-1], numSamples)

	return sp, nil
}

// Degree returns the degree of the spline.
func (sp *BSpline) Degree() int { return sp.degree }

// Dim returns the number of coordinates in each control point.
func (sp *BSpline) Dim() int { return sp.dim }

// BasisCount returns the number of basis functions. This is always the same
// as the number of control points.
func (sp *BSpline) BasisCount() int { return len(sp.knots) - sp.degree - 1 }

// Knots returns a copy of the knot vector.
func (sp *BSpline) Knots() []float64 {
	return append([]float64(nil), sp.knots...)
}

// Samples returns a copy of the parameter values that Bases and Interpolate
// are evaluated at.
func (sp *BSpline) Samples() []float64 {
	return append([]float64(nil), sp.ts...)
}

// ControlPoints returns a copy of the control points.
func (sp *BSpline) ControlPoints() [][]float64 {
	out := make([][]float64, len(sp.ctrl))
	for i := range sp.ctrl {
		out[i] = append([]float64(nil), sp.ctrl[i]...)
	}
	return out
}

// Basis returns the value of the i-th basis function of degree p at t.
//
// i must be in the range [0, BasisCount() - 1] and p must be in the range
// [0, Degree()]. Basis panics otherwise.
func (sp *BSpline) Basis(t float64, p, i int) float64 {
	if i < 0 || i > sp.lastBasis() {
		panic(fmt.Sprintf(
			"Basis index %d given to BSpline.Basis() out of range [0, %d].",
			i, sp.lastBasis(),
		))
	} else if p < 0 || p > sp.degree {
		panic(fmt.Sprintf(
			"Degree %d given to BSpline.Basis() out of range [0, %d].",
			p, sp.degree,
		))
	}

	return sp.coxDeBoor(t, p, i)
}

// lastBasis is the index of the final basis function.
func (sp *BSpline) lastBasis() int { return len(sp.knots) - sp.degree - 2 }

// coxDeBoor fills in a (p+1) x (p+1) table where column k holds the degree k
// basis functions starting at knots i, i+1, ..., i+p-k. Each column only
// depends on the one before it, so every lower-degree basis is computed
// exactly once.
func (sp *BSpline) coxDeBoor(t float64, p, i int) float64 {
	knots, last := sp.knots, sp.lastBasis()

	n := make([][]float64, p+1)
	for j := range n {
		n[j] = make([]float64, p+1)
	}

	// Spans are half-open, except for the final span of the whole knot
	// vector, which also contains its right edge. Otherwise the last knot
	// would have no basis support at all.
	for j := range n {
		lo, hi := knots[i+j], knots[i+j+1]
		if (lo <= t && t < hi) || (i+j == last && t == hi) {
			n[j][0] = 1
		}
	}

	for k := 1; k <= p; k++ {
		for j := 0; j <= p-k; j++ {
			// Zero-length spans contribute nothing.
			a := 0.0
			if knots[i+j+k] != knots[i+j] {
				a = (t - knots[i+j]) / (knots[i+j+k] - knots[i+j])
			}
			b := 0.0
			if knots[i+j+k+1] != knots[i+j+1] {
				b = (knots[i+j+k+1] - t) / (knots[i+j+k+1] - knots[i+j+1])
			}

			n[j][k] = a*n[j][k-1] + b*n[j+1][k-1]
		}
	}

	return n[0][p]
}

// Bases evaluates every basis function at every sample. The result has one
// slice per basis function, each with len(Samples()) values.
func (sp *BSpline) Bases() [][]float64 {
	bases := make([][]float64, sp.BasisCount())
	for i := range bases {
		bases[i] = make([]float64, len(sp.ts))
		for j, t := range sp.ts {
			bases[i][j] = sp.coxDeBoor(t, sp.degree, i)
		}
	}
	return bases
}

// Interpolate evaluates the curve at every sample. The result has one point
// per sample, each with Dim() coordinates.
func (sp *BSpline) Interpolate() [][]float64 {
	pts := make([][]float64, len(sp.ts))
	for j, t := range sp.ts {
		pts[j] = sp.point(t)
	}
	return pts
}

// Coords evaluates the curve at every sample and returns the result as Dim()
// parallel slices, e.g. xs, ys for a 2D curve.
func (sp *BSpline) Coords() [][]float64 {
	pts := sp.Interpolate()
	coords := make([][]float64, sp.dim)
	for d := range coords {
		coords[d] = make([]float64, len(pts))
		for j := range pts {
			coords[d][j] = pts[j][d]
		}
	}
	return coords
}

// Eval computes the point on the curve at t.
//
// t must be within the range of the knot vector.
func (sp *BSpline) Eval(t float64) []float64 {
	sp.checkBounds(t, "Eval")
	return sp.point(t)
}

func (sp *BSpline) checkBounds(t float64, method string) {
	lo, hi := sp.knots[0], sp.knots[len(sp.knots)-1]
	if t < lo || t > hi {
		panic(fmt.Sprintf(
			"Point %g given to BSpline.%s() out of bounds [%g, %g].",
			t, method, lo, hi,
		))
	}
}

func (sp *BSpline) point(t float64) []float64 {
	pt := make([]float64, sp.dim)
	for i := range sp.ctrl {
		basis := sp.coxDeBoor(t, sp.degree, i)
		for d := range pt {
			pt[d] += basis * sp.ctrl[i][d]
		}
	}
	return pt
}

// Component returns an Interpolator for coordinate d of the curve. The
// returned value shares sp.
func (sp *BSpline) Component(d int) Interpolator {
	if d < 0 || d >= sp.dim {
		panic(fmt.Sprintf(
			"Component %d given to BSpline.Component() out of range [0, %d).",
			d, sp.dim,
		))
	}
	return &component{sp, d}
}

type component struct {
	sp *BSpline
	d  int
}

func (c *component) Eval(t float64) float64 {
	c.sp.checkBounds(t, "Component().Eval")

	sum := 0.0
	for i := range c.sp.ctrl {
		sum += c.sp.coxDeBoor(t, c.sp.degree, i) * c.sp.ctrl[i][c.d]
	}
	return sum
}

// EvalAll evaluates the component at all the given t values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
func (c *component) EvalAll(ts []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(ts))}
	}
	for i, t := range ts {
		out[0][i] = c.Eval(t)
	}
	return out[0]
}
