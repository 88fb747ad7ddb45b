package interpolate

import (
	"errors"
	"fmt"
)

var (
	// ErrControlPointCount is matched by every *ControlPointCountError.
	ErrControlPointCount = errors.New("control point count does not match knots and degree")
	// ErrInvalidConfig is wrapped by the remaining construction failures.
	ErrInvalidConfig = errors.New("invalid B-spline configuration")
)

// ControlPointCountError is returned by NewBSpline when the number of control
// points is not len(knots) - (degree + 1).
type ControlPointCountError struct {
	Degree, Knots int
	Got, Want     int
}

func (e *ControlPointCountError) Error() string {
	return fmt.Sprintf(
		"%d knots with degree %d require %d control points, but %d were given",
		e.Knots, e.Degree, e.Want, e.Got,
	)
}

func (e *ControlPointCountError) Is(target error) bool {
	return target == ErrControlPointCount
}
