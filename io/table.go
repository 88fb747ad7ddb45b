package io

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// ReadKnots reads a knot vector from the first column of a text table.
func ReadKnots(fname string) ([]float64, error) {
	cols, err := table.ReadTable(fname, []int{0}, nil)
	if err != nil {
		return nil, err
	}
	if len(cols[0]) == 0 {
		return nil, fmt.Errorf("No knots in '%s'.", fname)
	}
	return cols[0], nil
}

// ReadControlPoints reads control points from the first dim columns of a text
// table. Each row is one point.
func ReadControlPoints(fname string, dim int) ([][]float64, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("dim must be positive, but is %d.", dim)
	}

	colIdxs := make([]int, dim)
	for i := range colIdxs {
		colIdxs[i] = i
	}
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	pts := make([][]float64, len(cols[0]))
	for i := range pts {
		pts[i] = make([]float64, dim)
		for d := range cols {
			pts[i][d] = cols[d][i]
		}
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("No control points in '%s'.", fname)
	}

	return pts, nil
}
