package io

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadControlPoints(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "points.txt")
	writeFile(t, fname, "0 2 5\n0.2 -1 5\n0.4 1 5\n0.6 -1 5\n")

	table := []struct {
		dim int
		pts [][]float64
	}{
		{1, [][]float64{{0}, {0.2}, {0.4}, {0.6}}},
		{2, [][]float64{{0, 2}, {0.2, -1}, {0.4, 1}, {0.6, -1}}},
		{3, [][]float64{{0, 2, 5}, {0.2, -1, 5}, {0.4, 1, 5}, {0.6, -1, 5}}},
	}

	for i, test := range table {
		pts, err := ReadControlPoints(fname, test.dim)
		if err != nil {
			t.Errorf("%d) %s", i+1, err.Error())
			continue
		}
		assert.Equal(t, test.pts, pts, "%d)", i+1)
	}

	_, err := ReadControlPoints(fname, 0)
	assert.Error(t, err)
	_, err = ReadControlPoints(filepath.Join(t.TempDir(), "missing"), 2)
	assert.Error(t, err)
}

func TestReadKnots(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "knots.txt")
	writeFile(t, fname, "0\n0\n0.5\n1.5\n2\n2\n")

	knots, err := ReadKnots(fname)
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0.5, 1.5, 2, 2}, knots)
}
