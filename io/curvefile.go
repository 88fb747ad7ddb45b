package io

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/bspline/math/interpolate"
)

const ExampleCurveFile = `# Degree of the spline.
degree: 3
# Non-decreasing knot vector with len(control_points) + degree + 1 entries.
knots: [0, 0, 0, 0, 1, 2, 3, 3, 3, 3]
# Every control point must have the same number of coordinates.
control_points:
  - [0, 2]
  - [0.2, -1]
  - [0.4, 1]
  - [0.6, -1]
  - [0.8, 1]
  - [1, 2]
`

// Curve is everything needed to build a B-spline except for the sampling.
type Curve struct {
	Degree        int         `yaml:"degree"`
	Knots         []float64   `yaml:"knots,flow"`
	ControlPoints [][]float64 `yaml:"control_points"`
}

// ExampleCurve returns a clamped cubic curve through six control points.
func ExampleCurve() *Curve {
	return &Curve{
		Degree: 3,
		Knots:  []float64{0, 0, 0, 0, 1, 2, 3, 3, 3, 3},
		ControlPoints: [][]float64{
			{0, 2}, {0.2, -1}, {0.4, 1}, {0.6, -1}, {0.8, 1}, {1, 2},
		},
	}
}

// BSpline builds a spline from the curve which is sampled at the given number
// of points.
func (c *Curve) BSpline(samples int) (*interpolate.BSpline, error) {
	return interpolate.NewBSpline(c.Degree, c.Knots, samples, c.ControlPoints)
}

// ReadCurveFile reads a YAML curve description.
func ReadCurveFile(fname string) (*Curve, error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	c := &Curve{Degree: -1}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("Could not parse curve file '%s': %w", fname, err)
	}

	if c.Degree < 0 {
		return nil, fmt.Errorf("Curve file '%s' has no 'degree'.", fname)
	} else if len(c.Knots) == 0 {
		return nil, fmt.Errorf("Curve file '%s' has no 'knots'.", fname)
	} else if len(c.ControlPoints) == 0 {
		return nil, fmt.Errorf(
			"Curve file '%s' has no 'control_points'.", fname,
		)
	}

	return c, nil
}

// WriteCurveFile writes c as YAML.
func WriteCurveFile(fname string, c *Curve) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(fname, b, 0644)
}

// SampleFile holds a sampled B-spline: the parameter values, every basis
// function at those values, and the curve points.
type SampleFile struct {
	Degree int         `yaml:"degree"`
	Knots  []float64   `yaml:"knots,flow"`
	T      []float64   `yaml:"t,flow"`
	Bases  [][]float64 `yaml:"bases,flow"`
	Points [][]float64 `yaml:"points,flow"`
}

// NewSampleFile evaluates sp at its samples.
func NewSampleFile(sp *interpolate.BSpline) *SampleFile {
	return &SampleFile{
		Degree: sp.Degree(),
		Knots:  sp.Knots(),
		T:      sp.Samples(),
		Bases:  sp.Bases(),
		Points: sp.Interpolate(),
	}
}

// WriteSampleFile evaluates sp and writes the result as YAML.
func WriteSampleFile(fname string, sp *interpolate.BSpline) error {
	b, err := yaml.Marshal(NewSampleFile(sp))
	if err != nil {
		return err
	}
	return os.WriteFile(fname, b, 0644)
}

// ReadSampleFile reads a file written by WriteSampleFile.
func ReadSampleFile(fname string) (*SampleFile, error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	sf := &SampleFile{}
	if err := yaml.Unmarshal(b, sf); err != nil {
		return nil, fmt.Errorf(
			"Could not parse sample file '%s': %w", fname, err,
		)
	}
	return sf, nil
}
