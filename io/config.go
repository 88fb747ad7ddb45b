package io

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/bspline/math/interpolate"
)

const (
	ExampleBSplineFile = `[BSpline]

#######################
# Required Parameters #
#######################

# Degree of the spline. 3 gives cubic splines.
Degree = 3

# The knot vector must be given in exactly one of three ways. The first is to
# list every knot, in non-decreasing order, on its own Knot line:
Knot = 0
Knot = 0
Knot = 0
Knot = 0
Knot = 1
Knot = 2
Knot = 3
Knot = 3
Knot = 3
Knot = 3
# The second is a text file with one knot per line:
# KnotFile = path/to/knots.txt
# The third is to generate a clamped knot vector with uniformly spaced
# interior knots. The curve will start and end on the first and last control
# points.
# ClampedKnots = true

# Control points must be given in exactly one of two ways. Either as Point
# lines with whitespace separated coordinates:
Point = 0 2
Point = 0.2 -1
Point = 0.4 1
Point = 0.6 -1
Point = 0.8 1
Point = 1 2
# or as a text file with one point per line. Only the first Dim columns are
# read. Dim defaults to 2.
# ControlPointFile = path/to/points.txt
# Dim = 2

# There must be exactly (number of knots) - (Degree + 1) control points.

#######################
# Optional Parameters #
#######################

# Alternatively, the degree, knots, and control points can all be read from a
# YAML curve file. Run with -ExampleConfig Curve to see the format. Knot,
# KnotFile, ClampedKnots, Point, and ControlPointFile cannot be used with it.
# CurveFile = path/to/curve.yaml

# Number of evenly spaced parameter values the curve is evaluated at. The
# first and last values are always the first and last knots. Default is 100.
# Samples = 100

# Output images. Set to an empty string to skip a plot.
# BasesPlot = plot.png
# CurvePlot = interpolate_plot.png

# Writes the samples, basis values, and curve points to a YAML file.
# SampleFile = samples.yaml

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`
)

type SharedConfig struct {
	// Optional
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type BSplineConfig struct {
	SharedConfig

	// Required
	Degree int

	Knot         []float64
	KnotFile     string
	ClampedKnots bool

	Point            []string
	ControlPointFile string
	Dim              int

	// Optional
	CurveFile string
	Samples   int

	BasesPlot, CurvePlot string
	SampleFile           string
}

type BSplineWrapper struct {
	BSpline BSplineConfig
}

func DefaultBSplineWrapper() *BSplineWrapper {
	con := BSplineConfig{}
	con.Degree = -1
	con.Dim = 2
	con.Samples = 100
	con.BasesPlot = "plot.png"
	con.CurvePlot = "interpolate_plot.png"
	return &BSplineWrapper{con}
}

// ReadBSplineConfig reads and checks the [BSpline] section of a config file.
func ReadBSplineConfig(fname string) (*BSplineConfig, error) {
	wrap := DefaultBSplineWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.BSpline
	if err := con.Check(); err != nil {
		return nil, err
	}
	return con, nil
}

// ParseBSplineConfig is ReadBSplineConfig for config text that is already in
// memory.
func ParseBSplineConfig(text string) (*BSplineConfig, error) {
	wrap := DefaultBSplineWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	con := &wrap.BSpline
	if err := con.Check(); err != nil {
		return nil, err
	}
	return con, nil
}

func (con *BSplineConfig) ValidDegree() bool {
	return con.Degree >= 0
}
func (con *BSplineConfig) ValidSamples() bool {
	return con.Samples > 0
}
func (con *BSplineConfig) ValidDim() bool {
	return con.Dim > 0
}
func (con *BSplineConfig) ValidCurveFile() bool {
	return con.CurveFile != ""
}
func (con *BSplineConfig) ValidBasesPlot() bool {
	return con.BasesPlot != ""
}
func (con *BSplineConfig) ValidCurvePlot() bool {
	return con.CurvePlot != ""
}
func (con *BSplineConfig) ValidSampleFile() bool {
	return con.SampleFile != ""
}

func (con *BSplineConfig) knotSources() int {
	n := 0
	if len(con.Knot) > 0 {
		n++
	}
	if con.KnotFile != "" {
		n++
	}
	if con.ClampedKnots {
		n++
	}
	return n
}

func (con *BSplineConfig) pointSources() int {
	n := 0
	if len(con.Point) > 0 {
		n++
	}
	if con.ControlPointFile != "" {
		n++
	}
	return n
}

func (con *BSplineConfig) ValidKnots() bool {
	return con.knotSources() == 1
}
func (con *BSplineConfig) ValidPoints() bool {
	return con.pointSources() == 1
}

// Check returns a descriptive error if the config cannot describe a curve.
func (con *BSplineConfig) Check() error {
	if !con.ValidSamples() {
		return fmt.Errorf("'Samples' must be positive, but is %d.", con.Samples)
	}

	if con.ValidCurveFile() {
		if con.knotSources() > 0 || con.pointSources() > 0 {
			return fmt.Errorf(
				"'CurveFile' cannot be set alongside 'Knot', 'KnotFile', " +
					"'ClampedKnots', 'Point', or 'ControlPointFile'.",
			)
		}
		return nil
	}

	if !con.ValidDegree() {
		return fmt.Errorf("Invalid/non-existent 'Degree' value.")
	} else if !con.ValidKnots() {
		return fmt.Errorf(
			"Exactly one of 'Knot', 'KnotFile', and 'ClampedKnots' must " +
				"be set.",
		)
	} else if !con.ValidPoints() {
		return fmt.Errorf(
			"Exactly one of 'Point' and 'ControlPointFile' must be set.",
		)
	} else if con.ControlPointFile != "" && !con.ValidDim() {
		return fmt.Errorf("'Dim' must be positive, but is %d.", con.Dim)
	}

	return nil
}

// Curve loads the degree, knots, and control points the config points to.
func (con *BSplineConfig) Curve() (*Curve, error) {
	if con.ValidCurveFile() {
		return ReadCurveFile(con.CurveFile)
	}

	c := &Curve{Degree: con.Degree}

	var err error
	if len(con.Point) > 0 {
		c.ControlPoints = make([][]float64, len(con.Point))
		for i, s := range con.Point {
			c.ControlPoints[i], err = parsePoint(s)
			if err != nil {
				return nil, fmt.Errorf("Point %d: %w", i, err)
			}
		}
	} else {
		c.ControlPoints, err = ReadControlPoints(con.ControlPointFile, con.Dim)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case len(con.Knot) > 0:
		c.Knots = append([]float64(nil), con.Knot...)
	case con.KnotFile != "":
		c.Knots, err = ReadKnots(con.KnotFile)
		if err != nil {
			return nil, err
		}
	default:
		if len(c.ControlPoints) < con.Degree+1 {
			return nil, fmt.Errorf(
				"'ClampedKnots' needs at least %d control points for "+
					"degree %d, but %d were given.",
				con.Degree+1, con.Degree, len(c.ControlPoints),
			)
		}
		c.Knots = interpolate.ClampedKnots(con.Degree, len(c.ControlPoints))
	}

	return c, nil
}

func parsePoint(s string) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no coordinates in '%s'", s)
	}

	pt := make([]float64, len(fields))
	for i := range fields {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		pt[i] = x
	}
	return pt, nil
}
