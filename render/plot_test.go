package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/bspline/math/interpolate"
)

type recordingSink struct {
	plots   []*Plot
	flushes int
	err     error
}

func (rs *recordingSink) Render(p *Plot) error {
	if rs.err != nil {
		return rs.err
	}
	rs.plots = append(rs.plots, p)
	return nil
}

func (rs *recordingSink) Flush() error {
	rs.flushes++
	return nil
}

func exampleSpline(t *testing.T, ctrl [][]float64) *interpolate.BSpline {
	knots := interpolate.ClampedKnots(3, len(ctrl))
	sp, err := interpolate.NewBSpline(3, knots, 50, ctrl)
	if err != nil {
		t.Fatal(err.Error())
	}
	return sp
}

var ctrl2D = [][]float64{
	{0, 2}, {0.2, -1}, {0.4, 1}, {0.6, -1}, {0.8, 1}, {1, 2},
}

func TestBasesPlot(t *testing.T) {
	sp := exampleSpline(t, ctrl2D)
	p := BasesPlot(sp, "plot.png")

	assert.NoError(t, p.Check())
	assert.Equal(t, sp.Samples(), p.Domain)
	assert.Equal(t, sp.Bases(), p.Series)
	assert.Equal(t, "t", p.XLabel)
	assert.Equal(t, "Basis", p.YLabel)
	assert.Equal(t, "plot.png", p.Path)
}

func TestCurvePlot(t *testing.T) {
	sp := exampleSpline(t, ctrl2D)
	p := CurvePlot(sp, "interpolate_plot.png")
	coords := sp.Coords()

	assert.NoError(t, p.Check())
	assert.Equal(t, coords[0], p.Domain)
	assert.Equal(t, [][]float64{coords[1]}, p.Series)
	assert.Equal(t, 0.0, p.Domain[0])
	assert.Equal(t, 1.0, p.Domain[len(p.Domain)-1])

	ctrl1D := [][]float64{{0}, {1}, {-1}, {2}}
	sp = exampleSpline(t, ctrl1D)
	p = CurvePlot(sp, "1d.png")
	assert.NoError(t, p.Check())
	assert.Equal(t, sp.Samples(), p.Domain)
	assert.Equal(t, "t", p.XLabel)

	ctrl3D := [][]float64{{0, 0, 0}, {1, 0, 1}, {1, 1, 2}, {0, 1, 3}}
	sp = exampleSpline(t, ctrl3D)
	p = CurvePlot(sp, "3d.png")
	coords = sp.Coords()
	assert.Equal(t, coords[0], p.Domain)
	assert.Equal(t, [][]float64{coords[1]}, p.Series)
}

func TestPlotCheck(t *testing.T) {
	table := []struct {
		p  Plot
		ok bool
	}{
		{Plot{Domain: []float64{0, 1}, Series: [][]float64{{1, 2}}, Path: "a.png"}, true},
		{Plot{Domain: []float64{0, 1}, Series: [][]float64{{1, 2}}}, false},
		{Plot{Domain: []float64{0, 1}, Path: "a.png"}, false},
		{Plot{Domain: []float64{0, 1}, Series: [][]float64{{1, 2}, {1}}, Path: "a.png"}, false},
	}

	for i, test := range table {
		err := test.p.Check()
		if test.ok != (err == nil) {
			t.Errorf("%d) Expected ok = %v, got error %v.", i+1, test.ok, err)
		}
	}
}

func TestRenderAll(t *testing.T) {
	sp := exampleSpline(t, ctrl2D)
	bases, curve := BasesPlot(sp, "plot.png"), CurvePlot(sp, "curve.png")

	sink := &recordingSink{}
	assert.NoError(t, RenderAll(sink, bases, curve))
	assert.Equal(t, []*Plot{bases, curve}, sink.plots)
	assert.Equal(t, 1, sink.flushes)

	sink = &recordingSink{}
	assert.Error(t, RenderAll(sink, bases, &Plot{Path: "bad.png"}))
	assert.Equal(t, 0, len(sink.plots))
	assert.Equal(t, 0, sink.flushes)

	errSink := errors.New("sink failed")
	sink = &recordingSink{err: errSink}
	assert.Equal(t, errSink, RenderAll(sink, bases))
	assert.Equal(t, 0, sink.flushes)
}
