/*package render turns sampled B-splines into plots. The plots themselves are
drawn by a Sink.
*/
package render

import (
	"fmt"

	"github.com/phil-mansfield/bspline/math/interpolate"
)

// Plot is a set of series which share a domain.
type Plot struct {
	Domain []float64
	Series [][]float64

	XLabel, YLabel, Title string
	// Path is the output image file.
	Path string
}

// Sink draws plots. Render may buffer its work until Flush is called.
type Sink interface {
	Render(p *Plot) error
	Flush() error
}

// Check returns an error if the plot cannot be drawn.
func (p *Plot) Check() error {
	if p.Path == "" {
		return fmt.Errorf("Plot '%s' has no output path.", p.Title)
	} else if len(p.Series) == 0 {
		return fmt.Errorf("Plot '%s' has no series.", p.Path)
	}

	for i := range p.Series {
		if len(p.Series[i]) != len(p.Domain) {
			return fmt.Errorf(
				"Series %d of plot '%s' has length %d, but the domain has "+
					"length %d.", i, p.Path, len(p.Series[i]), len(p.Domain),
			)
		}
	}

	return nil
}

// BasesPlot plots every basis function of sp against the sample parameters.
func BasesPlot(sp *interpolate.BSpline, path string) *Plot {
	return &Plot{
		Domain: sp.Samples(),
		Series: sp.Bases(),
		XLabel: "t",
		YLabel: "Basis",
		Title:  fmt.Sprintf("Degree %d B-spline bases", sp.Degree()),
		Path:   path,
	}
}

// CurvePlot plots the second coordinate of sp's curve against the first.
// Higher dimensional curves are projected onto their first two coordinates
// and 1D curves are plotted against the sample parameters.
func CurvePlot(sp *interpolate.BSpline, path string) *Plot {
	coords := sp.Coords()
	p := &Plot{
		XLabel: `$x$`,
		YLabel: `$y$`,
		Title:  fmt.Sprintf("Degree %d B-spline", sp.Degree()),
		Path:   path,
	}

	if sp.Dim() == 1 {
		p.Domain, p.Series = sp.Samples(), [][]float64{coords[0]}
		p.XLabel, p.YLabel = "t", `$x$`
	} else {
		p.Domain, p.Series = coords[0], [][]float64{coords[1]}
	}

	return p
}

// RenderAll checks every plot, renders them to sink, and flushes it. Nothing
// is rendered if any plot is invalid.
func RenderAll(sink Sink, plots ...*Plot) error {
	for _, p := range plots {
		if err := p.Check(); err != nil {
			return err
		}
	}

	for _, p := range plots {
		if err := sink.Render(p); err != nil {
			return err
		}
	}

	return sink.Flush()
}
