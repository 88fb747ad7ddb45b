package render

import (
	plt "github.com/phil-mansfield/pyplot"
)

var (
	colors = []string{
		"DarkSlateBlue", "DarkTurquoise", "DeepPink",
		"DarkOrange", "ForestGreen", "DimGray",
	}

	_ Sink = &PyplotSink{}
)

// PyplotSink draws plots with matplotlib. Figures are queued by Render and
// written when Flush runs the generated script, so python and matplotlib must
// be installed.
type PyplotSink struct{}

// NewPyplotSink returns a sink with a clean pyplot script.
func NewPyplotSink() *PyplotSink {
	plt.Reset()
	return &PyplotSink{}
}

func (ps *PyplotSink) Render(p *Plot) error {
	plt.Figure()
	for i, ys := range p.Series {
		plt.Plot(p.Domain, ys, plt.LW(2), plt.C(colors[i%len(colors)]))
	}

	plt.Title(p.Title)
	plt.XLabel(p.XLabel, plt.FontSize(16))
	plt.YLabel(p.YLabel, plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(p.Path)

	return nil
}

func (ps *PyplotSink) Flush() error {
	plt.Execute()
	plt.Reset()
	return nil
}
