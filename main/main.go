package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"runtime/pprof"
	"strings"

	"github.com/phil-mansfield/bspline/io"
	"github.com/phil-mansfield/bspline/render"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// NewFileGroup opens the log and profile files requested by con, if any.
func NewFileGroup(con *io.SharedConfig) (*FileGroup, error) {
	fg := &FileGroup{}
	var err error

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			return nil, err
		}
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			fg.Close()
			return nil, err
		}
		if err = pprof.StartCPUProfile(fg.prof); err != nil {
			fg.Close()
			return nil, err
		}
	}

	return fg, nil
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		log.SetOutput(os.Stderr)
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		renderStr, exampleDir string
		exampleConfig         string
	)
	vars := map[string]*string{
		"Render":        &renderStr,
		"Example":       &exampleDir,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&renderStr, "Render", "",
		"Configuration file for [BSpline] mode. Plots the bases and the "+
			"curve described by the file.",
	)
	flag.StringVar(
		&exampleDir, "Example", "",
		"Plots the bases and curve of a clamped cubic B-spline through six "+
			"control points to the given directory.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. Accepted arguments are 'BSpline' "+
			"and 'Curve'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Render":
		con, err := io.ReadBSplineConfig(renderStr)
		if err != nil {
			log.Fatal(err.Error())
		}

		fg, err := NewFileGroup(&con.SharedConfig)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer fg.Close()

		c, err := con.Curve()
		if err != nil {
			log.Fatal(err.Error())
		}
		renderMain(c, con)

	case "Example":
		con := &io.DefaultBSplineWrapper().BSpline
		con.BasesPlot = path.Join(exampleDir, con.BasesPlot)
		con.CurvePlot = path.Join(exampleDir, con.CurvePlot)
		renderMain(io.ExampleCurve(), con)

	case "ExampleConfig":
		switch exampleConfig {
		case "BSpline":
			fmt.Println(io.ExampleBSplineFile)
		case "Curve":
			fmt.Print(io.ExampleCurveFile)
		default:
			log.Fatalf(
				"Unrecognized ExampleConfig type '%s'. Accepted types are "+
					"'BSpline' and 'Curve'.", exampleConfig,
			)
		}
	}
}

// getModeName returns the name of the single mode flag that was set.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but bspline "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// renderMain samples the curve and writes out every output requested by con.
func renderMain(c *io.Curve, con *io.BSplineConfig) {
	sp, err := c.BSpline(con.Samples)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf(
		"Degree %d B-spline with %d control points, sampled %d times.",
		sp.Degree(), sp.BasisCount(), con.Samples,
	)

	plots := []*render.Plot{}
	if con.ValidBasesPlot() {
		plots = append(plots, render.BasesPlot(sp, con.BasesPlot))
	}
	if con.ValidCurvePlot() {
		plots = append(plots, render.CurvePlot(sp, con.CurvePlot))
	}

	if len(plots) > 0 {
		if err := render.RenderAll(render.NewPyplotSink(), plots...); err != nil {
			log.Fatal(err.Error())
		}
		for _, p := range plots {
			log.Printf("Wrote %s", p.Path)
		}
	}

	if con.ValidSampleFile() {
		if err := io.WriteSampleFile(con.SampleFile, sp); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Wrote %s", con.SampleFile)
	}
}
